package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody описывает стандартный формат ошибки API.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// Error отправляет JSON-ответ с ошибкой в едином формате.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	c.JSON(status, gin.H{
		"error": ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// BadRequest отправляет 400 с деталями ошибки привязки тела запроса.
func BadRequest(c *gin.Context, details interface{}) {
	Error(c, http.StatusBadRequest, "invalid_request", "Некорректное тело запроса", details)
}

// NotFound отправляет 404 с заданным кодом ошибки.
// Используется и когда ресурс не существует, и когда он принадлежит
// другому пользователю: ответы неразличимы.
func NotFound(c *gin.Context, code, message string) {
	Error(c, http.StatusNotFound, code, message, nil)
}

// Forbidden отправляет 403: ссылка на вторичный ресурс, которым
// принципал не владеет.
func Forbidden(c *gin.Context, code, message string) {
	Error(c, http.StatusForbidden, code, message, nil)
}

// Internal отправляет 500 без деталей.
func Internal(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
}
