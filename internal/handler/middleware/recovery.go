package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gym-planner/internal/handler/response"
	"gym-planner/pkg/logger"
)

// Recovery перехватывает паники обработчиков и отвечает клиенту
// стандартным конвертом ошибки вместо обрыва соединения.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("panic recovered", map[string]any{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"client_ip": c.ClientIP(),
			"panic":     recovered,
		})

		response.Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
		c.Abort()
	})
}
