package userexercise

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gym-planner/internal/handler/middleware"
	"gym-planner/internal/handler/response"
	repo "gym-planner/internal/repository/interfaces"
	ueuc "gym-planner/internal/usecase/userexercise"
)

// Handler обрабатывает HTTP-запросы к привязкам пользователя к упражнениям.
// Все операции выполняются от имени аутентифицированного принципала.
type Handler struct {
	userExercises ueuc.Service
}

// NewHandler создаёт новый UserExerciseHandler.
func NewHandler(userExercises ueuc.Service) *Handler {
	return &Handler{userExercises: userExercises}
}

// principal извлекает идентификатор принципала или отвечает 401.
func principal(c *gin.Context) (uuid.UUID, bool) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return uuid.Nil, false
	}
	return userID, true
}

// parseID извлекает положительный числовой идентификатор из path-параметра.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "некорректный идентификатор в пути запроса")
		return 0, false
	}
	return id, true
}

// Create создаёт привязку к упражнению каталога.
//
//	@Summary	Создать привязку к упражнению
//	@Tags		user_exercises
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateRequest	true	"Данные привязки"
//	@Success	201		{object}	UserExerciseResponse
//	@Security	BearerAuth
//	@Router		/api/v1/user_exercises [post]
func (h *Handler) Create(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ue, err := h.userExercises.Create(c.Request.Context(), userID, ueuc.CreateInput{
		ExerciseID: req.ExerciseID,
		TrainingID: req.TrainingID,
		Notes:      req.Notes,
	})
	if err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(ue))
}

// Get возвращает привязку принципала по идентификатору.
//
//	@Summary	Привязка по id
//	@Tags		user_exercises
//	@Produce	json
//	@Param		id	path		int	true	"ID привязки"
//	@Success	200	{object}	UserExerciseResponse
//	@Security	BearerAuth
//	@Router		/api/v1/user_exercises/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	ue, err := h.userExercises.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(ue))
}

// List возвращает все привязки принципала.
//
//	@Summary	Список привязок пользователя
//	@Tags		user_exercises
//	@Produce	json
//	@Success	200	{array}	UserExerciseResponse
//	@Security	BearerAuth
//	@Router		/api/v1/user_exercises [get]
func (h *Handler) List(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	items, err := h.userExercises.List(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, toResponses(items))
}

// Update применяет частичное обновление к привязке принципала.
// Тело запроса несёт id цели; применяются только присутствующие поля.
//
//	@Summary	Частично обновить привязку
//	@Tags		user_exercises
//	@Accept		json
//	@Produce	json
//	@Param		request	body		UpdateRequest	true	"Частичное обновление (id обязателен)"
//	@Success	200		{object}	UserExerciseResponse
//	@Security	BearerAuth
//	@Router		/api/v1/user_exercises [patch]
func (h *Handler) Update(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// exercise_id не nullable: явный null отклоняется до каких-либо проверок.
	if req.ExerciseID.IsNull() {
		response.BadRequest(c, "exercise_id не может быть null")
		return
	}

	ue, err := h.userExercises.Update(c.Request.Context(), userID, ueuc.UpdateInput{
		ID:         req.ID,
		ExerciseID: req.ExerciseID,
		TrainingID: req.TrainingID,
		Notes:      req.Notes,
	})
	if err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(ue))
}

// Delete удаляет привязку принципала.
//
//	@Summary	Удалить привязку
//	@Tags		user_exercises
//	@Param		id	path	int	true	"ID привязки"
//	@Success	204
//	@Security	BearerAuth
//	@Router		/api/v1/user_exercises/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.userExercises.Delete(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// writeError маппит ошибки usecase-слоя в HTTP-ответы.
// Недоступность первичного ресурса — 404, ссылка на чужую тренировку — 403.
func (h *Handler) writeError(c *gin.Context, userID uuid.UUID, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		response.NotFound(c, "user_exercise_not_found", "Привязка к упражнению не найдена")
	case errors.Is(err, ueuc.ErrExerciseNotFound):
		response.NotFound(c, "exercise_not_found", "Упражнение с указанным id не существует")
	case errors.Is(err, ueuc.ErrTrainingAccessDenied):
		response.Forbidden(c, "training_access_denied", "Нет доступа к тренировке, к которой привязывается упражнение")
	default:
		log.Printf("internal error in user_exercise handler: user_id=%s err=%v", userID, err)
		response.Internal(c)
	}
}
