package training

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
	traininguc "gym-planner/internal/usecase/training"
)

// Handler обрабатывает HTTP-запросы к тренировкам принципала.
type Handler struct {
	trainings traininguc.Service
}

// NewHandler создаёт новый TrainingHandler.
func NewHandler(trainings traininguc.Service) *Handler {
	return &Handler{trainings: trainings}
}

func principal(c *gin.Context) (uuid.UUID, bool) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return uuid.Nil, false
	}
	return userID, true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "некорректный идентификатор в пути запроса")
		return 0, false
	}
	return id, true
}

// Create создаёт тренировку.
//
//	@Summary	Создать тренировку
//	@Tags		trainings
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateRequest	true	"Данные тренировки"
//	@Success	201		{object}	TrainingResponse
//	@Security	BearerAuth
//	@Router		/api/v1/trainings [post]
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

	t, err := h.trainings.Create(c.Request.Context(), userID, traininguc.CreateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(t))
}

// Get возвращает тренировку принципала по идентификатору.
//
//	@Summary	Тренировка по id
//	@Tags		trainings
//	@Produce	json
//	@Param		id	path		int	true	"ID тренировки"
//	@Success	200	{object}	TrainingResponse
//	@Security	BearerAuth
//	@Router		/api/v1/trainings/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	t, err := h.trainings.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(t))
}

// List возвращает все тренировки принципала.
//
//	@Summary	Список тренировок пользователя
//	@Tags		trainings
//	@Produce	json
//	@Success	200	{array}	TrainingResponse
//	@Security	BearerAuth
//	@Router		/api/v1/trainings [get]
func (h *Handler) List(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	items, err := h.trainings.List(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, toResponses(items))
}

// Update применяет частичное обновление к тренировке принципала.
//
//	@Summary	Частично обновить тренировку
//	@Tags		trainings
//	@Accept		json
//	@Produce	json
//	@Param		request	body		UpdateRequest	true	"Частичное обновление (id обязателен)"
//	@Success	200		{object}	TrainingResponse
//	@Security	BearerAuth
//	@Router		/api/v1/trainings [patch]
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

	if req.Name.IsNull() {
		response.BadRequest(c, "name не может быть null")
		return
	}
	if req.Description.IsNull() {
		response.BadRequest(c, "description не может быть null")
		return
	}

	t, err := h.trainings.Update(c.Request.Context(), userID, traininguc.UpdateInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(t))
}

// Delete удаляет тренировку принципала.
//
//	@Summary	Удалить тренировку
//	@Tags		trainings
//	@Param		id	path	int	true	"ID тренировки"
//	@Success	204
//	@Security	BearerAuth
//	@Router		/api/v1/trainings/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.trainings.Delete(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, userID uuid.UUID, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		response.NotFound(c, "training_not_found", "Тренировка не найдена")
	default:
		log.Printf("internal error in training handler: user_id=%s err=%v", userID, err)
		response.Internal(c)
	}
}
