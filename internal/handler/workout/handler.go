package workout

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gym-planner/internal/handler/middleware"
	"gym-planner/internal/handler/response"
	repo "gym-planner/internal/repository/interfaces"
	workoutuc "gym-planner/internal/usecase/workout"
)

// Handler обрабатывает HTTP-запросы к воркаутам.
// Все операции выполняются от имени аутентифицированного принципала.
type Handler struct {
	workouts workoutuc.Service
}

// NewHandler создаёт новый WorkoutHandler.
func NewHandler(workouts workoutuc.Service) *Handler {
	return &Handler{workouts: workouts}
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

// Create создаёт воркаут.
//
//	@Summary	Создать воркаут
//	@Tags		workouts
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateRequest	true	"Данные воркаута"
//	@Success	201		{object}	WorkoutResponse
//	@Security	BearerAuth
//	@Router		/api/v1/workouts [post]
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

	var performedAt time.Time
	if req.PerformedAt != nil {
		performedAt = *req.PerformedAt
	}

	w, err := h.workouts.Create(c.Request.Context(), userID, workoutuc.CreateInput{
		PlanID:      req.PlanID,
		PerformedAt: performedAt,
		Notes:       req.Notes,
	})
	if err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(w))
}

// Get возвращает воркаут принципала по идентификатору.
//
//	@Summary	Воркаут по id
//	@Tags		workouts
//	@Produce	json
//	@Param		id	path		int	true	"ID воркаута"
//	@Success	200	{object}	WorkoutResponse
//	@Security	BearerAuth
//	@Router		/api/v1/workouts/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	w, err := h.workouts.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(w))
}

// List возвращает все воркауты принципала.
//
//	@Summary	Список воркаутов пользователя
//	@Tags		workouts
//	@Produce	json
//	@Success	200	{array}	WorkoutResponse
//	@Security	BearerAuth
//	@Router		/api/v1/workouts [get]
func (h *Handler) List(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	items, err := h.workouts.List(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, toResponses(items))
}

// ListExercises возвращает позиции воркаута принципала.
//
//	@Summary	Позиции воркаута
//	@Tags		workouts
//	@Produce	json
//	@Param		id	path	int	true	"ID воркаута"
//	@Success	200	{array}	WorkoutExerciseResponse
//	@Security	BearerAuth
//	@Router		/api/v1/workouts/{id}/workout_exercises [get]
func (h *Handler) ListExercises(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	items, err := h.workouts.ListExercises(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, toExerciseResponses(items))
}

// Update применяет частичное обновление к воркауту принципала.
// Тело запроса несёт id цели; применяются только присутствующие поля.
//
//	@Summary	Частично обновить воркаут
//	@Tags		workouts
//	@Accept		json
//	@Produce	json
//	@Param		request	body		UpdateRequest	true	"Частичное обновление (id обязателен)"
//	@Success	200		{object}	WorkoutResponse
//	@Security	BearerAuth
//	@Router		/api/v1/workouts [patch]
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

	// performed_at не nullable: явный null отклоняется до каких-либо проверок.
	if req.PerformedAt.IsNull() {
		response.BadRequest(c, "performed_at не может быть null")
		return
	}

	w, err := h.workouts.Update(c.Request.Context(), userID, workoutuc.UpdateInput{
		ID:          req.ID,
		PlanID:      req.PlanID,
		PerformedAt: req.PerformedAt,
		Notes:       req.Notes,
	})
	if err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(w))
}

// Delete удаляет воркаут принципала.
//
//	@Summary	Удалить воркаут
//	@Tags		workouts
//	@Param		id	path	int	true	"ID воркаута"
//	@Success	204
//	@Security	BearerAuth
//	@Router		/api/v1/workouts/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.workouts.Delete(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// writeError маппит ошибки usecase-слоя в HTTP-ответы.
// Недоступность первичного ресурса — 404, ссылка на чужой план — 403.
func (h *Handler) writeError(c *gin.Context, userID uuid.UUID, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		response.NotFound(c, "workout_not_found", "Воркаут не найден")
	case errors.Is(err, workoutuc.ErrPlanAccessDenied):
		response.Forbidden(c, "plan_access_denied", "Нет доступа к плану, к которому привязывается воркаут")
	default:
		log.Printf("internal error in workout handler: user_id=%s err=%v", userID, err)
		response.Internal(c)
	}
}
