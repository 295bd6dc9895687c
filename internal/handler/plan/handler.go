package plan

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
	planuc "gym-planner/internal/usecase/plan"
)

// Handler обрабатывает HTTP-запросы к планам принципала.
type Handler struct {
	plans planuc.Service
}

// NewHandler создаёт новый PlanHandler.
func NewHandler(plans planuc.Service) *Handler {
	return &Handler{plans: plans}
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

// Create создаёт план.
//
//	@Summary	Создать план
//	@Tags		plans
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateRequest	true	"Данные плана"
//	@Success	201		{object}	PlanResponse
//	@Security	BearerAuth
//	@Router		/api/v1/plans [post]
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

	p, err := h.plans.Create(c.Request.Context(), userID, planuc.CreateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(p))
}

// Get возвращает план принципала по идентификатору.
//
//	@Summary	План по id
//	@Tags		plans
//	@Produce	json
//	@Param		id	path		int	true	"ID плана"
//	@Success	200	{object}	PlanResponse
//	@Security	BearerAuth
//	@Router		/api/v1/plans/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.plans.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(p))
}

// List возвращает все планы принципала.
//
//	@Summary	Список планов пользователя
//	@Tags		plans
//	@Produce	json
//	@Success	200	{array}	PlanResponse
//	@Security	BearerAuth
//	@Router		/api/v1/plans [get]
func (h *Handler) List(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	items, err := h.plans.List(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, toResponses(items))
}

// Update применяет частичное обновление к плану принципала.
//
//	@Summary	Частично обновить план
//	@Tags		plans
//	@Accept		json
//	@Produce	json
//	@Param		request	body		UpdateRequest	true	"Частичное обновление (id обязателен)"
//	@Success	200		{object}	PlanResponse
//	@Security	BearerAuth
//	@Router		/api/v1/plans [patch]
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

	p, err := h.plans.Update(c.Request.Context(), userID, planuc.UpdateInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(p))
}

// Delete удаляет план принципала.
//
//	@Summary	Удалить план
//	@Tags		plans
//	@Param		id	path	int	true	"ID плана"
//	@Success	204
//	@Security	BearerAuth
//	@Router		/api/v1/plans/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.plans.Delete(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, userID, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, userID uuid.UUID, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		response.NotFound(c, "plan_not_found", "План не найден")
	default:
		log.Printf("internal error in plan handler: user_id=%s err=%v", userID, err)
		response.Internal(c)
	}
}
