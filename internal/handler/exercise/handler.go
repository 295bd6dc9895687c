package exercise

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gym-planner/internal/handler/middleware"
	"gym-planner/internal/handler/response"
	repo "gym-planner/internal/repository/interfaces"
	exerciseuc "gym-planner/internal/usecase/exercise"
)

// Handler обрабатывает HTTP-запросы к глобальному каталогу упражнений.
type Handler struct {
	exercises exerciseuc.Service
}

// NewHandler создаёт новый ExerciseHandler.
func NewHandler(exercises exerciseuc.Service) *Handler {
	return &Handler{exercises: exercises}
}

// parsePagination извлекает skip/limit из query-параметров.
// Отрицательные значения отклоняются как некорректные.
func parsePagination(c *gin.Context) (skip, limit int, ok bool) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		response.BadRequest(c, "skip должен быть неотрицательным числом")
		return 0, 0, false
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(exerciseuc.DefaultLimit)))
	if err != nil || limit < 0 {
		response.BadRequest(c, "limit должен быть неотрицательным числом")
		return 0, 0, false
	}

	return skip, limit, true
}

// parseID извлекает положительный числовой идентификатор из path-параметра.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "некорректный идентификатор в пути запроса")
		return 0, false
	}
	return id, true
}

// List возвращает страницу каталога упражнений.
//
//	@Summary	Список упражнений каталога
//	@Tags		exercises
//	@Produce	json
//	@Param		skip	query		int	false	"Сколько записей пропустить"
//	@Param		limit	query		int	false	"Максимум записей в ответе"
//	@Success	200		{array}		ExerciseResponse
//	@Router		/api/v1/exercises [get]
func (h *Handler) List(c *gin.Context) {
	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	exercises, err := h.exercises.List(c.Request.Context(), skip, limit)
	if err != nil {
		log.Printf("internal error in exercise List: err=%v", err)
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, toExerciseResponses(exercises))
}

// Get возвращает упражнение каталога по идентификатору.
//
//	@Summary	Упражнение каталога по id
//	@Tags		exercises
//	@Produce	json
//	@Param		id	path		int	true	"ID упражнения"
//	@Success	200	{object}	ExerciseResponse
//	@Router		/api/v1/exercises/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	exercise, err := h.exercises.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.NotFound(c, "exercise_not_found", "Упражнение не найдено")
			return
		}
		log.Printf("internal error in exercise Get: id=%d err=%v", id, err)
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, toExerciseResponse(exercise))
}

// ListSets возвращает подходы текущего пользователя в заданном упражнении.
// Требует аутентификации: фильтр идёт по владельцу подходов, само упражнение общее.
//
//	@Summary	Подходы текущего пользователя в упражнении
//	@Tags		exercises
//	@Produce	json
//	@Param		id	path		int	true	"ID упражнения"
//	@Success	200	{array}		SetResponse
//	@Security	BearerAuth
//	@Router		/api/v1/exercises/{id}/sets [get]
func (h *Handler) ListSets(c *gin.Context) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	sets, err := h.exercises.ListUserSets(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.NotFound(c, "exercise_not_found", "Упражнение не найдено")
			return
		}
		log.Printf("internal error in exercise ListSets: user_id=%s exercise_id=%d err=%v", userID, id, err)
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, toSetResponses(sets))
}
