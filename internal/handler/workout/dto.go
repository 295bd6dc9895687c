package workout

import (
	"time"

	domain "gym-planner/internal/domain/workout"
	"gym-planner/pkg/optional"
)

// CreateRequest описывает тело запроса создания воркаута.
// Владелец записи не принимается от клиента: он берётся из принципала.
type CreateRequest struct {
	PlanID      *int64     `json:"plan_id,omitempty" binding:"omitempty,gt=0"`
	PerformedAt *time.Time `json:"performed_at,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// UpdateRequest описывает тело PATCH-запроса: id обязателен,
// остальные поля применяются только если присутствуют в JSON.
// plan_id: null явно отвязывает воркаут от плана.
type UpdateRequest struct {
	ID          int64                     `json:"id" binding:"required,gt=0"`
	PlanID      optional.Value[int64]     `json:"plan_id"`
	PerformedAt optional.Value[time.Time] `json:"performed_at"`
	Notes       optional.Value[string]    `json:"notes"`
}

// WorkoutResponse описывает воркаут в ответе API.
type WorkoutResponse struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	PlanID      *int64    `json:"plan_id"`
	PerformedAt time.Time `json:"performed_at"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WorkoutExerciseResponse описывает позицию воркаута в ответе API.
type WorkoutExerciseResponse struct {
	ID         int64     `json:"id"`
	WorkoutID  int64     `json:"workout_id"`
	ExerciseID int64     `json:"exercise_id"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

// toResponse маппит доменную модель в DTO.
func toResponse(w *domain.Workout) WorkoutResponse {
	return WorkoutResponse{
		ID:          w.ID,
		UserID:      w.UserID.String(),
		PlanID:      w.PlanID,
		PerformedAt: w.PerformedAt,
		Notes:       w.Notes,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

// toResponses маппит срез доменных моделей в DTO.
func toResponses(items []*domain.Workout) []WorkoutResponse {
	result := make([]WorkoutResponse, 0, len(items))
	for _, w := range items {
		result = append(result, toResponse(w))
	}
	return result
}

// toExerciseResponses маппит срез позиций воркаута в DTO.
func toExerciseResponses(items []*domain.WorkoutExercise) []WorkoutExerciseResponse {
	result := make([]WorkoutExerciseResponse, 0, len(items))
	for _, we := range items {
		result = append(result, WorkoutExerciseResponse{
			ID:         we.ID,
			WorkoutID:  we.WorkoutID,
			ExerciseID: we.ExerciseID,
			Position:   we.Position,
			CreatedAt:  we.CreatedAt,
		})
	}
	return result
}
