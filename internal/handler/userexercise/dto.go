package userexercise

import (
	"time"

	domain "gym-planner/internal/domain/userexercise"
	"gym-planner/pkg/optional"
)

// CreateRequest описывает тело запроса создания привязки к упражнению.
// Владелец записи не принимается от клиента: он берётся из принципала.
type CreateRequest struct {
	ExerciseID int64  `json:"exercise_id" binding:"required,gt=0"`
	TrainingID *int64 `json:"training_id,omitempty" binding:"omitempty,gt=0"`
	Notes      string `json:"notes,omitempty"`
}

// UpdateRequest описывает тело PATCH-запроса: id обязателен,
// остальные поля применяются только если присутствуют в JSON.
// training_id: null явно отвязывает запись от тренировки.
type UpdateRequest struct {
	ID         int64                  `json:"id" binding:"required,gt=0"`
	ExerciseID optional.Value[int64]  `json:"exercise_id"`
	TrainingID optional.Value[int64]  `json:"training_id"`
	Notes      optional.Value[string] `json:"notes"`
}

// UserExerciseResponse описывает привязку в ответе API.
type UserExerciseResponse struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	ExerciseID int64     `json:"exercise_id"`
	TrainingID *int64    `json:"training_id"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// toResponse маппит доменную модель в DTO.
func toResponse(ue *domain.UserExercise) UserExerciseResponse {
	return UserExerciseResponse{
		ID:         ue.ID,
		UserID:     ue.UserID.String(),
		ExerciseID: ue.ExerciseID,
		TrainingID: ue.TrainingID,
		Notes:      ue.Notes,
		CreatedAt:  ue.CreatedAt,
		UpdatedAt:  ue.UpdatedAt,
	}
}

// toResponses маппит срез доменных моделей в DTO.
func toResponses(items []*domain.UserExercise) []UserExerciseResponse {
	result := make([]UserExerciseResponse, 0, len(items))
	for _, ue := range items {
		result = append(result, toResponse(ue))
	}
	return result
}
