package training

import (
	"time"

	domain "gym-planner/internal/domain/training"
	"gym-planner/pkg/optional"
)

// CreateRequest описывает тело запроса создания тренировки.
type CreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateRequest описывает тело частичного обновления тренировки.
// Идентификатор цели передаётся в теле; применяются только присутствующие поля.
type UpdateRequest struct {
	ID          int64                  `json:"id" binding:"required,gt=0"`
	Name        optional.Value[string] `json:"name"`
	Description optional.Value[string] `json:"description"`
}

// TrainingResponse описывает тренировку в ответах API.
type TrainingResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toResponse(t *domain.Training) TrainingResponse {
	return TrainingResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toResponses(items []*domain.Training) []TrainingResponse {
	out := make([]TrainingResponse, 0, len(items))
	for _, t := range items {
		out = append(out, toResponse(t))
	}
	return out
}
