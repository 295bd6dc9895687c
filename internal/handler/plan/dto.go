package plan

import (
	"time"

	domain "gym-planner/internal/domain/plan"
	"gym-planner/pkg/optional"
)

// CreateRequest описывает тело запроса создания плана.
type CreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateRequest описывает тело частичного обновления плана.
// Идентификатор цели передаётся в теле; применяются только присутствующие поля.
type UpdateRequest struct {
	ID          int64                  `json:"id" binding:"required,gt=0"`
	Name        optional.Value[string] `json:"name"`
	Description optional.Value[string] `json:"description"`
}

// PlanResponse описывает план в ответах API.
type PlanResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toResponse(p *domain.Plan) PlanResponse {
	return PlanResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toResponses(items []*domain.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toResponse(p))
	}
	return out
}
