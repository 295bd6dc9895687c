package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "gym-planner/internal/domain/plan"
	repo "gym-planner/internal/repository/interfaces"
	"gym-planner/internal/usecase/guard"
	"gym-planner/pkg/optional"
)

// CreateInput описывает данные для создания плана.
type CreateInput struct {
	Name        string
	Description string
}

// UpdateInput описывает частичное обновление плана.
type UpdateInput struct {
	ID          int64
	Name        optional.Value[string]
	Description optional.Value[string]
}

// Service описывает usecase-слой планов тренировок.
// Все операции выполняются от имени принципала userID; недоступность
// плана (чужой или несуществующий) схлопывается в repo.ErrNotFound.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.Plan, error)
	GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.Plan, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Plan, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*domain.Plan, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
}

type service struct {
	plans repo.PlanRepository
}

// NewService создаёт новый сервис планов.
func NewService(plans repo.PlanRepository) Service {
	return &service{plans: plans}
}

// Create создаёт план от имени принципала.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.Plan, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("plan name is required")
	}

	p := domain.NewPlan(userID, input.Name, input.Description)
	if err := s.plans.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID возвращает план принципала по идентификатору.
func (s *service) GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.Plan, error) {
	owned, err := s.plans.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, ok := guard.FindOwned(owned, id)
	if !ok {
		return nil, repo.ErrNotFound
	}
	return p, nil
}

// List возвращает все планы принципала.
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]*domain.Plan, error) {
	return s.plans.ListByUserID(ctx, userID)
}

// Update применяет частичное обновление к плану принципала.
func (s *service) Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*domain.Plan, error) {
	base, err := s.GetByID(ctx, userID, input.ID)
	if err != nil {
		return nil, err
	}

	if name, ok := input.Name.Get(); ok {
		base.Name = name
	}
	if description, ok := input.Description.Get(); ok {
		base.Description = description
	}
	base.UpdatedAt = time.Now().UTC()

	if err := s.plans.Update(ctx, base); err != nil {
		return nil, err
	}
	return base, nil
}

// Delete удаляет план принципала по идентификатору.
func (s *service) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.plans.Delete(ctx, id)
}
