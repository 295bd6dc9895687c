package training

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "gym-planner/internal/domain/training"
	repo "gym-planner/internal/repository/interfaces"
	"gym-planner/internal/usecase/guard"
	"gym-planner/pkg/optional"
)

// CreateInput описывает данные для создания тренировки.
type CreateInput struct {
	Name        string
	Description string
}

// UpdateInput описывает частичное обновление тренировки.
type UpdateInput struct {
	ID          int64
	Name        optional.Value[string]
	Description optional.Value[string]
}

// Service описывает usecase-слой тренировок.
// Все операции выполняются от имени принципала userID; недоступность
// тренировки (чужая или несуществующая) схлопывается в repo.ErrNotFound.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.Training, error)
	GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.Training, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Training, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*domain.Training, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
}

type service struct {
	trainings repo.TrainingRepository
}

// NewService создаёт новый сервис тренировок.
func NewService(trainings repo.TrainingRepository) Service {
	return &service{trainings: trainings}
}

// Create создаёт тренировку от имени принципала.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.Training, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("training name is required")
	}

	t := domain.NewTraining(userID, input.Name, input.Description)
	if err := s.trainings.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetByID возвращает тренировку принципала по идентификатору.
func (s *service) GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.Training, error) {
	owned, err := s.trainings.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	t, ok := guard.FindOwned(owned, id)
	if !ok {
		return nil, repo.ErrNotFound
	}
	return t, nil
}

// List возвращает все тренировки принципала.
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]*domain.Training, error) {
	return s.trainings.ListByUserID(ctx, userID)
}

// Update применяет частичное обновление к тренировке принципала.
func (s *service) Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*domain.Training, error) {
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

	if err := s.trainings.Update(ctx, base); err != nil {
		return nil, err
	}
	return base, nil
}

// Delete удаляет тренировку принципала по идентификатору.
func (s *service) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.trainings.Delete(ctx, id)
}
