package exercise

import (
	"context"

	"github.com/google/uuid"

	domain "gym-planner/internal/domain/exercise"
	workoutdomain "gym-planner/internal/domain/workout"
	repo "gym-planner/internal/repository/interfaces"
)

// Значения пагинации каталога по умолчанию.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Service описывает usecase-слой глобального каталога упражнений.
//
// Каталог не принадлежит пользователям: чтение не требует проверок владения.
// Единственная операция с принципалом — выборка его собственных подходов
// в заданном упражнении.
type Service interface {
	// List возвращает страницу каталога. Отрицательные skip/limit нормализуются,
	// limit ограничивается сверху MaxLimit.
	List(ctx context.Context, skip, limit int) ([]*domain.Exercise, error)

	// GetByID возвращает упражнение каталога.
	// Возвращает repo.ErrNotFound, если упражнение не найдено.
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)

	// ListUserSets возвращает подходы принципала в заданном упражнении.
	// Сначала проверяется существование самого упражнения (repo.ErrNotFound),
	// затем выбираются только подходы принципала — фильтр по владельцу подходов,
	// а не по «владению» упражнением, которого у каталога нет.
	ListUserSets(ctx context.Context, userID uuid.UUID, exerciseID int64) ([]*workoutdomain.Set, error)
}

type service struct {
	exercises repo.ExerciseRepository
}

// NewService создаёт новый сервис каталога упражнений.
func NewService(exercises repo.ExerciseRepository) Service {
	return &service{exercises: exercises}
}

// List возвращает страницу каталога.
func (s *service) List(ctx context.Context, skip, limit int) ([]*domain.Exercise, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return s.exercises.List(ctx, skip, limit)
}

// GetByID возвращает упражнение каталога по идентификатору.
func (s *service) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	return s.exercises.GetByID(ctx, id)
}

// ListUserSets возвращает подходы принципала в заданном упражнении каталога.
func (s *service) ListUserSets(ctx context.Context, userID uuid.UUID, exerciseID int64) ([]*workoutdomain.Set, error) {
	// Существование упражнения проверяется до выборки подходов,
	// чтобы несуществующий id давал NotFound, а не пустой список.
	if _, err := s.exercises.GetByID(ctx, exerciseID); err != nil {
		return nil, err
	}

	return s.exercises.ListSetsByUser(ctx, exerciseID, userID)
}
