package interfaces

import (
	"context"

	"github.com/google/uuid"

	domain "gym-planner/internal/domain/exercise"
	workoutdomain "gym-planner/internal/domain/workout"
)

// ExerciseRepository определяет контракт для чтения глобального каталога упражнений.
//
// Каталог не принадлежит пользователям и не изменяется через API,
// поэтому контракт ограничен операциями чтения.
type ExerciseRepository interface {
	// GetByID возвращает упражнение каталога по идентификатору.
	// Возвращает (nil, ErrNotFound), если упражнение не найдено.
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)

	// List возвращает страницу каталога: skip записей пропускается,
	// limit ограничивает размер страницы. Порядок стабилен (id ASC),
	// поэтому последовательные страницы не пересекаются.
	List(ctx context.Context, skip, limit int) ([]*domain.Exercise, error)

	// ListSetsByUser возвращает подходы пользователя, выполненные
	// в заданном упражнении каталога (через цепочку
	// set -> workout_exercise -> workout -> user).
	ListSetsByUser(ctx context.Context, exerciseID int64, userID uuid.UUID) ([]*workoutdomain.Set, error)
}
