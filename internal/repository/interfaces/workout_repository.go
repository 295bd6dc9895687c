package interfaces

import (
	"context"

	"github.com/google/uuid"

	domain "gym-planner/internal/domain/workout"
)

// WorkoutRepository определяет контракт для работы с воркаутами и их позициями.
type WorkoutRepository interface {
	// GetByID возвращает воркаут по идентификатору без проверки владения.
	// Возвращает (nil, ErrNotFound), если воркаут не найден.
	GetByID(ctx context.Context, id int64) (*domain.Workout, error)

	// ListByUserID возвращает все воркауты пользователя в стабильном порядке (id ASC).
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Workout, error)

	// Create сохраняет новый воркаут и проставляет назначенный хранилищем ID.
	Create(ctx context.Context, w *domain.Workout) error

	// Update полностью перезаписывает воркаут по его ID.
	// Поле user_id не обновляется. Возвращает ErrNotFound, если записи нет.
	Update(ctx context.Context, w *domain.Workout) error

	// Delete удаляет воркаут по идентификатору вместе с позициями и подходами
	// (каскад на уровне схемы БД).
	// Проверка существования и владения — обязанность вызывающего слоя.
	Delete(ctx context.Context, id int64) error

	// ListExercisesByWorkoutID возвращает позиции воркаута в порядке position ASC.
	// Проверка владения воркаутом — обязанность вызывающего слоя.
	ListExercisesByWorkoutID(ctx context.Context, workoutID int64) ([]*domain.WorkoutExercise, error)
}
