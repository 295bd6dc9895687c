package interfaces

import (
	"context"

	"github.com/google/uuid"

	domain "gym-planner/internal/domain/training"
)

// TrainingRepository определяет контракт для работы с тренировками пользователя.
type TrainingRepository interface {
	// GetByID возвращает тренировку по идентификатору без проверки владения.
	// Возвращает (nil, ErrNotFound), если тренировка не найдена.
	GetByID(ctx context.Context, id int64) (*domain.Training, error)

	// ListByUserID возвращает все тренировки пользователя в стабильном порядке (id ASC).
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Training, error)

	// Create сохраняет новую тренировку и проставляет назначенный хранилищем ID.
	Create(ctx context.Context, t *domain.Training) error

	// Update полностью перезаписывает тренировку по её ID.
	// Поле user_id не обновляется. Возвращает ErrNotFound, если записи нет.
	Update(ctx context.Context, t *domain.Training) error

	// Delete удаляет тренировку по идентификатору.
	// Проверка существования и владения — обязанность вызывающего слоя.
	Delete(ctx context.Context, id int64) error
}
