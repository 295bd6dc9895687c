package interfaces

import (
	"context"

	"github.com/google/uuid"

	domain "gym-planner/internal/domain/userexercise"
)

// UserExerciseRepository определяет контракт для работы с привязками
// пользователя к упражнениям каталога.
type UserExerciseRepository interface {
	// GetByID возвращает привязку по идентификатору без проверки владения.
	// Возвращает (nil, ErrNotFound), если привязка не найдена.
	GetByID(ctx context.Context, id int64) (*domain.UserExercise, error)

	// ListByUserID возвращает все привязки пользователя в стабильном порядке (id ASC).
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.UserExercise, error)

	// Create сохраняет новую привязку и проставляет назначенный хранилищем ID.
	Create(ctx context.Context, ue *domain.UserExercise) error

	// Update полностью перезаписывает привязку по её ID.
	// Поле user_id не обновляется. Возвращает ErrNotFound, если записи нет.
	Update(ctx context.Context, ue *domain.UserExercise) error

	// Delete удаляет привязку по идентификатору.
	// Проверка существования и владения — обязанность вызывающего слоя.
	Delete(ctx context.Context, id int64) error
}
