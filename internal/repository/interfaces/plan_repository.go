package interfaces

import (
	"context"

	"github.com/google/uuid"

	domain "gym-planner/internal/domain/plan"
)

// PlanRepository определяет контракт для работы с планами тренировок пользователя.
type PlanRepository interface {
	// GetByID возвращает план по идентификатору без проверки владения.
	// Возвращает (nil, ErrNotFound), если план не найден.
	GetByID(ctx context.Context, id int64) (*domain.Plan, error)

	// ListByUserID возвращает все планы пользователя в стабильном порядке (id ASC).
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Plan, error)

	// Create сохраняет новый план и проставляет назначенный хранилищем ID.
	Create(ctx context.Context, p *domain.Plan) error

	// Update полностью перезаписывает план по его ID.
	// Поле user_id не обновляется. Возвращает ErrNotFound, если записи нет.
	Update(ctx context.Context, p *domain.Plan) error

	// Delete удаляет план по идентификатору.
	// Проверка существования и владения — обязанность вызывающего слоя.
	Delete(ctx context.Context, id int64) error
}
