package plan

import (
	"time"

	"github.com/google/uuid"
)

// Plan представляет план тренировок пользователя, к которому могут
// привязываться выполненные воркауты. Владелец определяется полем UserID
// и неизменяем после создания.
type Plan struct {
	ID          int64     // Идентификатор плана
	UserID      uuid.UUID // Владелец
	Name        string    // Название плана
	Description string    // Описание (опционально)
	CreatedAt   time.Time // Время создания
	UpdatedAt   time.Time // Время последнего обновления
}

// NewPlan — фабрика для создания плана от имени пользователя.
// Идентификатор назначается хранилищем при сохранении.
func NewPlan(userID uuid.UUID, name, description string) *Plan {
	now := time.Now().UTC()
	return &Plan{
		UserID:      userID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// EntityID возвращает идентификатор плана.
func (p *Plan) EntityID() int64 {
	return p.ID
}
