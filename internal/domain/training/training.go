package training

import (
	"time"

	"github.com/google/uuid"
)

// Training представляет тренировку — именованную группу упражнений пользователя.
// Владелец определяется полем UserID и неизменяем после создания.
type Training struct {
	ID          int64     // Идентификатор тренировки
	UserID      uuid.UUID // Владелец
	Name        string    // Название тренировки
	Description string    // Описание (опционально)
	CreatedAt   time.Time // Время создания
	UpdatedAt   time.Time // Время последнего обновления
}

// NewTraining — фабрика для создания тренировки от имени пользователя.
// Идентификатор назначается хранилищем при сохранении.
func NewTraining(userID uuid.UUID, name, description string) *Training {
	now := time.Now().UTC()
	return &Training{
		UserID:      userID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// EntityID возвращает идентификатор тренировки.
func (t *Training) EntityID() int64 {
	return t.ID
}
