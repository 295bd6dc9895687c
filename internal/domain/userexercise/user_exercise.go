package userexercise

import (
	"time"

	"github.com/google/uuid"
)

// UserExercise представляет персональную привязку пользователя к упражнению
// глобального каталога, опционально сгруппированную в тренировку.
//
// Инварианты:
//   - UserID неизменяем после создания и всегда равен принципалу, создавшему запись;
//   - ExerciseID ссылается на существующую запись каталога (без проверки владения);
//   - TrainingID, если задан, ссылается на тренировку того же пользователя.
type UserExercise struct {
	ID         int64     // Идентификатор записи
	UserID     uuid.UUID // Владелец
	ExerciseID int64     // Ссылка на упражнение каталога
	TrainingID *int64    // Ссылка на тренировку владельца (опционально)
	Notes      string    // Заметки пользователя (опционально)
	CreatedAt  time.Time // Время создания
	UpdatedAt  time.Time // Время последнего обновления
}

// NewUserExercise — фабрика для создания привязки от имени пользователя.
// Идентификатор назначается хранилищем при сохранении.
func NewUserExercise(userID uuid.UUID, exerciseID int64, trainingID *int64, notes string) *UserExercise {
	now := time.Now().UTC()
	return &UserExercise{
		UserID:     userID,
		ExerciseID: exerciseID,
		TrainingID: trainingID,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// EntityID возвращает идентификатор записи.
func (ue *UserExercise) EntityID() int64 {
	return ue.ID
}
