package workout

import (
	"time"

	"github.com/google/uuid"
)

// Workout представляет зафиксированную тренировочную сессию пользователя.
//
// Инварианты:
//   - UserID неизменяем после создания и всегда равен принципалу, создавшему запись;
//   - PlanID, если задан, ссылается на план того же пользователя.
type Workout struct {
	ID          int64     // Идентификатор воркаута
	UserID      uuid.UUID // Владелец
	PlanID      *int64    // Ссылка на план владельца (опционально)
	PerformedAt time.Time // Дата и время выполнения
	Notes       string    // Заметки (опционально)
	CreatedAt   time.Time // Время создания
	UpdatedAt   time.Time // Время последнего обновления
}

// NewWorkout — фабрика для создания воркаута от имени пользователя.
// Идентификатор назначается хранилищем при сохранении.
func NewWorkout(userID uuid.UUID, planID *int64, performedAt time.Time, notes string) *Workout {
	now := time.Now().UTC()
	return &Workout{
		UserID:      userID,
		PlanID:      planID,
		PerformedAt: performedAt,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// EntityID возвращает идентификатор воркаута.
func (w *Workout) EntityID() int64 {
	return w.ID
}

// WorkoutExercise представляет позицию (упражнение) внутри воркаута.
// Владение транзитивно: WorkoutID -> Workout.UserID.
type WorkoutExercise struct {
	ID         int64     // Идентификатор позиции
	WorkoutID  int64     // Воркаут, к которому относится позиция
	ExerciseID int64     // Упражнение каталога
	Position   int       // Порядковый номер внутри воркаута
	CreatedAt  time.Time // Время создания
}

// EntityID возвращает идентификатор позиции.
func (we *WorkoutExercise) EntityID() int64 {
	return we.ID
}

// Set представляет один подход, выполненный в рамках позиции воркаута.
// Владение транзитивно: WorkoutExerciseID -> WorkoutExercise -> Workout.UserID.
type Set struct {
	ID                int64     // Идентификатор подхода
	WorkoutExerciseID int64     // Позиция воркаута
	Reps              int       // Количество повторений
	Weight            float64   // Вес снаряда, кг
	CompletedAt       time.Time // Время выполнения подхода
}

// EntityID возвращает идентификатор подхода.
func (s *Set) EntityID() int64 {
	return s.ID
}
