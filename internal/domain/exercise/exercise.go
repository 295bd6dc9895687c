package exercise

import "time"

// MuscleGroup описывает основную группу мышц, на которую направлено упражнение.
type MuscleGroup string

const (
	MuscleGroupChest     MuscleGroup = "chest"
	MuscleGroupBack      MuscleGroup = "back"
	MuscleGroupLegs      MuscleGroup = "legs"
	MuscleGroupShoulders MuscleGroup = "shoulders"
	MuscleGroupArms      MuscleGroup = "arms"
	MuscleGroupCore      MuscleGroup = "core"
	MuscleGroupFullBody  MuscleGroup = "full_body"
)

// Exercise представляет запись глобального каталога упражнений.
//
// Каталог общий для всех пользователей: записи не принадлежат никому,
// доступны на чтение без аутентификации и не изменяются через API
// (наполняются миграциями/сидами).
type Exercise struct {
	ID          int64       // Идентификатор записи каталога
	Name        string      // Название упражнения
	Description string      // Описание техники выполнения
	MuscleGroup MuscleGroup // Основная группа мышц
	Equipment   string      // Необходимое оборудование (опционально)
	CreatedAt   time.Time   // Время добавления в каталог
}

// EntityID возвращает идентификатор записи каталога.
func (e *Exercise) EntityID() int64 {
	return e.ID
}
