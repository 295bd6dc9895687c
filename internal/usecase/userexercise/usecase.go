package userexercise

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "gym-planner/internal/domain/userexercise"
	repo "gym-planner/internal/repository/interfaces"
	"gym-planner/internal/usecase/guard"
	"gym-planner/pkg/optional"
)

// Ошибки бизнес-логики usecase-слоя.
//
// Обратите внимание на асимметрию: недоступность первичного ресурса
// (самой привязки) схлопывается в repo.ErrNotFound, а ссылка на чужую
// тренировку в теле запроса даёт отдельную ошибку доступа. Это сделано
// намеренно: существование первичного ресурса скрывается, существование
// вторичного — нет.
var (
	// ErrExerciseNotFound — exercise_id не ссылается на запись каталога.
	ErrExerciseNotFound = fmt.Errorf("exercise with given id does not exist")

	// ErrTrainingAccessDenied — training_id не входит в тренировки принципала
	// (не существует или принадлежит другому пользователю).
	ErrTrainingAccessDenied = fmt.Errorf("no access to training")
)

// CreateInput описывает данные для создания привязки.
// Владелец не принимается извне: его проставляет сервис из принципала.
type CreateInput struct {
	ExerciseID int64
	TrainingID *int64
	Notes      string
}

// UpdateInput описывает частичное обновление привязки.
// Поля обёрнуты в optional.Value: отсутствующее поле сохраняет значение
// базовой записи, null для TrainingID явно сбрасывает группировку.
type UpdateInput struct {
	ID         int64
	ExerciseID optional.Value[int64]
	TrainingID optional.Value[int64]
	Notes      optional.Value[string]
}

// Service описывает usecase-слой привязок пользователя к упражнениям каталога.
// Все операции выполняются от имени принципала userID.
type Service interface {
	// Create создаёт привязку. Перед записью валидируются ссылки:
	// exercise_id должен существовать в каталоге (ErrExerciseNotFound),
	// training_id, если задан, — принадлежать принципалу (ErrTrainingAccessDenied).
	Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.UserExercise, error)

	// GetByID возвращает привязку принципала.
	// Возвращает repo.ErrNotFound, если её нет или она принадлежит другому.
	GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.UserExercise, error)

	// List возвращает все привязки принципала.
	List(ctx context.Context, userID uuid.UUID) ([]*domain.UserExercise, error)

	// Update применяет частичное обновление к привязке принципала.
	// Порядок проверок: владение целью (repo.ErrNotFound), затем ссылки
	// из патча (ErrExerciseNotFound / ErrTrainingAccessDenied), затем merge и запись.
	Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*domain.UserExercise, error)

	// Delete удаляет привязку принципала.
	// Возвращает repo.ErrNotFound, если её нет или она принадлежит другому.
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
}

type service struct {
	userExercises repo.UserExerciseRepository
	exercises     repo.ExerciseRepository
	trainings     repo.TrainingRepository
}

// NewService создаёт новый сервис привязок к упражнениям.
func NewService(
	userExercises repo.UserExerciseRepository,
	exercises repo.ExerciseRepository,
	trainings repo.TrainingRepository,
) Service {
	return &service{
		userExercises: userExercises,
		exercises:     exercises,
		trainings:     trainings,
	}
}

// validateExerciseRef проверяет, что exercise_id ссылается на запись каталога.
// Владение не проверяется: каталог общий.
func (s *service) validateExerciseRef(ctx context.Context, exerciseID int64) error {
	if _, err := s.exercises.GetByID(ctx, exerciseID); err != nil {
		if err == repo.ErrNotFound {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}

// validateTrainingRef проверяет, что training_id входит в тренировки принципала.
// Любой промах — и несуществующий id, и чужая тренировка — даёт одну и ту же
// ошибку доступа.
func (s *service) validateTrainingRef(ctx context.Context, userID uuid.UUID, trainingID int64) error {
	trainings, err := s.trainings.ListByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if !guard.ContainsID(trainings, trainingID) {
		return ErrTrainingAccessDenied
	}
	return nil
}

// Create создаёт привязку от имени принципала.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.UserExercise, error) {
	if err := s.validateExerciseRef(ctx, input.ExerciseID); err != nil {
		return nil, err
	}

	if input.TrainingID != nil {
		if err := s.validateTrainingRef(ctx, userID, *input.TrainingID); err != nil {
			return nil, err
		}
	}

	ue := domain.NewUserExercise(userID, input.ExerciseID, input.TrainingID, input.Notes)
	if err := s.userExercises.Create(ctx, ue); err != nil {
		return nil, err
	}
	return ue, nil
}

// GetByID возвращает привязку принципала по идентификатору.
func (s *service) GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.UserExercise, error) {
	owned, err := s.userExercises.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ue, ok := guard.FindOwned(owned, id)
	if !ok {
		return nil, repo.ErrNotFound
	}
	return ue, nil
}

// List возвращает все привязки принципала.
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]*domain.UserExercise, error) {
	return s.userExercises.ListByUserID(ctx, userID)
}

// Update применяет частичное обновление к привязке принципала.
func (s *service) Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*domain.UserExercise, error) {
	// 1. Владение целью: чужая или несуществующая привязка — единый NotFound.
	base, err := s.GetByID(ctx, userID, input.ID)
	if err != nil {
		return nil, err
	}

	// 2. Ссылки из патча валидируются относительно принципала-владельца
	// базовой записи, до какого-либо изменения состояния.
	if exerciseID, ok := input.ExerciseID.Get(); ok {
		if err := s.validateExerciseRef(ctx, exerciseID); err != nil {
			return nil, err
		}
	}
	if trainingID, ok := input.TrainingID.Get(); ok {
		if err := s.validateTrainingRef(ctx, userID, trainingID); err != nil {
			return nil, err
		}
	}

	// 3. Merge: перезаписываются только явно присланные поля.
	if exerciseID, ok := input.ExerciseID.Get(); ok {
		base.ExerciseID = exerciseID
	}
	if input.TrainingID.IsSet() {
		if trainingID, ok := input.TrainingID.Get(); ok {
			base.TrainingID = &trainingID
		} else {
			// training_id: null — явный сброс группировки.
			base.TrainingID = nil
		}
	}
	if notes, ok := input.Notes.Get(); ok {
		base.Notes = notes
	}
	base.UpdatedAt = time.Now().UTC()

	if err := s.userExercises.Update(ctx, base); err != nil {
		return nil, err
	}
	return base, nil
}

// Delete удаляет привязку принципала по идентификатору.
func (s *service) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.userExercises.Delete(ctx, id)
}
