package workout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "gym-planner/internal/domain/workout"
	repo "gym-planner/internal/repository/interfaces"
	"gym-planner/internal/usecase/guard"
	"gym-planner/pkg/optional"
)

// ErrPlanAccessDenied — plan_id не входит в планы принципала
// (не существует или принадлежит другому пользователю).
var ErrPlanAccessDenied = fmt.Errorf("no access to plan")

// CreateInput описывает данные для создания воркаута.
// Владелец не принимается извне: его проставляет сервис из принципала.
type CreateInput struct {
	PlanID      *int64
	PerformedAt time.Time
	Notes       string
}

// UpdateInput описывает частичное обновление воркаута.
// Поля обёрнуты в optional.Value: отсутствующее поле сохраняет значение
// базовой записи, null для PlanID явно сбрасывает привязку к плану.
type UpdateInput struct {
	ID          int64
	PlanID      optional.Value[int64]
	PerformedAt optional.Value[time.Time]
	Notes       optional.Value[string]
}

// Service описывает usecase-слой воркаутов.
// Все операции выполняются от имени принципала userID.
type Service interface {
	// Create создаёт воркаут. plan_id, если задан, должен принадлежать
	// принципалу (ErrPlanAccessDenied).
	Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.Workout, error)

	// GetByID возвращает воркаут принципала.
	// Возвращает repo.ErrNotFound, если его нет или он принадлежит другому.
	GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.Workout, error)

	// List возвращает все воркауты принципала.
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Workout, error)

	// ListExercises возвращает позиции воркаута принципала.
	// Владение воркаутом проверяется до выборки позиций (repo.ErrNotFound).
	ListExercises(ctx context.Context, userID uuid.UUID, workoutID int64) ([]*domain.WorkoutExercise, error)

	// Update применяет частичное обновление к воркауту принципала.
	// Порядок проверок: владение целью (repo.ErrNotFound), затем plan_id
	// из патча (ErrPlanAccessDenied), затем merge и запись.
	Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*domain.Workout, error)

	// Delete удаляет воркаут принципала вместе с позициями и подходами.
	// Возвращает repo.ErrNotFound, если его нет или он принадлежит другому.
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
}

type service struct {
	workouts repo.WorkoutRepository
	plans    repo.PlanRepository
}

// NewService создаёт новый сервис воркаутов.
func NewService(workouts repo.WorkoutRepository, plans repo.PlanRepository) Service {
	return &service{
		workouts: workouts,
		plans:    plans,
	}
}

// validatePlanRef проверяет, что plan_id входит в планы принципала.
// Любой промах — и несуществующий id, и чужой план — даёт одну и ту же
// ошибку доступа.
func (s *service) validatePlanRef(ctx context.Context, userID uuid.UUID, planID int64) error {
	plans, err := s.plans.ListByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if !guard.ContainsID(plans, planID) {
		return ErrPlanAccessDenied
	}
	return nil
}

// Create создаёт воркаут от имени принципала.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.Workout, error) {
	if input.PlanID != nil {
		if err := s.validatePlanRef(ctx, userID, *input.PlanID); err != nil {
			return nil, err
		}
	}

	performedAt := input.PerformedAt
	if performedAt.IsZero() {
		performedAt = time.Now().UTC()
	}

	w := domain.NewWorkout(userID, input.PlanID, performedAt, input.Notes)
	if err := s.workouts.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// GetByID возвращает воркаут принципала по идентификатору.
func (s *service) GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.Workout, error) {
	owned, err := s.workouts.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	w, ok := guard.FindOwned(owned, id)
	if !ok {
		return nil, repo.ErrNotFound
	}
	return w, nil
}

// List возвращает все воркауты принципала.
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]*domain.Workout, error) {
	return s.workouts.ListByUserID(ctx, userID)
}

// ListExercises возвращает позиции воркаута принципала.
func (s *service) ListExercises(ctx context.Context, userID uuid.UUID, workoutID int64) ([]*domain.WorkoutExercise, error) {
	if _, err := s.GetByID(ctx, userID, workoutID); err != nil {
		return nil, err
	}
	return s.workouts.ListExercisesByWorkoutID(ctx, workoutID)
}

// Update применяет частичное обновление к воркауту принципала.
func (s *service) Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*domain.Workout, error) {
	// 1. Владение целью: чужой или несуществующий воркаут — единый NotFound.
	base, err := s.GetByID(ctx, userID, input.ID)
	if err != nil {
		return nil, err
	}

	// 2. Ссылка на план валидируется относительно принципала-владельца
	// базовой записи, до какого-либо изменения состояния.
	if planID, ok := input.PlanID.Get(); ok {
		if err := s.validatePlanRef(ctx, userID, planID); err != nil {
			return nil, err
		}
	}

	// 3. Merge: перезаписываются только явно присланные поля.
	if input.PlanID.IsSet() {
		if planID, ok := input.PlanID.Get(); ok {
			base.PlanID = &planID
		} else {
			// plan_id: null — явный сброс привязки к плану.
			base.PlanID = nil
		}
	}
	if performedAt, ok := input.PerformedAt.Get(); ok {
		base.PerformedAt = performedAt
	}
	if notes, ok := input.Notes.Get(); ok {
		base.Notes = notes
	}
	base.UpdatedAt = time.Now().UTC()

	if err := s.workouts.Update(ctx, base); err != nil {
		return nil, err
	}
	return base, nil
}

// Delete удаляет воркаут принципала по идентификатору.
func (s *service) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.workouts.Delete(ctx, id)
}
