package workout_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	plandomain "gym-planner/internal/domain/plan"
	domain "gym-planner/internal/domain/workout"
	repo "gym-planner/internal/repository/interfaces"
	"gym-planner/internal/usecase/workout"
	"gym-planner/pkg/optional"
)

// fakeWorkoutRepo — in-memory реализация репозитория воркаутов.
type fakeWorkoutRepo struct {
	items     map[int64]*domain.Workout
	positions map[int64][]*domain.WorkoutExercise
	nextID    int64
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{
		items:     make(map[int64]*domain.Workout),
		positions: make(map[int64][]*domain.WorkoutExercise),
		nextID:    1,
	}
}

func (f *fakeWorkoutRepo) GetByID(_ context.Context, id int64) (*domain.Workout, error) {
	w, ok := f.items[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (f *fakeWorkoutRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]*domain.Workout, error) {
	var out []*domain.Workout
	for id := int64(1); id < f.nextID; id++ {
		if w, ok := f.items[id]; ok && w.UserID == userID {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeWorkoutRepo) Create(_ context.Context, w *domain.Workout) error {
	w.ID = f.nextID
	f.nextID++
	cp := *w
	f.items[w.ID] = &cp
	return nil
}

func (f *fakeWorkoutRepo) Update(_ context.Context, w *domain.Workout) error {
	if _, ok := f.items[w.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *w
	f.items[w.ID] = &cp
	return nil
}

func (f *fakeWorkoutRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.items, id)
	delete(f.positions, id)
	return nil
}

func (f *fakeWorkoutRepo) ListExercisesByWorkoutID(_ context.Context, workoutID int64) ([]*domain.WorkoutExercise, error) {
	return f.positions[workoutID], nil
}

// fakePlanRepo хранит планы с владельцами.
type fakePlanRepo struct {
	items []*plandomain.Plan
}

func (f *fakePlanRepo) GetByID(_ context.Context, id int64) (*plandomain.Plan, error) {
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakePlanRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]*plandomain.Plan, error) {
	var out []*plandomain.Plan
	for _, p := range f.items {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) Create(_ context.Context, _ *plandomain.Plan) error { return nil }
func (f *fakePlanRepo) Update(_ context.Context, _ *plandomain.Plan) error { return nil }
func (f *fakePlanRepo) Delete(_ context.Context, _ int64) error            { return nil }

func newTestService(t *testing.T) (workout.Service, *fakeWorkoutRepo, uuid.UUID, uuid.UUID) {
	t.Helper()

	owner := uuid.New()
	other := uuid.New()

	wRepo := newFakeWorkoutRepo()
	pRepo := &fakePlanRepo{items: []*plandomain.Plan{
		{ID: 10, UserID: owner, Name: "свой план"},
		{ID: 20, UserID: other, Name: "чужой план"},
	}}

	return workout.NewService(wRepo, pRepo), wRepo, owner, other
}

func TestCreate_PlanOwnership(t *testing.T) {
	svc, _, owner, _ := newTestService(t)
	ctx := context.Background()

	// Чужой план и несуществующий план дают одну и ту же ошибку доступа.
	foreign := int64(20)
	_, err := svc.Create(ctx, owner, workout.CreateInput{PlanID: &foreign})
	require.ErrorIs(t, err, workout.ErrPlanAccessDenied)

	missing := int64(777)
	_, err = svc.Create(ctx, owner, workout.CreateInput{PlanID: &missing})
	require.ErrorIs(t, err, workout.ErrPlanAccessDenied)

	own := int64(10)
	w, err := svc.Create(ctx, owner, workout.CreateInput{PlanID: &own})
	require.NoError(t, err)
	require.Equal(t, owner, w.UserID)
	require.NotZero(t, w.ID)
}

func TestCreate_DefaultsPerformedAt(t *testing.T) {
	svc, _, owner, _ := newTestService(t)
	ctx := context.Background()

	// Без performed_at подставляется текущее время.
	before := time.Now().UTC()
	w, err := svc.Create(ctx, owner, workout.CreateInput{})
	require.NoError(t, err)
	require.False(t, w.PerformedAt.Before(before))

	// Явное performed_at сохраняется как есть.
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	w, err = svc.Create(ctx, owner, workout.CreateInput{PerformedAt: at})
	require.NoError(t, err)
	require.Equal(t, at, w.PerformedAt)
}

func TestUpdate_MergeAndPlanClear(t *testing.T) {
	svc, _, owner, _ := newTestService(t)
	ctx := context.Background()

	own := int64(10)
	w, err := svc.Create(ctx, owner, workout.CreateInput{PlanID: &own, Notes: "неделя 1"})
	require.NoError(t, err)

	// Патч только notes: план сохраняется.
	updated, err := svc.Update(ctx, owner, workout.UpdateInput{
		ID:    w.ID,
		Notes: optional.Of("неделя 2"),
	})
	require.NoError(t, err)
	require.Equal(t, "неделя 2", updated.Notes)
	require.NotNil(t, updated.PlanID)
	require.Equal(t, own, *updated.PlanID)

	// Чужой план в патче отклоняется без изменения записи.
	_, err = svc.Update(ctx, owner, workout.UpdateInput{
		ID:     w.ID,
		PlanID: optional.Of(int64(20)),
	})
	require.ErrorIs(t, err, workout.ErrPlanAccessDenied)

	got, err := svc.GetByID(ctx, owner, w.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PlanID)

	// plan_id: null — явная отвязка от плана.
	detached, err := svc.Update(ctx, owner, workout.UpdateInput{
		ID:     w.ID,
		PlanID: optional.Null[int64](),
	})
	require.NoError(t, err)
	require.Nil(t, detached.PlanID)
}

func TestListExercises_OwnershipGuard(t *testing.T) {
	svc, wRepo, owner, other := newTestService(t)
	ctx := context.Background()

	w, err := svc.Create(ctx, owner, workout.CreateInput{})
	require.NoError(t, err)

	wRepo.positions[w.ID] = []*domain.WorkoutExercise{
		{ID: 1, WorkoutID: w.ID, ExerciseID: 1, Position: 0},
		{ID: 2, WorkoutID: w.ID, ExerciseID: 2, Position: 1},
	}

	positions, err := svc.ListExercises(ctx, owner, w.ID)
	require.NoError(t, err)
	require.Len(t, positions, 2)

	// Чужой воркаут: позиции не раскрываются, ответ — NotFound.
	_, err = svc.ListExercises(ctx, other, w.ID)
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestDelete_OwnershipGuard(t *testing.T) {
	svc, wRepo, owner, other := newTestService(t)
	ctx := context.Background()

	w, err := svc.Create(ctx, owner, workout.CreateInput{})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, other, w.ID), repo.ErrNotFound)
	require.Len(t, wRepo.items, 1)

	require.NoError(t, svc.Delete(ctx, owner, w.ID))
	require.Empty(t, wRepo.items)
}
