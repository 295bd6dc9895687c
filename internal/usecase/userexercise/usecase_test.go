package userexercise_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	exercisedomain "gym-planner/internal/domain/exercise"
	trainingdomain "gym-planner/internal/domain/training"
	domain "gym-planner/internal/domain/userexercise"
	workoutdomain "gym-planner/internal/domain/workout"
	repo "gym-planner/internal/repository/interfaces"
	"gym-planner/internal/usecase/userexercise"
	"gym-planner/pkg/optional"
)

// fakeUserExerciseRepo — in-memory реализация репозитория привязок.
type fakeUserExerciseRepo struct {
	items  map[int64]*domain.UserExercise
	nextID int64
}

func newFakeUserExerciseRepo() *fakeUserExerciseRepo {
	return &fakeUserExerciseRepo{items: make(map[int64]*domain.UserExercise), nextID: 1}
}

func (f *fakeUserExerciseRepo) GetByID(_ context.Context, id int64) (*domain.UserExercise, error) {
	ue, ok := f.items[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *ue
	return &cp, nil
}

func (f *fakeUserExerciseRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]*domain.UserExercise, error) {
	var out []*domain.UserExercise
	for id := int64(1); id < f.nextID; id++ {
		if ue, ok := f.items[id]; ok && ue.UserID == userID {
			cp := *ue
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeUserExerciseRepo) Create(_ context.Context, ue *domain.UserExercise) error {
	ue.ID = f.nextID
	f.nextID++
	cp := *ue
	f.items[ue.ID] = &cp
	return nil
}

func (f *fakeUserExerciseRepo) Update(_ context.Context, ue *domain.UserExercise) error {
	if _, ok := f.items[ue.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *ue
	f.items[ue.ID] = &cp
	return nil
}

func (f *fakeUserExerciseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// fakeExerciseRepo — каталог из фиксированного набора id.
type fakeExerciseRepo struct {
	known map[int64]bool
}

func (f *fakeExerciseRepo) GetByID(_ context.Context, id int64) (*exercisedomain.Exercise, error) {
	if !f.known[id] {
		return nil, repo.ErrNotFound
	}
	return &exercisedomain.Exercise{ID: id, Name: "exercise"}, nil
}

func (f *fakeExerciseRepo) List(_ context.Context, _, _ int) ([]*exercisedomain.Exercise, error) {
	return nil, nil
}

func (f *fakeExerciseRepo) ListSetsByUser(_ context.Context, _ int64, _ uuid.UUID) ([]*workoutdomain.Set, error) {
	return nil, nil
}

// fakeTrainingRepo хранит тренировки с владельцами.
type fakeTrainingRepo struct {
	items []*trainingdomain.Training
}

func (f *fakeTrainingRepo) GetByID(_ context.Context, id int64) (*trainingdomain.Training, error) {
	for _, tr := range f.items {
		if tr.ID == id {
			return tr, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeTrainingRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]*trainingdomain.Training, error) {
	var out []*trainingdomain.Training
	for _, tr := range f.items {
		if tr.UserID == userID {
			out = append(out, tr)
		}
	}
	return out, nil
}

func (f *fakeTrainingRepo) Create(_ context.Context, _ *trainingdomain.Training) error { return nil }
func (f *fakeTrainingRepo) Update(_ context.Context, _ *trainingdomain.Training) error { return nil }
func (f *fakeTrainingRepo) Delete(_ context.Context, _ int64) error                    { return nil }

func newTestService(t *testing.T) (userexercise.Service, *fakeUserExerciseRepo, uuid.UUID, uuid.UUID) {
	t.Helper()

	owner := uuid.New()
	other := uuid.New()

	ueRepo := newFakeUserExerciseRepo()
	exRepo := &fakeExerciseRepo{known: map[int64]bool{1: true, 2: true}}
	trRepo := &fakeTrainingRepo{items: []*trainingdomain.Training{
		{ID: 10, UserID: owner, Name: "ноги"},
		{ID: 20, UserID: other, Name: "чужая"},
	}}

	return userexercise.NewService(ueRepo, exRepo, trRepo), ueRepo, owner, other
}

func TestCreate_ValidatesReferences(t *testing.T) {
	svc, _, owner, _ := newTestService(t)
	ctx := context.Background()

	// Несуществующее упражнение каталога.
	_, err := svc.Create(ctx, owner, userexercise.CreateInput{ExerciseID: 999})
	require.ErrorIs(t, err, userexercise.ErrExerciseNotFound)

	// Чужая тренировка.
	foreign := int64(20)
	_, err = svc.Create(ctx, owner, userexercise.CreateInput{ExerciseID: 1, TrainingID: &foreign})
	require.ErrorIs(t, err, userexercise.ErrTrainingAccessDenied)

	// Несуществующая тренировка даёт ту же ошибку, что и чужая.
	missing := int64(777)
	_, err = svc.Create(ctx, owner, userexercise.CreateInput{ExerciseID: 1, TrainingID: &missing})
	require.ErrorIs(t, err, userexercise.ErrTrainingAccessDenied)

	// Валидные ссылки.
	own := int64(10)
	ue, err := svc.Create(ctx, owner, userexercise.CreateInput{ExerciseID: 1, TrainingID: &own, Notes: "3x8"})
	require.NoError(t, err)
	require.Equal(t, owner, ue.UserID)
	require.NotZero(t, ue.ID)
}

func TestGetByID_HidesForeignRecords(t *testing.T) {
	svc, _, owner, other := newTestService(t)
	ctx := context.Background()

	ue, err := svc.Create(ctx, owner, userexercise.CreateInput{ExerciseID: 1})
	require.NoError(t, err)

	// Владелец видит запись.
	got, err := svc.GetByID(ctx, owner, ue.ID)
	require.NoError(t, err)
	require.Equal(t, ue.ID, got.ID)

	// Для другого пользователя запись неотличима от несуществующей.
	_, err = svc.GetByID(ctx, other, ue.ID)
	require.ErrorIs(t, err, repo.ErrNotFound)

	_, err = svc.GetByID(ctx, owner, 999)
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestUpdate_MergesOnlyPresentFields(t *testing.T) {
	svc, _, owner, _ := newTestService(t)
	ctx := context.Background()

	own := int64(10)
	ue, err := svc.Create(ctx, owner, userexercise.CreateInput{ExerciseID: 1, TrainingID: &own, Notes: "старые заметки"})
	require.NoError(t, err)

	// Патч только notes: exercise_id и training_id сохраняются.
	updated, err := svc.Update(ctx, owner, userexercise.UpdateInput{
		ID:    ue.ID,
		Notes: optional.Of("новые заметки"),
	})
	require.NoError(t, err)
	require.Equal(t, "новые заметки", updated.Notes)
	require.Equal(t, int64(1), updated.ExerciseID)
	require.NotNil(t, updated.TrainingID)
	require.Equal(t, own, *updated.TrainingID)

	// Пустой патч (только id) ничего не меняет.
	same, err := svc.Update(ctx, owner, userexercise.UpdateInput{ID: ue.ID})
	require.NoError(t, err)
	require.Equal(t, updated.Notes, same.Notes)
	require.Equal(t, updated.ExerciseID, same.ExerciseID)

	// training_id: null — явная отвязка.
	detached, err := svc.Update(ctx, owner, userexercise.UpdateInput{
		ID:         ue.ID,
		TrainingID: optional.Null[int64](),
	})
	require.NoError(t, err)
	require.Nil(t, detached.TrainingID)
}

func TestUpdate_ChecksOwnershipBeforeReferences(t *testing.T) {
	svc, _, owner, other := newTestService(t)
	ctx := context.Background()

	ue, err := svc.Create(ctx, owner, userexercise.CreateInput{ExerciseID: 1})
	require.NoError(t, err)

	// Чужая цель с невалидной ссылкой в патче: владение проверяется раньше,
	// поэтому ответ — NotFound, а не ошибка ссылки.
	_, err = svc.Update(ctx, other, userexercise.UpdateInput{
		ID:         ue.ID,
		ExerciseID: optional.Of(int64(999)),
	})
	require.ErrorIs(t, err, repo.ErrNotFound)

	// Своя цель, но невалидные ссылки из патча.
	_, err = svc.Update(ctx, owner, userexercise.UpdateInput{
		ID:         ue.ID,
		ExerciseID: optional.Of(int64(999)),
	})
	require.ErrorIs(t, err, userexercise.ErrExerciseNotFound)

	_, err = svc.Update(ctx, owner, userexercise.UpdateInput{
		ID:         ue.ID,
		TrainingID: optional.Of(int64(20)),
	})
	require.ErrorIs(t, err, userexercise.ErrTrainingAccessDenied)

	// Неуспешный патч не изменил запись.
	got, err := svc.GetByID(ctx, owner, ue.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.ExerciseID)
	require.Nil(t, got.TrainingID)
}

func TestDelete_OwnershipGuard(t *testing.T) {
	svc, ueRepo, owner, other := newTestService(t)
	ctx := context.Background()

	ue, err := svc.Create(ctx, owner, userexercise.CreateInput{ExerciseID: 1})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, other, ue.ID), repo.ErrNotFound)
	require.Len(t, ueRepo.items, 1)

	require.NoError(t, svc.Delete(ctx, owner, ue.ID))
	require.Empty(t, ueRepo.items)

	require.ErrorIs(t, svc.Delete(ctx, owner, ue.ID), repo.ErrNotFound)
}
