package training_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	domain "gym-planner/internal/domain/training"
	repo "gym-planner/internal/repository/interfaces"
	"gym-planner/internal/usecase/training"
	"gym-planner/pkg/optional"
)

// fakeTrainingRepo — in-memory реализация репозитория тренировок.
type fakeTrainingRepo struct {
	items  map[int64]*domain.Training
	nextID int64
}

func newFakeTrainingRepo() *fakeTrainingRepo {
	return &fakeTrainingRepo{items: make(map[int64]*domain.Training), nextID: 1}
}

func (f *fakeTrainingRepo) GetByID(_ context.Context, id int64) (*domain.Training, error) {
	t, ok := f.items[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTrainingRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]*domain.Training, error) {
	var out []*domain.Training
	for id := int64(1); id < f.nextID; id++ {
		if t, ok := f.items[id]; ok && t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeTrainingRepo) Create(_ context.Context, t *domain.Training) error {
	t.ID = f.nextID
	f.nextID++
	cp := *t
	f.items[t.ID] = &cp
	return nil
}

func (f *fakeTrainingRepo) Update(_ context.Context, t *domain.Training) error {
	if _, ok := f.items[t.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *t
	f.items[t.ID] = &cp
	return nil
}

func (f *fakeTrainingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func TestTrainingService_Create(t *testing.T) {
	repoFake := newFakeTrainingRepo()
	svc := training.NewService(repoFake)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, training.CreateInput{
		Name:        "Push day",
		Description: "Жимовые упражнения",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, owner, created.UserID)

	// Имя обязательно.
	_, err = svc.Create(context.Background(), owner, training.CreateInput{})
	require.Error(t, err)
}

func TestTrainingService_GetByID_HidesForeign(t *testing.T) {
	repoFake := newFakeTrainingRepo()
	svc := training.NewService(repoFake)
	owner := uuid.New()
	other := uuid.New()

	mine, err := svc.Create(context.Background(), owner, training.CreateInput{Name: "Mine"})
	require.NoError(t, err)
	foreign, err := svc.Create(context.Background(), other, training.CreateInput{Name: "Foreign"})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), owner, mine.ID)
	require.NoError(t, err)
	require.Equal(t, "Mine", got.Name)

	// Чужая и несуществующая тренировки неразличимы для принципала.
	_, err = svc.GetByID(context.Background(), owner, foreign.ID)
	require.ErrorIs(t, err, repo.ErrNotFound)
	_, err = svc.GetByID(context.Background(), owner, 999)
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestTrainingService_Update_MergesOnlyPresentFields(t *testing.T) {
	repoFake := newFakeTrainingRepo()
	svc := training.NewService(repoFake)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, training.CreateInput{
		Name:        "Legs",
		Description: "Нижняя часть тела",
	})
	require.NoError(t, err)

	// Обновляется только присланное имя, описание сохраняется.
	updated, err := svc.Update(context.Background(), owner, training.UpdateInput{
		ID:   created.ID,
		Name: optional.Of("Leg day"),
	})
	require.NoError(t, err)
	require.Equal(t, "Leg day", updated.Name)
	require.Equal(t, "Нижняя часть тела", updated.Description)

	// Пустой патч идемпотентен.
	same, err := svc.Update(context.Background(), owner, training.UpdateInput{ID: created.ID})
	require.NoError(t, err)
	require.Equal(t, "Leg day", same.Name)
	require.Equal(t, "Нижняя часть тела", same.Description)

	// Чужой принципал не видит цель обновления.
	_, err = svc.Update(context.Background(), uuid.New(), training.UpdateInput{
		ID:   created.ID,
		Name: optional.Of("Hijack"),
	})
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestTrainingService_Delete_OwnershipGuard(t *testing.T) {
	repoFake := newFakeTrainingRepo()
	svc := training.NewService(repoFake)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, training.CreateInput{Name: "Temp"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(context.Background(), uuid.New(), created.ID), repo.ErrNotFound)
	require.NoError(t, svc.Delete(context.Background(), owner, created.ID))
	_, err = svc.GetByID(context.Background(), owner, created.ID)
	require.ErrorIs(t, err, repo.ErrNotFound)
}
