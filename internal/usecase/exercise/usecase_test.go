package exercise_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	domain "gym-planner/internal/domain/exercise"
	workoutdomain "gym-planner/internal/domain/workout"
	repo "gym-planner/internal/repository/interfaces"
	"gym-planner/internal/usecase/exercise"
)

// fakeCatalogRepo записывает параметры последнего вызова List.
type fakeCatalogRepo struct {
	known map[int64]bool
	sets  map[uuid.UUID][]*workoutdomain.Set

	lastSkip  int
	lastLimit int
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id int64) (*domain.Exercise, error) {
	if !f.known[id] {
		return nil, repo.ErrNotFound
	}
	return &domain.Exercise{ID: id, Name: "exercise"}, nil
}

func (f *fakeCatalogRepo) List(_ context.Context, skip, limit int) ([]*domain.Exercise, error) {
	f.lastSkip = skip
	f.lastLimit = limit
	return nil, nil
}

func (f *fakeCatalogRepo) ListSetsByUser(_ context.Context, _ int64, userID uuid.UUID) ([]*workoutdomain.Set, error) {
	return f.sets[userID], nil
}

func TestList_NormalizesPagination(t *testing.T) {
	catalog := &fakeCatalogRepo{known: map[int64]bool{}}
	svc := exercise.NewService(catalog)
	ctx := context.Background()

	_, err := svc.List(ctx, -5, 0)
	require.NoError(t, err)
	require.Equal(t, 0, catalog.lastSkip)
	require.Equal(t, exercise.DefaultLimit, catalog.lastLimit)

	_, err = svc.List(ctx, 10, 100000)
	require.NoError(t, err)
	require.Equal(t, 10, catalog.lastSkip)
	require.Equal(t, exercise.MaxLimit, catalog.lastLimit)

	_, err = svc.List(ctx, 3, 7)
	require.NoError(t, err)
	require.Equal(t, 3, catalog.lastSkip)
	require.Equal(t, 7, catalog.lastLimit)
}

func TestListUserSets_ChecksExistenceFirst(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	catalog := &fakeCatalogRepo{
		known: map[int64]bool{1: true},
		sets: map[uuid.UUID][]*workoutdomain.Set{
			owner: {{ID: 1, Reps: 8, Weight: 80}},
		},
	}
	svc := exercise.NewService(catalog)
	ctx := context.Background()

	// Несуществующее упражнение даёт NotFound, а не пустой список.
	_, err := svc.ListUserSets(ctx, owner, 999)
	require.ErrorIs(t, err, repo.ErrNotFound)

	sets, err := svc.ListUserSets(ctx, owner, 1)
	require.NoError(t, err)
	require.Len(t, sets, 1)

	// Подходы фильтруются по принципалу: чужих в выдаче нет.
	sets, err = svc.ListUserSets(ctx, other, 1)
	require.NoError(t, err)
	require.Empty(t, sets)
}
