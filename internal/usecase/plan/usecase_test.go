package plan_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	domain "gym-planner/internal/domain/plan"
	repo "gym-planner/internal/repository/interfaces"
	"gym-planner/internal/usecase/plan"
	"gym-planner/pkg/optional"
)

// fakePlanRepo — in-memory реализация репозитория планов.
type fakePlanRepo struct {
	items  map[int64]*domain.Plan
	nextID int64
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{items: make(map[int64]*domain.Plan), nextID: 1}
}

func (f *fakePlanRepo) GetByID(_ context.Context, id int64) (*domain.Plan, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePlanRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]*domain.Plan, error) {
	var out []*domain.Plan
	for id := int64(1); id < f.nextID; id++ {
		if p, ok := f.items[id]; ok && p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) Create(_ context.Context, p *domain.Plan) error {
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakePlanRepo) Update(_ context.Context, p *domain.Plan) error {
	if _, ok := f.items[p.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakePlanRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func TestPlanService_Create(t *testing.T) {
	repoFake := newFakePlanRepo()
	svc := plan.NewService(repoFake)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, plan.CreateInput{
		Name:        "Сила 5x5",
		Description: "Базовый цикл",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, owner, created.UserID)

	// Имя обязательно.
	_, err = svc.Create(context.Background(), owner, plan.CreateInput{})
	require.Error(t, err)
}

func TestPlanService_List_FiltersByPrincipal(t *testing.T) {
	repoFake := newFakePlanRepo()
	svc := plan.NewService(repoFake)
	owner := uuid.New()
	other := uuid.New()

	_, err := svc.Create(context.Background(), owner, plan.CreateInput{Name: "A"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), other, plan.CreateInput{Name: "B"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), owner, plan.CreateInput{Name: "C"})
	require.NoError(t, err)

	plans, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	require.Equal(t, "A", plans[0].Name)
	require.Equal(t, "C", plans[1].Name)
}

func TestPlanService_Update_MergesOnlyPresentFields(t *testing.T) {
	repoFake := newFakePlanRepo()
	svc := plan.NewService(repoFake)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, plan.CreateInput{
		Name:        "Гипертрофия",
		Description: "8-12 повторений",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), owner, plan.UpdateInput{
		ID:          created.ID,
		Description: optional.Of("6-10 повторений"),
	})
	require.NoError(t, err)
	require.Equal(t, "Гипертрофия", updated.Name)
	require.Equal(t, "6-10 повторений", updated.Description)

	// Чужой и несуществующий планы неразличимы для принципала.
	_, err = svc.Update(context.Background(), uuid.New(), plan.UpdateInput{
		ID:   created.ID,
		Name: optional.Of("Hijack"),
	})
	require.ErrorIs(t, err, repo.ErrNotFound)
	_, err = svc.Update(context.Background(), owner, plan.UpdateInput{ID: 999})
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestPlanService_Delete_OwnershipGuard(t *testing.T) {
	repoFake := newFakePlanRepo()
	svc := plan.NewService(repoFake)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, plan.CreateInput{Name: "Temp"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(context.Background(), uuid.New(), created.ID), repo.ErrNotFound)
	require.NoError(t, svc.Delete(context.Background(), owner, created.ID))
	_, err = svc.GetByID(context.Background(), owner, created.ID)
	require.ErrorIs(t, err, repo.ErrNotFound)
}
