package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "gym-planner/internal/domain/plan"
	repo "gym-planner/internal/repository/interfaces"
)

// pgPlan представляет собой ORM-модель для таблицы plans.
type pgPlan struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID      string    `gorm:"column:user_id;type:uuid;not null"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	Description string    `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (pgPlan) TableName() string {
	return "plans"
}

// PlanRepository реализует repo.PlanRepository с использованием GORM и Postgres.
type PlanRepository struct {
	db *gorm.DB
}

var _ repo.PlanRepository = (*PlanRepository)(nil)

// NewPlanRepository создает новый репозиторий планов.
func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// toDomain маппит ORM-модель в доменную.
func (m *pgPlan) toDomain() (*domain.Plan, error) {
	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return nil, err
	}
	return &domain.Plan{
		ID:          m.ID,
		UserID:      userID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

// fromDomainPlan маппит доменную модель в ORM-модель.
func fromDomainPlan(p *domain.Plan) *pgPlan {
	return &pgPlan{
		ID:          p.ID,
		UserID:      p.UserID.String(),
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// GetByID возвращает план по идентификатору.
func (r *PlanRepository) GetByID(ctx context.Context, id int64) (*domain.Plan, error) {
	var model pgPlan
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&model).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return model.toDomain()
}

// ListByUserID возвращает все планы пользователя в стабильном порядке (id ASC).
func (r *PlanRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Plan, error) {
	var models []pgPlan
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	plans := make([]*domain.Plan, 0, len(models))
	for i := range models {
		p, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}

// Create сохраняет новый план и проставляет назначенный БД идентификатор.
func (r *PlanRepository) Create(ctx context.Context, p *domain.Plan) error {
	model := fromDomainPlan(p)
	model.ID = 0 // идентификатор назначает БД (BIGSERIAL)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	p.ID = model.ID
	return nil
}

// Update полностью перезаписывает план по его ID.
// Поле user_id не обновляется: владелец неизменяем после создания.
func (r *PlanRepository) Update(ctx context.Context, p *domain.Plan) error {
	model := fromDomainPlan(p)

	result := r.db.WithContext(ctx).
		Model(&pgPlan{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"description": model.Description,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// Delete удаляет план по идентификатору.
func (r *PlanRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&pgPlan{}).Error
}
