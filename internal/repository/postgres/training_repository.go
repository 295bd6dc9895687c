package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "gym-planner/internal/domain/training"
	repo "gym-planner/internal/repository/interfaces"
)

// pgTraining представляет собой ORM-модель для таблицы trainings.
type pgTraining struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID      string    `gorm:"column:user_id;type:uuid;not null"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	Description string    `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (pgTraining) TableName() string {
	return "trainings"
}

// TrainingRepository реализует repo.TrainingRepository с использованием GORM и Postgres.
type TrainingRepository struct {
	db *gorm.DB
}

var _ repo.TrainingRepository = (*TrainingRepository)(nil)

// NewTrainingRepository создает новый репозиторий тренировок.
func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

// toDomain маппит ORM-модель в доменную.
func (m *pgTraining) toDomain() (*domain.Training, error) {
	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return nil, err
	}
	return &domain.Training{
		ID:          m.ID,
		UserID:      userID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

// fromDomainTraining маппит доменную модель в ORM-модель.
func fromDomainTraining(t *domain.Training) *pgTraining {
	return &pgTraining{
		ID:          t.ID,
		UserID:      t.UserID.String(),
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// GetByID возвращает тренировку по идентификатору.
func (r *TrainingRepository) GetByID(ctx context.Context, id int64) (*domain.Training, error) {
	var model pgTraining
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

// ListByUserID возвращает все тренировки пользователя в стабильном порядке (id ASC).
func (r *TrainingRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Training, error) {
	var models []pgTraining
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	trainings := make([]*domain.Training, 0, len(models))
	for i := range models {
		t, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		trainings = append(trainings, t)
	}
	return trainings, nil
}

// Create сохраняет новую тренировку и проставляет назначенный БД идентификатор.
func (r *TrainingRepository) Create(ctx context.Context, t *domain.Training) error {
	model := fromDomainTraining(t)
	model.ID = 0 // идентификатор назначает БД (BIGSERIAL)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	t.ID = model.ID
	return nil
}

// Update полностью перезаписывает тренировку по её ID.
// Поле user_id не обновляется: владелец неизменяем после создания.
func (r *TrainingRepository) Update(ctx context.Context, t *domain.Training) error {
	model := fromDomainTraining(t)

	result := r.db.WithContext(ctx).
		Model(&pgTraining{}).
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

// Delete удаляет тренировку по идентификатору.
func (r *TrainingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&pgTraining{}).Error
}
