package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "gym-planner/internal/domain/userexercise"
	repo "gym-planner/internal/repository/interfaces"
)

// pgUserExercise представляет собой ORM-модель для таблицы user_exercises.
type pgUserExercise struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID     string    `gorm:"column:user_id;type:uuid;not null"`
	ExerciseID int64     `gorm:"column:exercise_id;not null"`
	TrainingID *int64    `gorm:"column:training_id"`
	Notes      string    `gorm:"column:notes;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (pgUserExercise) TableName() string {
	return "user_exercises"
}

// UserExerciseRepository реализует repo.UserExerciseRepository с использованием GORM и Postgres.
type UserExerciseRepository struct {
	db *gorm.DB
}

var _ repo.UserExerciseRepository = (*UserExerciseRepository)(nil)

// NewUserExerciseRepository создает новый репозиторий привязок к упражнениям.
func NewUserExerciseRepository(db *gorm.DB) *UserExerciseRepository {
	return &UserExerciseRepository{db: db}
}

// toDomain маппит ORM-модель в доменную.
func (m *pgUserExercise) toDomain() (*domain.UserExercise, error) {
	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return nil, err
	}
	return &domain.UserExercise{
		ID:         m.ID,
		UserID:     userID,
		ExerciseID: m.ExerciseID,
		TrainingID: m.TrainingID,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}

// fromDomainUserExercise маппит доменную модель в ORM-модель.
func fromDomainUserExercise(ue *domain.UserExercise) *pgUserExercise {
	return &pgUserExercise{
		ID:         ue.ID,
		UserID:     ue.UserID.String(),
		ExerciseID: ue.ExerciseID,
		TrainingID: ue.TrainingID,
		Notes:      ue.Notes,
		CreatedAt:  ue.CreatedAt,
		UpdatedAt:  ue.UpdatedAt,
	}
}

// GetByID возвращает привязку по идентификатору.
func (r *UserExerciseRepository) GetByID(ctx context.Context, id int64) (*domain.UserExercise, error) {
	var model pgUserExercise
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

// ListByUserID возвращает все привязки пользователя в стабильном порядке (id ASC).
func (r *UserExerciseRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.UserExercise, error) {
	var models []pgUserExercise
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	items := make([]*domain.UserExercise, 0, len(models))
	for i := range models {
		ue, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, ue)
	}
	return items, nil
}

// Create сохраняет новую привязку и проставляет назначенный БД идентификатор.
func (r *UserExerciseRepository) Create(ctx context.Context, ue *domain.UserExercise) error {
	model := fromDomainUserExercise(ue)
	model.ID = 0 // идентификатор назначает БД (BIGSERIAL)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	ue.ID = model.ID
	return nil
}

// Update полностью перезаписывает привязку по её ID.
// Поле user_id не обновляется: владелец неизменяем после создания.
// training_id обновляется всегда, в том числе на NULL (явный сброс группировки).
func (r *UserExerciseRepository) Update(ctx context.Context, ue *domain.UserExercise) error {
	model := fromDomainUserExercise(ue)

	result := r.db.WithContext(ctx).
		Model(&pgUserExercise{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"exercise_id": model.ExerciseID,
			"training_id": model.TrainingID,
			"notes":       model.Notes,
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

// Delete удаляет привязку по идентификатору.
func (r *UserExerciseRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&pgUserExercise{}).Error
}
