package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "gym-planner/internal/domain/exercise"
	workoutdomain "gym-planner/internal/domain/workout"
	repo "gym-planner/internal/repository/interfaces"
)

// pgExercise представляет собой ORM-модель для таблицы exercises (глобальный каталог).
type pgExercise struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	Description string    `gorm:"column:description;type:text"`
	MuscleGroup string    `gorm:"column:muscle_group;type:text;not null"`
	Equipment   string    `gorm:"column:equipment;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null"`
}

func (pgExercise) TableName() string {
	return "exercises"
}

// ExerciseRepository реализует repo.ExerciseRepository с использованием GORM и Postgres.
type ExerciseRepository struct {
	db *gorm.DB
}

var _ repo.ExerciseRepository = (*ExerciseRepository)(nil)

// NewExerciseRepository создает новый репозиторий каталога упражнений.
func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// toDomain маппит ORM-модель в доменную.
func (m *pgExercise) toDomain() *domain.Exercise {
	return &domain.Exercise{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		MuscleGroup: domain.MuscleGroup(m.MuscleGroup),
		Equipment:   m.Equipment,
		CreatedAt:   m.CreatedAt,
	}
}

// GetByID возвращает упражнение каталога по идентификатору.
func (r *ExerciseRepository) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	var model pgExercise
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&model).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return model.toDomain(), nil
}

// List возвращает страницу каталога в стабильном порядке (id ASC).
func (r *ExerciseRepository) List(ctx context.Context, skip, limit int) ([]*domain.Exercise, error) {
	var models []pgExercise
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	exercises := make([]*domain.Exercise, 0, len(models))
	for i := range models {
		exercises = append(exercises, models[i].toDomain())
	}
	return exercises, nil
}

// ListSetsByUser возвращает подходы пользователя в заданном упражнении каталога.
// Владение подходом определяется транзитивно через воркаут.
func (r *ExerciseRepository) ListSetsByUser(ctx context.Context, exerciseID int64, userID uuid.UUID) ([]*workoutdomain.Set, error) {
	var models []pgSet
	err := r.db.WithContext(ctx).
		Table("sets").
		Select("sets.*").
		Joins("JOIN workout_exercises ON workout_exercises.id = sets.workout_exercise_id").
		Joins("JOIN workouts ON workouts.id = workout_exercises.workout_id").
		Where("workout_exercises.exercise_id = ? AND workouts.user_id = ?", exerciseID, userID.String()).
		Order("sets.id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	sets := make([]*workoutdomain.Set, 0, len(models))
	for i := range models {
		sets = append(sets, models[i].toDomain())
	}
	return sets, nil
}
