package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "gym-planner/internal/domain/workout"
	repo "gym-planner/internal/repository/interfaces"
)

// pgWorkout представляет собой ORM-модель для таблицы workouts.
type pgWorkout struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID      string    `gorm:"column:user_id;type:uuid;not null"`
	PlanID      *int64    `gorm:"column:plan_id"`
	PerformedAt time.Time `gorm:"column:performed_at;type:timestamptz;not null"`
	Notes       string    `gorm:"column:notes;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (pgWorkout) TableName() string {
	return "workouts"
}

// pgWorkoutExercise представляет собой ORM-модель для таблицы workout_exercises.
type pgWorkoutExercise struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	WorkoutID  int64     `gorm:"column:workout_id;not null"`
	ExerciseID int64     `gorm:"column:exercise_id;not null"`
	Position   int       `gorm:"column:position;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamptz;not null"`
}

func (pgWorkoutExercise) TableName() string {
	return "workout_exercises"
}

// pgSet представляет собой ORM-модель для таблицы sets.
type pgSet struct {
	ID                int64     `gorm:"column:id;primaryKey;autoIncrement"`
	WorkoutExerciseID int64     `gorm:"column:workout_exercise_id;not null"`
	Reps              int       `gorm:"column:reps;not null"`
	Weight            float64   `gorm:"column:weight;not null"`
	CompletedAt       time.Time `gorm:"column:completed_at;type:timestamptz;not null"`
}

func (pgSet) TableName() string {
	return "sets"
}

// WorkoutRepository реализует repo.WorkoutRepository с использованием GORM и Postgres.
type WorkoutRepository struct {
	db *gorm.DB
}

var _ repo.WorkoutRepository = (*WorkoutRepository)(nil)

// NewWorkoutRepository создает новый репозиторий воркаутов.
func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// toDomain маппит ORM-модель воркаута в доменную.
func (m *pgWorkout) toDomain() (*domain.Workout, error) {
	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return nil, err
	}
	return &domain.Workout{
		ID:          m.ID,
		UserID:      userID,
		PlanID:      m.PlanID,
		PerformedAt: m.PerformedAt,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

// fromDomainWorkout маппит доменную модель воркаута в ORM-модель.
func fromDomainWorkout(w *domain.Workout) *pgWorkout {
	return &pgWorkout{
		ID:          w.ID,
		UserID:      w.UserID.String(),
		PlanID:      w.PlanID,
		PerformedAt: w.PerformedAt,
		Notes:       w.Notes,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

// toDomain маппит ORM-модель позиции воркаута в доменную.
func (m *pgWorkoutExercise) toDomain() *domain.WorkoutExercise {
	return &domain.WorkoutExercise{
		ID:         m.ID,
		WorkoutID:  m.WorkoutID,
		ExerciseID: m.ExerciseID,
		Position:   m.Position,
		CreatedAt:  m.CreatedAt,
	}
}

// toDomain маппит ORM-модель подхода в доменную.
func (m *pgSet) toDomain() *domain.Set {
	return &domain.Set{
		ID:                m.ID,
		WorkoutExerciseID: m.WorkoutExerciseID,
		Reps:              m.Reps,
		Weight:            m.Weight,
		CompletedAt:       m.CompletedAt,
	}
}

// GetByID возвращает воркаут по идентификатору.
func (r *WorkoutRepository) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	var model pgWorkout
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

// ListByUserID возвращает все воркауты пользователя в стабильном порядке (id ASC).
func (r *WorkoutRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Workout, error) {
	var models []pgWorkout
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	workouts := make([]*domain.Workout, 0, len(models))
	for i := range models {
		w, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, nil
}

// Create сохраняет новый воркаут и проставляет назначенный БД идентификатор.
func (r *WorkoutRepository) Create(ctx context.Context, w *domain.Workout) error {
	model := fromDomainWorkout(w)
	model.ID = 0 // идентификатор назначает БД (BIGSERIAL)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	w.ID = model.ID
	return nil
}

// Update полностью перезаписывает воркаут по его ID.
// Поле user_id не обновляется: владелец неизменяем после создания.
// plan_id обновляется всегда, в том числе на NULL (явный сброс привязки к плану).
func (r *WorkoutRepository) Update(ctx context.Context, w *domain.Workout) error {
	model := fromDomainWorkout(w)

	result := r.db.WithContext(ctx).
		Model(&pgWorkout{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"plan_id":      model.PlanID,
			"performed_at": model.PerformedAt,
			"notes":        model.Notes,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// Delete удаляет воркаут по идентификатору.
// Позиции и подходы удаляются каскадом на уровне схемы БД.
func (r *WorkoutRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&pgWorkout{}).Error
}

// ListExercisesByWorkoutID возвращает позиции воркаута в порядке position ASC.
func (r *WorkoutRepository) ListExercisesByWorkoutID(ctx context.Context, workoutID int64) ([]*domain.WorkoutExercise, error) {
	var models []pgWorkoutExercise
	err := r.db.WithContext(ctx).
		Where("workout_id = ?", workoutID).
		Order("position ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	items := make([]*domain.WorkoutExercise, 0, len(models))
	for i := range models {
		items = append(items, models[i].toDomain())
	}
	return items, nil
}
