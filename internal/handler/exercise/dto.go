package exercise

import (
	"time"

	domain "gym-planner/internal/domain/exercise"
	workoutdomain "gym-planner/internal/domain/workout"
)

// ExerciseResponse описывает запись каталога упражнений в ответе API.
type ExerciseResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	MuscleGroup string    `json:"muscle_group"`
	Equipment   string    `json:"equipment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SetResponse описывает подход пользователя в ответе API.
type SetResponse struct {
	ID                int64     `json:"id"`
	WorkoutExerciseID int64     `json:"workout_exercise_id"`
	Reps              int       `json:"reps"`
	Weight            float64   `json:"weight"`
	CompletedAt       time.Time `json:"completed_at"`
}

// toExerciseResponse маппит доменную модель в DTO.
func toExerciseResponse(e *domain.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		MuscleGroup: string(e.MuscleGroup),
		Equipment:   e.Equipment,
		CreatedAt:   e.CreatedAt,
	}
}

// toExerciseResponses маппит срез доменных моделей в DTO.
func toExerciseResponses(items []*domain.Exercise) []ExerciseResponse {
	result := make([]ExerciseResponse, 0, len(items))
	for _, e := range items {
		result = append(result, toExerciseResponse(e))
	}
	return result
}

// toSetResponses маппит срез подходов в DTO.
func toSetResponses(items []*workoutdomain.Set) []SetResponse {
	result := make([]SetResponse, 0, len(items))
	for _, s := range items {
		result = append(result, SetResponse{
			ID:                s.ID,
			WorkoutExerciseID: s.WorkoutExerciseID,
			Reps:              s.Reps,
			Weight:            s.Weight,
			CompletedAt:       s.CompletedAt,
		})
	}
	return result
}
