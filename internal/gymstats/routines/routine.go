package routines

import (
	"time"

	"github.com/2beens/gymtracker/internal/gymstats/exercises"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"
)

const (
	defaultTargetSets = 3
	defaultTargetReps = 10

	minutesPerExercise   = 10
	minEstimatedDuration = 20
	maxEstimatedDuration = 120
)

type Routine struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	UserID            int       `json:"user"`
	Username          string    `json:"user_username"`
	IsActive          bool      `json:"is_active"`
	ExerciseCount     int       `json:"exercise_count"`
	EstimatedDuration int       `json:"estimated_duration"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (r Routine) OwnerID() (int, bool) {
	return r.UserID, true
}

// EstimatedDuration is ten minutes per exercise, clamped to [20, 120].
func EstimatedDuration(exerciseCount int) int {
	return max(minEstimatedDuration, min(maxEstimatedDuration, exerciseCount*minutesPerExercise))
}

type Detail struct {
	Routine
	RoutineExercises []RoutineExercise `json:"routine_exercises"`
}

type RoutineExercise struct {
	ID         int               `json:"id"`
	RoutineID  int               `json:"-"`
	Exercise   exercises.Summary `json:"exercise"`
	Order      int               `json:"order"`
	TargetSets int               `json:"target_sets"`
	TargetReps int               `json:"target_reps"`
	Notes      string            `json:"notes"`
	CreatedAt  time.Time         `json:"created_at"`
}

type CreateParams struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

// UpdateParams is a partial update, nil fields are left unchanged.
type UpdateParams struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type AddExerciseParams struct {
	ExerciseID int    `json:"exercise_id"`
	Order      *int   `json:"order"`
	TargetSets *int   `json:"target_sets"`
	TargetReps *int   `json:"target_reps"`
	Notes      string `json:"notes"`
}

type UpdateExerciseParams struct {
	Order      *int    `json:"order"`
	TargetSets *int    `json:"target_sets"`
	TargetReps *int    `json:"target_reps"`
	Notes      *string `json:"notes"`
}

type StartWorkoutParams struct {
	Date  *workouts.Date `json:"date"`
	Notes string         `json:"notes"`
}
