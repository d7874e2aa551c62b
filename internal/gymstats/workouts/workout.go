package workouts

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats/exercises"
)

const DateLayout = "2006-01-02"

// Date is a calendar day, serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type Workout struct {
	ID            int        `json:"id"`
	UserID        int        `json:"user"`
	RoutineID     *int       `json:"routine"`
	RoutineName   *string    `json:"routine_name"`
	Date          Date       `json:"date"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	Duration      *int       `json:"duration"`
	Notes         string     `json:"notes"`
	TotalVolume   float64    `json:"total_volume"`
	TotalSets     int        `json:"total_sets"`
	ExerciseCount int        `json:"exercise_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (w Workout) OwnerID() (int, bool) {
	return w.UserID, true
}

func (w Workout) IsFinished() bool {
	return w.EndTime != nil
}

// Detail is the full workout read: workout, its exercises in order, and their sets.
type Detail struct {
	Workout
	WorkoutExercises []WorkoutExercise `json:"workout_exercises"`
}

type WorkoutExercise struct {
	ID          int               `json:"id"`
	WorkoutID   int               `json:"-"`
	Exercise    exercises.Summary `json:"exercise"`
	Order       int               `json:"order"`
	Notes       string            `json:"notes"`
	Sets        []Set             `json:"sets"`
	TotalVolume float64           `json:"total_volume"`
	CreatedAt   time.Time         `json:"created_at"`
}

type Set struct {
	ID                int       `json:"id"`
	WorkoutExerciseID int       `json:"-"`
	SetNumber         int       `json:"set_number"`
	Weight            *float64  `json:"weight"`
	Reps              int       `json:"reps"`
	Completed         bool      `json:"completed"`
	RPE               *int      `json:"rpe"`
	Volume            float64   `json:"volume"`
	CreatedAt         time.Time `json:"created_at"`
}

// CreateParams creates a freestyle workout, or a routine snapshot when RoutineID is set.
// Date and StartTime default to now.
type CreateParams struct {
	RoutineID *int       `json:"routine_id"`
	Date      *Date      `json:"date"`
	StartTime *time.Time `json:"start_time"`
	Notes     string     `json:"notes"`
}

// UpdateParams is a partial update, nil fields are left unchanged.
type UpdateParams struct {
	Date      *Date      `json:"date"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Notes     *string    `json:"notes"`
}

type AddExerciseParams struct {
	ExerciseID int    `json:"exercise_id"`
	Order      *int   `json:"order"`
	Notes      string `json:"notes"`
}

// SetParams is used both for adding (SetNumber nil means next free number,
// Completed nil means true) and for partial updates.
type SetParams struct {
	SetNumber *int     `json:"set_number"`
	Weight    *float64 `json:"weight"`
	Reps      *int     `json:"reps"`
	Completed *bool    `json:"completed"`
	RPE       *int     `json:"rpe"`
}

// ClearWeight and ClearRPE are decoded from explicit JSON nulls on set updates.
type SetUpdateParams struct {
	SetParams
	ClearWeight bool `json:"-"`
	ClearRPE    bool `json:"-"`
}

func (p *SetUpdateParams) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &p.SetParams); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["weight"]; ok && string(v) == "null" {
		p.ClearWeight = true
	}
	if v, ok := raw["rpe"]; ok && string(v) == "null" {
		p.ClearRPE = true
	}
	return nil
}
