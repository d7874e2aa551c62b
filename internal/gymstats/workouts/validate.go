package workouts

import (
	"time"

	"github.com/2beens/gymtracker/internal/gymstats/apperr"
)

const (
	maxWeight = 9999.99
	minRPE    = 1
	maxRPE    = 10
)

func validateTimes(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return apperr.Validation("end_time", "end time must not be before start time")
	}
	return nil
}

func validateSet(s Set) error {
	if s.SetNumber <= 0 {
		return apperr.Validation("set_number", "set number must be greater than 0")
	}
	if s.Reps <= 0 {
		return apperr.Validation("reps", "reps must be greater than 0")
	}
	if s.Weight != nil && (*s.Weight <= 0 || *s.Weight > maxWeight) {
		return apperr.Validation("weight", "weight must be greater than 0 and at most %.2f", maxWeight)
	}
	if s.RPE != nil && (*s.RPE < minRPE || *s.RPE > maxRPE) {
		return apperr.Validation("rpe", "rpe must be between %d and %d", minRPE, maxRPE)
	}
	return nil
}

// NewSet builds a set from add params; a nil set number is left as 0 for the
// store to assign the next free one.
func (p SetParams) NewSet() (Set, error) {
	s := Set{
		Weight:    p.Weight,
		Completed: true,
		RPE:       p.RPE,
	}
	if p.Reps == nil {
		return Set{}, apperr.Validation("reps", "reps is required")
	}
	s.Reps = *p.Reps
	if p.Completed != nil {
		s.Completed = *p.Completed
	}

	check := s
	check.SetNumber = 1
	if p.SetNumber != nil {
		s.SetNumber = *p.SetNumber
		check.SetNumber = s.SetNumber
	}
	if err := validateSet(check); err != nil {
		return Set{}, err
	}
	return s, nil
}

// Apply merges the partial update into s and validates the result.
func (p SetUpdateParams) Apply(s Set) (Set, error) {
	if p.SetNumber != nil {
		s.SetNumber = *p.SetNumber
	}
	if p.Reps != nil {
		s.Reps = *p.Reps
	}
	if p.Completed != nil {
		s.Completed = *p.Completed
	}
	if p.ClearWeight {
		s.Weight = nil
	} else if p.Weight != nil {
		s.Weight = p.Weight
	}
	if p.ClearRPE {
		s.RPE = nil
	} else if p.RPE != nil {
		s.RPE = p.RPE
	}
	if err := validateSet(s); err != nil {
		return Set{}, err
	}
	return s, nil
}

// Apply merges the partial update into w and validates the time boundaries.
func (p UpdateParams) Apply(w Workout) (Workout, error) {
	// end_time is set once, by Finish or by the first patch that carries it.
	if p.EndTime != nil && w.IsFinished() {
		return Workout{}, ErrWorkoutAlreadyFinished
	}
	if p.Date != nil {
		w.Date = *p.Date
	}
	if p.StartTime != nil {
		w.StartTime = p.StartTime
	}
	if p.EndTime != nil {
		w.EndTime = p.EndTime
	}
	if p.Notes != nil {
		w.Notes = *p.Notes
	}
	if err := validateTimes(w.StartTime, w.EndTime); err != nil {
		return Workout{}, err
	}
	return w, nil
}

func validateAddExercise(p AddExerciseParams) (int, error) {
	if p.ExerciseID <= 0 {
		return 0, apperr.Validation("exercise_id", "exercise_id is required")
	}
	if p.Order == nil {
		return 0, nil
	}
	if *p.Order < 0 {
		return 0, apperr.Validation("order", "order must not be negative")
	}
	return *p.Order, nil
}
