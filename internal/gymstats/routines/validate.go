package routines

import (
	"strings"

	"github.com/2beens/gymtracker/internal/gymstats/apperr"
	"github.com/2beens/gymtracker/internal/gymstats/exercises"
)

func (p CreateParams) Validate() (CreateParams, error) {
	name, err := exercises.ValidateName(p.Name)
	if err != nil {
		return CreateParams{}, err
	}
	p.Name = name
	p.Description = strings.TrimSpace(p.Description)
	return p, nil
}

// Apply merges the patch into r and validates the result.
func (p UpdateParams) Apply(r Routine) (Routine, error) {
	if p.Name != nil {
		name, err := exercises.ValidateName(*p.Name)
		if err != nil {
			return Routine{}, err
		}
		r.Name = name
	}
	if p.Description != nil {
		r.Description = strings.TrimSpace(*p.Description)
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
	return r, nil
}

func validateTargets(order, targetSets, targetReps int) error {
	if order < 0 {
		return apperr.Validation("order", "order must not be negative")
	}
	if targetSets <= 0 {
		return apperr.Validation("target_sets", "target sets must be greater than 0")
	}
	if targetReps <= 0 {
		return apperr.Validation("target_reps", "target reps must be greater than 0")
	}
	return nil
}

// NewRoutineExercise applies the defaults (order 0, 3 sets, 10 reps) and validates.
func (p AddExerciseParams) NewRoutineExercise() (RoutineExercise, error) {
	if p.ExerciseID <= 0 {
		return RoutineExercise{}, apperr.Validation("exercise_id", "exercise_id is required")
	}
	re := RoutineExercise{
		TargetSets: defaultTargetSets,
		TargetReps: defaultTargetReps,
		Notes:      strings.TrimSpace(p.Notes),
	}
	re.Exercise.ID = p.ExerciseID
	if p.Order != nil {
		re.Order = *p.Order
	}
	if p.TargetSets != nil {
		re.TargetSets = *p.TargetSets
	}
	if p.TargetReps != nil {
		re.TargetReps = *p.TargetReps
	}
	if err := validateTargets(re.Order, re.TargetSets, re.TargetReps); err != nil {
		return RoutineExercise{}, err
	}
	return re, nil
}

// Apply merges the patch into re and validates the result. The exercise itself cannot change.
func (p UpdateExerciseParams) Apply(re RoutineExercise) (RoutineExercise, error) {
	if p.Order != nil {
		re.Order = *p.Order
	}
	if p.TargetSets != nil {
		re.TargetSets = *p.TargetSets
	}
	if p.TargetReps != nil {
		re.TargetReps = *p.TargetReps
	}
	if p.Notes != nil {
		re.Notes = strings.TrimSpace(*p.Notes)
	}
	if err := validateTargets(re.Order, re.TargetSets, re.TargetReps); err != nil {
		return RoutineExercise{}, err
	}
	return re, nil
}
