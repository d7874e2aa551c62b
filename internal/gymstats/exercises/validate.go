package exercises

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/2beens/gymtracker/internal/gymstats/apperr"
)

const maxNameLength = 100

func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.Validation("name", "name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", apperr.Validation("name", "name must be at most %d characters", maxNameLength)
	}
	return name, nil
}

func ValidateMuscleGroup(muscleGroup string) (string, error) {
	muscleGroup = strings.ToLower(strings.TrimSpace(muscleGroup))
	if !slices.Contains(MuscleGroups, muscleGroup) {
		return "", apperr.Validation("muscle_group", "invalid muscle group %q", muscleGroup)
	}
	return muscleGroup, nil
}

// Validate returns the normalized params.
func (p CreateParams) Validate() (CreateParams, error) {
	name, err := ValidateName(p.Name)
	if err != nil {
		return CreateParams{}, err
	}
	muscleGroup, err := ValidateMuscleGroup(p.MuscleGroup)
	if err != nil {
		return CreateParams{}, err
	}
	return CreateParams{
		Name:        name,
		Description: strings.TrimSpace(p.Description),
		MuscleGroup: muscleGroup,
	}, nil
}

// Apply merges the patch into e and validates the result.
func (p UpdateParams) Apply(e Exercise) (Exercise, error) {
	if p.Name != nil {
		name, err := ValidateName(*p.Name)
		if err != nil {
			return Exercise{}, err
		}
		e.Name = name
	}
	if p.Description != nil {
		e.Description = strings.TrimSpace(*p.Description)
	}
	if p.MuscleGroup != nil {
		muscleGroup, err := ValidateMuscleGroup(*p.MuscleGroup)
		if err != nil {
			return Exercise{}, err
		}
		e.MuscleGroup = muscleGroup
	}
	e.MuscleGroupLabel = MuscleGroupLabel(e.MuscleGroup)
	return e, nil
}
