package exercises

import (
	"time"
)

var MuscleGroup = struct {
	Chest     string
	Back      string
	Legs      string
	Shoulders string
	Arms      string
	Core      string
	Cardio    string
	Other     string
}{
	Chest:     "chest",
	Back:      "back",
	Legs:      "legs",
	Shoulders: "shoulders",
	Arms:      "arms",
	Core:      "core",
	Cardio:    "cardio",
	Other:     "other",
}

var MuscleGroups = []string{
	MuscleGroup.Chest,
	MuscleGroup.Back,
	MuscleGroup.Legs,
	MuscleGroup.Shoulders,
	MuscleGroup.Arms,
	MuscleGroup.Core,
	MuscleGroup.Cardio,
	MuscleGroup.Other,
}

var muscleGroupLabels = map[string]string{
	MuscleGroup.Chest:     "Chest",
	MuscleGroup.Back:      "Back",
	MuscleGroup.Legs:      "Legs",
	MuscleGroup.Shoulders: "Shoulders",
	MuscleGroup.Arms:      "Arms",
	MuscleGroup.Core:      "Core",
	MuscleGroup.Cardio:    "Cardio",
	MuscleGroup.Other:     "Other",
}

// MuscleGroupLabel returns the display label, or the raw value for unknown groups.
func MuscleGroupLabel(muscleGroup string) string {
	if label, ok := muscleGroupLabels[muscleGroup]; ok {
		return label
	}
	return muscleGroup
}

type MuscleGroupInfo struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func MuscleGroupInfos() []MuscleGroupInfo {
	infos := make([]MuscleGroupInfo, 0, len(MuscleGroups))
	for _, mg := range MuscleGroups {
		infos = append(infos, MuscleGroupInfo{Value: mg, Label: MuscleGroupLabel(mg)})
	}
	return infos
}

// Exercise is either global (seeded, shared by everyone, CreatedBy nil) or
// custom (owned by the user in CreatedBy).
type Exercise struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	MuscleGroup      string    `json:"muscle_group"`
	MuscleGroupLabel string    `json:"muscle_group_display"`
	IsGlobal         bool      `json:"is_global"`
	CreatedBy        *int      `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (e Exercise) OwnerID() (int, bool) {
	if e.IsGlobal || e.CreatedBy == nil {
		return 0, false
	}
	return *e.CreatedBy, true
}

// ListItem is the lighter list representation, with IsCustom resolved for the actor.
type ListItem struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	MuscleGroup      string `json:"muscle_group"`
	MuscleGroupLabel string `json:"muscle_group_display"`
	IsGlobal         bool   `json:"is_global"`
	IsCustom         bool   `json:"is_custom"`
}

func NewListItem(e Exercise, actorID int) ListItem {
	ownerID, owned := e.OwnerID()
	return ListItem{
		ID:               e.ID,
		Name:             e.Name,
		MuscleGroup:      e.MuscleGroup,
		MuscleGroupLabel: MuscleGroupLabel(e.MuscleGroup),
		IsGlobal:         e.IsGlobal,
		IsCustom:         owned && ownerID == actorID,
	}
}

// Summary is the exercise view nested into routine and workout reads.
type Summary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	MuscleGroup      string `json:"muscle_group"`
	MuscleGroupLabel string `json:"muscle_group_display"`
	IsGlobal         bool   `json:"is_global"`
}

func NewSummary(id int, name, muscleGroup string, isGlobal bool) Summary {
	return Summary{
		ID:               id,
		Name:             name,
		MuscleGroup:      muscleGroup,
		MuscleGroupLabel: MuscleGroupLabel(muscleGroup),
		IsGlobal:         isGlobal,
	}
}

type CreateParams struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MuscleGroup string `json:"muscle_group"`
}

// UpdateParams is a partial update, nil fields are left unchanged.
type UpdateParams struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	MuscleGroup *string `json:"muscle_group"`
}

type ListParams struct {
	Search      string
	MuscleGroup string
	IsGlobal    *bool
	Limit       int
	Offset      int
}
