package events

import (
	"fmt"
	"strconv"
	"time"
)

type TrainingStart struct {
	OwnerID   int       `json:"-"`
	WorkoutID int       `json:"workout_id"`
	Timestamp time.Time `json:"timestamp"`
}

type TrainingFinish struct {
	OwnerID     int       `json:"-"`
	WorkoutID   int       `json:"workout_id"`
	Timestamp   time.Time `json:"timestamp"`
	Duration    *int      `json:"duration"`
	TotalVolume float64   `json:"total_volume"`
	TotalSets   int       `json:"total_sets"`
}

// Event is the stored activity feed entry. Workouts emit:
//   - training started (workout id, timestamp)
//   - training finished (workout id, timestamp, duration, volume, completed sets)
type Event struct {
	ID        int               `json:"id"`
	OwnerID   int               `json:"user"`
	Type      EventType         `json:"type"`
	WorkoutID *int              `json:"workout"`
	Timestamp time.Time         `json:"timestamp"`
	Data      map[string]string `json:"data"`
}

func NewTrainingStartEvent(ts TrainingStart) Event {
	workoutID := ts.WorkoutID
	return Event{
		OwnerID:   ts.OwnerID,
		Type:      EventTypeTrainingStarted,
		WorkoutID: &workoutID,
		Timestamp: ts.Timestamp,
		Data:      map[string]string{},
	}
}

func NewTrainingFinishEvent(tf TrainingFinish) Event {
	workoutID := tf.WorkoutID
	data := map[string]string{
		"total_volume": strconv.FormatFloat(tf.TotalVolume, 'f', -1, 64),
		"total_sets":   fmt.Sprintf("%d", tf.TotalSets),
	}
	if tf.Duration != nil {
		data["duration"] = fmt.Sprintf("%d", *tf.Duration)
	}
	return Event{
		OwnerID:   tf.OwnerID,
		Type:      EventTypeTrainingFinished,
		WorkoutID: &workoutID,
		Timestamp: tf.Timestamp,
		Data:      data,
	}
}

// EventType can be one of:
//   - training_started
//   - training_finished
type EventType string

const (
	EventTypeTrainingStarted  EventType = "training_started"
	EventTypeTrainingFinished EventType = "training_finished"
)

func (et EventType) String() string {
	return string(et)
}

func (et EventType) IsValid() bool {
	switch et {
	case EventTypeTrainingStarted,
		EventTypeTrainingFinished:
		return true
	default:
		return false
	}
}
