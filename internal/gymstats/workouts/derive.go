package workouts

import (
	"math"
	"time"
)

// SetVolume is weight × reps; bodyweight sets (no weight) count their reps.
func SetVolume(weight *float64, reps int) float64 {
	if weight == nil {
		return float64(reps)
	}
	return round2(*weight * float64(reps))
}

// DurationMinutes returns the whole minutes between start and end, or nil
// when either boundary is missing.
func DurationMinutes(start, end *time.Time) *int {
	if start == nil || end == nil {
		return nil
	}
	minutes := int(end.Sub(*start) / time.Minute)
	return &minutes
}

// applyDerived fills the values computed on read: set volumes, per exercise
// totals and workout totals.
func (d *Detail) applyDerived() {
	d.TotalVolume = 0
	d.TotalSets = 0
	d.ExerciseCount = len(d.WorkoutExercises)
	d.Duration = DurationMinutes(d.StartTime, d.EndTime)

	for i := range d.WorkoutExercises {
		we := &d.WorkoutExercises[i]
		we.TotalVolume = 0
		for j := range we.Sets {
			set := &we.Sets[j]
			set.Volume = SetVolume(set.Weight, set.Reps)
			we.TotalVolume += set.Volume
			if set.Completed {
				d.TotalSets++
			}
		}
		we.TotalVolume = round2(we.TotalVolume)
		d.TotalVolume += we.TotalVolume
	}
	d.TotalVolume = round2(d.TotalVolume)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
