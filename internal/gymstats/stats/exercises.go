package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats/apperr"
	"github.com/2beens/gymtracker/internal/gymstats/exercises"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// maxHistoryRange bounds a single history query.
const maxHistoryRange = 366 * 24 * time.Hour

// ExerciseHistory represents the actor's progression on one exercise,
// so that, for each workout day, we get the averages over its completed sets.
type ExerciseHistory struct {
	ExerciseID  int        `json:"exercise_id"`
	Name        string     `json:"name"`
	MuscleGroup string     `json:"muscle_group"`
	From        string     `json:"from"`
	To          string     `json:"to"`
	Days        []DayStats `json:"days"`
}

// DayStats weights are nil when none of the day's sets carried a weight (bodyweight work).
type DayStats struct {
	Date      string   `json:"date"`
	Sets      int      `json:"sets"`
	AvgReps   float64  `json:"avg_reps"`
	AvgWeight *float64 `json:"avg_weight"`
	MaxWeight *float64 `json:"max_weight"`
	Volume    float64  `json:"volume"`
}

// PerformedSet is a completed set together with the date of its workout.
type PerformedSet struct {
	Date   time.Time
	Weight *float64
	Reps   int
}

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=stats_test

type setsRepo interface {
	CompletedSets(ctx context.Context, ownerID, exerciseID int, from, to time.Time) ([]PerformedSet, error)
}

type exerciseGetter interface {
	Get(ctx context.Context, actorID, id int) (exercises.Exercise, error)
}

type Exercises struct {
	repo      setsRepo
	exercises exerciseGetter
}

func NewExercisesStats(repo setsRepo, exercisesGetter exerciseGetter) *Exercises {
	return &Exercises{
		repo:      repo,
		exercises: exercisesGetter,
	}
}

// ExerciseHistory aggregates the actor's completed sets of a visible exercise
// per workout day, oldest day first. Both bounds are inclusive days.
func (a *Exercises) ExerciseHistory(
	ctx context.Context,
	actorID, exerciseID int,
	from, to workouts.Date,
) (_ *ExerciseHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.gymstats.exerciseHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	if to.Before(from.Time) {
		return nil, apperr.Validation("to", "to date must not be before from date")
	}
	if to.Sub(from.Time) > maxHistoryRange {
		return nil, apperr.Validation("from", "date range is limited to one year")
	}

	exercise, err := a.exercises.Get(ctx, actorID, exerciseID)
	if err != nil {
		return nil, err
	}

	sets, err := a.repo.CompletedSets(ctx, actorID, exerciseID, from.Time, to.Time)
	if err != nil {
		return nil, fmt.Errorf("exercise history: %w", err)
	}

	return &ExerciseHistory{
		ExerciseID:  exercise.ID,
		Name:        exercise.Name,
		MuscleGroup: exercise.MuscleGroup,
		From:        from.String(),
		To:          to.String(),
		Days:        daysStats(sets),
	}, nil
}

// daysStats expects sets ordered by date.
func daysStats(sets []PerformedSet) []DayStats {
	days := []DayStats{}
	var (
		repsSum, weightSum float64
		weighted           int
	)

	flush := func() {
		day := &days[len(days)-1]
		day.AvgReps = round2(repsSum / float64(day.Sets))
		day.Volume = round2(day.Volume)
		if weighted > 0 {
			avg := round2(weightSum / float64(weighted))
			day.AvgWeight = &avg
		}
	}

	for _, s := range sets {
		date := workouts.NewDate(s.Date).String()
		if len(days) == 0 || days[len(days)-1].Date != date {
			if len(days) > 0 {
				flush()
			}
			days = append(days, DayStats{Date: date})
			repsSum, weightSum, weighted = 0, 0, 0
		}

		day := &days[len(days)-1]
		day.Sets++
		day.Volume += workouts.SetVolume(s.Weight, s.Reps)
		repsSum += float64(s.Reps)
		if s.Weight != nil {
			weighted++
			weightSum += *s.Weight
			if day.MaxWeight == nil || *s.Weight > *day.MaxWeight {
				maxWeight := *s.Weight
				day.MaxWeight = &maxWeight
			}
		}
	}
	if len(days) > 0 {
		flush()
	}

	return days
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
