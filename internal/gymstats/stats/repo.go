package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// CompletedSets returns the owner's completed sets of an exercise done in
// workouts dated between from and to, inclusive, ordered by workout date.
func (r *Repo) CompletedSets(ctx context.Context, ownerID, exerciseID int, from, to time.Time) (_ []PerformedSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.stats.completed_sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("owner.id", ownerID),
		attribute.Int("exercise.id", exerciseID),
	)

	rows, err := r.db.Query(
		ctx,
		`
			SELECT w.date, s.weight::float8, s.reps
			FROM gymstats_set s
			JOIN gymstats_workout_exercise we ON we.id = s.workout_exercise_id
			JOIN gymstats_workout w ON w.id = we.workout_id
			WHERE w.owner_id = $1
			  AND we.exercise_id = $2
			  AND s.completed
			  AND w.date BETWEEN $3 AND $4
			ORDER BY w.date, w.id, s.set_number
		`,
		ownerID, exerciseID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("completed sets [query]: %w", err)
	}
	defer rows.Close()

	var sets []PerformedSet
	for rows.Next() {
		var s PerformedSet
		if err := rows.Scan(&s.Date, &s.Weight, &s.Reps); err != nil {
			return nil, fmt.Errorf("completed sets [scan]: %w", err)
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completed sets [rows]: %w", err)
	}

	return sets, nil
}
