package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

//go:embed sql/schema.sql
var schemaSQL string

//go:embed sql/seed_exercises.sql
var seedExercisesSQL string

// Migrate creates the tables and indexes when missing and seeds the global
// exercise catalog. Safe to run on every startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "db.migrate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, schemaSQL); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}

		tag, err := tx.Exec(ctx, seedExercisesSQL)
		if err != nil {
			return fmt.Errorf("seed global exercises: %w", err)
		}
		log.Debugf("db migrate: %d global exercises seeded", tag.RowsAffected())

		return nil
	})
}
