package exercises

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/gymtracker/internal/gymstats/apperr"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseNotFound = apperr.NotFound("exercise not found")

const exerciseColumns = `id, name, description, muscle_group, is_global, owner_id, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanExercise(row pgx.Row) (Exercise, error) {
	var e Exercise
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&e.MuscleGroup,
		&e.IsGlobal,
		&e.CreatedBy,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return Exercise{}, err
	}
	e.MuscleGroupLabel = MuscleGroupLabel(e.MuscleGroup)
	return e, nil
}

// List returns exercises visible to the actor (global and own custom) matching
// the filters, ordered by muscle group and name, plus the total count.
func (r *Repo) List(ctx context.Context, actorID int, params ListParams) (_ []Exercise, _ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("actor.id", actorID))
	if params.Search != "" {
		span.SetAttributes(attribute.String("params.search", params.Search))
	}
	if params.MuscleGroup != "" {
		span.SetAttributes(attribute.String("params.muscleGroup", params.MuscleGroup))
	}

	search := likeEscaper.Replace(params.Search)

	const where = `
		WHERE (owner_id IS NULL OR owner_id = $1)
		  AND ($2::text = '' OR name ILIKE '%' || $2 || '%')
		  AND ($3::text = '' OR muscle_group = $3)
		  AND ($4::boolean IS NULL OR is_global = $4)
	`

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM gymstats_exercise`+where,
		actorID, search, params.MuscleGroup, params.IsGlobal,
	).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("exercises count [query row]: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM gymstats_exercise`+where+`
		ORDER BY muscle_group, name, id
		LIMIT $5 OFFSET $6`,
		actorID, search, params.MuscleGroup, params.IsGlobal,
		params.Limit, params.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("exercises [query]: %w", err)
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("exercises [rows error]: %w", err)
	}

	return exercises, count, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	e, err := scanExercise(r.db.QueryRow(
		ctx,
		`SELECT `+exerciseColumns+` FROM gymstats_exercise WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Exercise{}, ErrExerciseNotFound
		}
		return Exercise{}, fmt.Errorf("exercise [query row]: %w", err)
	}

	return e, nil
}

// NameTaken reports whether the owner already has an exercise with this name
// (case-insensitive), ignoring the exercise with excludeID.
func (r *Repo) NameTaken(ctx context.Context, ownerID int, name string, excludeID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.name_taken")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var taken bool
	err = r.db.QueryRow(
		ctx,
		`
			SELECT EXISTS (
				SELECT 1 FROM gymstats_exercise
				WHERE owner_id = $1 AND lower(name) = lower($2) AND id <> $3
			)
		`,
		ownerID, name, excludeID,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("exercise name taken [query row]: %w", err)
	}

	return taken, nil
}

func (r *Repo) Add(ctx context.Context, ownerID int, params CreateParams) (_ Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e, err := scanExercise(r.db.QueryRow(
		ctx,
		`
			INSERT INTO gymstats_exercise
			    (name, description, muscle_group, is_global, owner_id)
			VALUES ($1, $2, $3, FALSE, $4)
			RETURNING `+exerciseColumns,
		params.Name,
		params.Description,
		params.MuscleGroup,
		ownerID,
	))
	if err != nil {
		return Exercise{}, fmt.Errorf("add exercise: %w", apperr.FromDB(err, "name"))
	}

	return e, nil
}

func (r *Repo) Update(ctx context.Context, e Exercise) (_ Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", e.ID))

	updated, err := scanExercise(r.db.QueryRow(
		ctx,
		`
			UPDATE gymstats_exercise
			SET name = $1, description = $2, muscle_group = $3, updated_at = now()
			WHERE id = $4 AND NOT is_global
			RETURNING `+exerciseColumns,
		e.Name,
		e.Description,
		e.MuscleGroup,
		e.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Exercise{}, ErrExerciseNotFound
		}
		return Exercise{}, fmt.Errorf("update exercise: %w", apperr.FromDB(err, "name"))
	}

	return updated, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM gymstats_exercise WHERE id = $1 AND NOT is_global`, id)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}
