package routines

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymtracker/internal/db"
	"github.com/2beens/gymtracker/internal/gymstats/apperr"
	"github.com/2beens/gymtracker/internal/gymstats/exercises"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrRoutineNotFound         = apperr.NotFound("routine not found")
	ErrRoutineExerciseNotFound = apperr.NotFound("routine exercise not found")
)

const routineSelect = `
	SELECT r.id, r.name, r.description, r.owner_id, u.username, r.is_active,
	       (SELECT COUNT(*) FROM gymstats_routine_exercise re WHERE re.routine_id = r.id),
	       r.created_at, r.updated_at
	FROM gymstats_routine r
	JOIN users u ON u.id = r.owner_id
`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanRoutine(row pgx.Row) (Routine, error) {
	var r Routine
	if err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Description,
		&r.UserID,
		&r.Username,
		&r.IsActive,
		&r.ExerciseCount,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return Routine{}, err
	}
	r.EstimatedDuration = EstimatedDuration(r.ExerciseCount)
	return r, nil
}

// List returns the owner's routines, active one first, then most recently updated.
func (r *Repo) List(ctx context.Context, ownerID, limit, offset int) (_ []Routine, _ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.routines.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("owner.id", ownerID))

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM gymstats_routine WHERE owner_id = $1`,
		ownerID,
	).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("routines count [query row]: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		routineSelect+`
		WHERE r.owner_id = $1
		ORDER BY r.is_active DESC, r.updated_at DESC, r.id DESC
		LIMIT $2 OFFSET $3`,
		ownerID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("routines [query]: %w", err)
	}
	defer rows.Close()

	var routines []Routine
	for rows.Next() {
		routine, err := scanRoutine(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("routines [rows scan]: %w", err)
		}
		routines = append(routines, routine)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("routines [rows error]: %w", err)
	}

	return routines, count, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.routines.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", id))

	routine, err := scanRoutine(r.db.QueryRow(ctx, routineSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Routine{}, ErrRoutineNotFound
		}
		return Routine{}, fmt.Errorf("routine [query row]: %w", err)
	}

	return routine, nil
}

// Detail assembles the routine with its exercises in order.
func (r *Repo) Detail(ctx context.Context, id int) (_ Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.routines.detail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", id))

	routine, err := scanRoutine(r.db.QueryRow(ctx, routineSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Detail{}, ErrRoutineNotFound
		}
		return Detail{}, fmt.Errorf("routine detail [query row]: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT re.id, re.routine_id, re.sort_order, re.target_sets, re.target_reps,
			       re.notes, re.created_at,
			       e.id, e.name, e.muscle_group, e.is_global
			FROM gymstats_routine_exercise re
			JOIN gymstats_exercise e ON e.id = re.exercise_id
			WHERE re.routine_id = $1
			ORDER BY re.sort_order, re.id
		`,
		id,
	)
	if err != nil {
		return Detail{}, fmt.Errorf("routine exercises [query]: %w", err)
	}
	defer rows.Close()

	detail := Detail{
		Routine:          routine,
		RoutineExercises: []RoutineExercise{},
	}
	for rows.Next() {
		re, err := scanRoutineExercise(rows)
		if err != nil {
			return Detail{}, fmt.Errorf("routine exercises [rows scan]: %w", err)
		}
		detail.RoutineExercises = append(detail.RoutineExercises, re)
	}
	if err := rows.Err(); err != nil {
		return Detail{}, fmt.Errorf("routine exercises [rows error]: %w", err)
	}

	return detail, nil
}

func scanRoutineExercise(row pgx.Row) (RoutineExercise, error) {
	var re RoutineExercise
	var exerciseID int
	var name, muscleGroup string
	var isGlobal bool
	if err := row.Scan(
		&re.ID,
		&re.RoutineID,
		&re.Order,
		&re.TargetSets,
		&re.TargetReps,
		&re.Notes,
		&re.CreatedAt,
		&exerciseID,
		&name,
		&muscleGroup,
		&isGlobal,
	); err != nil {
		return RoutineExercise{}, err
	}
	re.Exercise = exercises.NewSummary(exerciseID, name, muscleGroup, isGlobal)
	return re, nil
}

// deactivateOthers locks the owner row, serializing activations of the same
// owner, and clears is_active on the owner's routines except keepID. It must
// run before the target is activated: the one-active index is checked per row.
func deactivateOthers(ctx context.Context, tx pgx.Tx, ownerID, keepID int) error {
	var lockedID int
	if err := tx.QueryRow(
		ctx,
		`SELECT id FROM users WHERE id = $1 FOR UPDATE`,
		ownerID,
	).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("user not found")
		}
		return fmt.Errorf("lock owner: %w", err)
	}

	if _, err := tx.Exec(
		ctx,
		`
			UPDATE gymstats_routine
			SET is_active = FALSE, updated_at = now()
			WHERE owner_id = $1 AND is_active AND id <> $2
		`,
		ownerID, keepID,
	); err != nil {
		return fmt.Errorf("deactivate routines: %w", err)
	}
	return nil
}

func (r *Repo) Create(ctx context.Context, ownerID int, params CreateParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.routines.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("owner.id", ownerID),
		attribute.Bool("routine.active", params.IsActive),
	)

	var id int
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if params.IsActive {
			if err := deactivateOthers(ctx, tx, ownerID, 0); err != nil {
				return err
			}
		}
		if err := tx.QueryRow(
			ctx,
			`
				INSERT INTO gymstats_routine (name, description, owner_id, is_active)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`,
			params.Name, params.Description, ownerID, params.IsActive,
		).Scan(&id); err != nil {
			return fmt.Errorf("insert routine: %w", apperr.FromDB(err, "is_active"))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update saves the routine fields; activating it deactivates the owner's other
// routines in the same transaction.
func (r *Repo) Update(ctx context.Context, routine Routine) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.routines.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", routine.ID))

	return db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if routine.IsActive {
			if err := deactivateOthers(ctx, tx, routine.UserID, routine.ID); err != nil {
				return err
			}
		}
		tag, err := tx.Exec(
			ctx,
			`
				UPDATE gymstats_routine
				SET name = $1, description = $2, is_active = $3, updated_at = now()
				WHERE id = $4 AND owner_id = $5
			`,
			routine.Name, routine.Description, routine.IsActive, routine.ID, routine.UserID,
		)
		if err != nil {
			return fmt.Errorf("update routine: %w", apperr.FromDB(err, "is_active"))
		}
		if tag.RowsAffected() == 0 {
			return ErrRoutineNotFound
		}
		return nil
	})
}

// Activate makes the routine the owner's only active routine.
func (r *Repo) Activate(ctx context.Context, ownerID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.routines.activate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", id))

	return db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := deactivateOthers(ctx, tx, ownerID, id); err != nil {
			return err
		}
		tag, err := tx.Exec(
			ctx,
			`
				UPDATE gymstats_routine
				SET is_active = TRUE, updated_at = now()
				WHERE id = $1 AND owner_id = $2
			`,
			id, ownerID,
		)
		if err != nil {
			return fmt.Errorf("activate routine: %w", apperr.FromDB(err, "is_active"))
		}
		if tag.RowsAffected() == 0 {
			return ErrRoutineNotFound
		}
		return nil
	})
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM gymstats_routine WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete routine: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}

	return nil
}

func (r *Repo) AddExercise(ctx context.Context, routineID int, re RoutineExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.routines.add_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("routine.id", routineID),
		attribute.Int("exercise.id", re.Exercise.ID),
	)

	if _, err := r.db.Exec(
		ctx,
		`
			INSERT INTO gymstats_routine_exercise
			    (routine_id, exercise_id, sort_order, target_sets, target_reps, notes)
			VALUES ($1, $2, $3, $4, $5, $6)
		`,
		routineID, re.Exercise.ID, re.Order, re.TargetSets, re.TargetReps, re.Notes,
	); err != nil {
		return fmt.Errorf("add routine exercise: %w", apperr.FromDB(err, "exercise_id"))
	}

	return nil
}

func (r *Repo) GetExercise(ctx context.Context, routineID, routineExerciseID int) (_ RoutineExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.routines.get_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine_exercise.id", routineExerciseID))

	re, err := scanRoutineExercise(r.db.QueryRow(
		ctx,
		`
			SELECT re.id, re.routine_id, re.sort_order, re.target_sets, re.target_reps,
			       re.notes, re.created_at,
			       e.id, e.name, e.muscle_group, e.is_global
			FROM gymstats_routine_exercise re
			JOIN gymstats_exercise e ON e.id = re.exercise_id
			WHERE re.id = $1 AND re.routine_id = $2
		`,
		routineExerciseID, routineID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RoutineExercise{}, ErrRoutineExerciseNotFound
		}
		return RoutineExercise{}, fmt.Errorf("routine exercise [query row]: %w", err)
	}

	return re, nil
}

func (r *Repo) UpdateExercise(ctx context.Context, re RoutineExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.routines.update_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine_exercise.id", re.ID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE gymstats_routine_exercise
			SET sort_order = $1, target_sets = $2, target_reps = $3, notes = $4
			WHERE id = $5 AND routine_id = $6
		`,
		re.Order, re.TargetSets, re.TargetReps, re.Notes, re.ID, re.RoutineID,
	)
	if err != nil {
		return fmt.Errorf("update routine exercise: %w", apperr.FromDB(err, ""))
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineExerciseNotFound
	}

	return nil
}

func (r *Repo) RemoveExercise(ctx context.Context, routineID, routineExerciseID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.routines.remove_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine_exercise.id", routineExerciseID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM gymstats_routine_exercise WHERE id = $1 AND routine_id = $2`,
		routineExerciseID, routineID,
	)
	if err != nil {
		return fmt.Errorf("remove routine exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineExerciseNotFound
	}

	return nil
}
