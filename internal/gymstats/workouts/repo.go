package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymtracker/internal/db"
	"github.com/2beens/gymtracker/internal/gymstats/apperr"
	"github.com/2beens/gymtracker/internal/gymstats/exercises"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound         = apperr.NotFound("workout not found")
	ErrWorkoutExerciseNotFound = apperr.NotFound("workout exercise not found")
	ErrSetNotFound             = apperr.NotFound("set not found")
	ErrRoutineNotFound         = apperr.NotFound("routine not found")
	ErrWorkoutAlreadyFinished  = apperr.AlreadyFinalized("workout is already finished")
)

const workoutSelect = `
	SELECT w.id, w.owner_id, w.routine_id, r.name, w.date, w.start_time, w.end_time,
	       w.notes, w.created_at, w.updated_at
	FROM gymstats_workout w
	LEFT JOIN gymstats_routine r ON r.id = w.routine_id
`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanWorkout(row pgx.Row, extra ...any) (Workout, error) {
	var w Workout
	dest := []any{
		&w.ID,
		&w.UserID,
		&w.RoutineID,
		&w.RoutineName,
		&w.Date.Time,
		&w.StartTime,
		&w.EndTime,
		&w.Notes,
		&w.CreatedAt,
		&w.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return Workout{}, err
	}
	w.Duration = DurationMinutes(w.StartTime, w.EndTime)
	return w, nil
}

// List returns the owner's workouts, newest first, with the list totals
// computed in the query, plus the total count.
func (r *Repo) List(ctx context.Context, ownerID, limit, offset int) (_ []Workout, _ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("owner.id", ownerID))

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM gymstats_workout WHERE owner_id = $1`,
		ownerID,
	).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("workouts count [query row]: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT w.id, w.owner_id, w.routine_id, r.name, w.date, w.start_time, w.end_time,
			       w.notes, w.created_at, w.updated_at,
			       (SELECT COUNT(*) FROM gymstats_workout_exercise we WHERE we.workout_id = w.id),
			       COALESCE(totals.volume, 0)::float8,
			       COALESCE(totals.completed, 0)
			FROM gymstats_workout w
			LEFT JOIN gymstats_routine r ON r.id = w.routine_id
			LEFT JOIN LATERAL (
				SELECT SUM(COALESCE(s.weight, 1) * s.reps) AS volume,
				       COUNT(*) FILTER (WHERE s.completed) AS completed
				FROM gymstats_set s
				JOIN gymstats_workout_exercise we ON we.id = s.workout_exercise_id
				WHERE we.workout_id = w.id
			) totals ON TRUE
			WHERE w.owner_id = $1
			ORDER BY w.date DESC, w.created_at DESC, w.id DESC
			LIMIT $2 OFFSET $3
		`,
		ownerID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("workouts [query]: %w", err)
	}
	defer rows.Close()

	var workouts []Workout
	for rows.Next() {
		var exerciseCount, totalSets int
		var totalVolume float64
		w, err := scanWorkout(rows, &exerciseCount, &totalVolume, &totalSets)
		if err != nil {
			return nil, 0, fmt.Errorf("workouts [rows scan]: %w", err)
		}
		w.ExerciseCount = exerciseCount
		w.TotalVolume = round2(totalVolume)
		w.TotalSets = totalSets
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("workouts [rows error]: %w", err)
	}

	return workouts, count, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	w, err := scanWorkout(r.db.QueryRow(ctx, workoutSelect+` WHERE w.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Workout{}, ErrWorkoutNotFound
		}
		return Workout{}, fmt.Errorf("workout [query row]: %w", err)
	}

	return w, nil
}

// Detail assembles the workout with its ordered exercises and their sets.
func (r *Repo) Detail(ctx context.Context, id int) (_ Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.detail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	w, err := scanWorkout(r.db.QueryRow(ctx, workoutSelect+` WHERE w.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Detail{}, ErrWorkoutNotFound
		}
		return Detail{}, fmt.Errorf("workout detail [query row]: %w", err)
	}

	detail := Detail{
		Workout:          w,
		WorkoutExercises: []WorkoutExercise{},
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT we.id, we.workout_id, we.sort_order, we.notes, we.created_at,
			       e.id, e.name, e.muscle_group, e.is_global
			FROM gymstats_workout_exercise we
			JOIN gymstats_exercise e ON e.id = we.exercise_id
			WHERE we.workout_id = $1
			ORDER BY we.sort_order, we.id
		`,
		id,
	)
	if err != nil {
		return Detail{}, fmt.Errorf("workout exercises [query]: %w", err)
	}
	defer rows.Close()

	indexByID := map[int]int{}
	for rows.Next() {
		var we WorkoutExercise
		var exerciseID int
		var name, muscleGroup string
		var isGlobal bool
		if err := rows.Scan(
			&we.ID,
			&we.WorkoutID,
			&we.Order,
			&we.Notes,
			&we.CreatedAt,
			&exerciseID,
			&name,
			&muscleGroup,
			&isGlobal,
		); err != nil {
			return Detail{}, fmt.Errorf("workout exercises [rows scan]: %w", err)
		}
		we.Exercise = exercises.NewSummary(exerciseID, name, muscleGroup, isGlobal)
		we.Sets = []Set{}
		indexByID[we.ID] = len(detail.WorkoutExercises)
		detail.WorkoutExercises = append(detail.WorkoutExercises, we)
	}
	if err := rows.Err(); err != nil {
		return Detail{}, fmt.Errorf("workout exercises [rows error]: %w", err)
	}
	rows.Close()

	setRows, err := r.db.Query(
		ctx,
		`
			SELECT s.id, s.workout_exercise_id, s.set_number, s.weight::float8, s.reps,
			       s.completed, s.rpe, s.created_at
			FROM gymstats_set s
			JOIN gymstats_workout_exercise we ON we.id = s.workout_exercise_id
			WHERE we.workout_id = $1
			ORDER BY s.set_number, s.id
		`,
		id,
	)
	if err != nil {
		return Detail{}, fmt.Errorf("workout sets [query]: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		s, err := scanSet(setRows)
		if err != nil {
			return Detail{}, fmt.Errorf("workout sets [rows scan]: %w", err)
		}
		if i, ok := indexByID[s.WorkoutExerciseID]; ok {
			detail.WorkoutExercises[i].Sets = append(detail.WorkoutExercises[i].Sets, s)
		}
	}
	if err := setRows.Err(); err != nil {
		return Detail{}, fmt.Errorf("workout sets [rows error]: %w", err)
	}

	detail.applyDerived()
	return detail, nil
}

// Create inserts the workout. With a routine id, the routine must belong to the
// owner and its exercises are copied into the workout in the same transaction.
func (r *Repo) Create(ctx context.Context, ownerID int, params CreateParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("owner.id", ownerID))

	var date time.Time
	if params.Date != nil {
		date = params.Date.Time
	}

	var workoutID int
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if params.RoutineID != nil {
			span.SetAttributes(attribute.Int("routine.id", *params.RoutineID))
			var owned bool
			if err := tx.QueryRow(
				ctx,
				`SELECT EXISTS (SELECT 1 FROM gymstats_routine WHERE id = $1 AND owner_id = $2)`,
				*params.RoutineID, ownerID,
			).Scan(&owned); err != nil {
				return fmt.Errorf("check routine [query row]: %w", err)
			}
			if !owned {
				return ErrRoutineNotFound
			}
		}

		if err := tx.QueryRow(
			ctx,
			`
				INSERT INTO gymstats_workout (owner_id, routine_id, date, start_time, notes)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id
			`,
			ownerID, params.RoutineID, date, params.StartTime, params.Notes,
		).Scan(&workoutID); err != nil {
			return fmt.Errorf("insert workout: %w", apperr.FromDB(err, ""))
		}

		if params.RoutineID == nil {
			return nil
		}

		if _, err := tx.Exec(
			ctx,
			`
				INSERT INTO gymstats_workout_exercise (workout_id, exercise_id, sort_order, notes)
				SELECT $1, re.exercise_id, re.sort_order, re.notes
				FROM gymstats_routine_exercise re
				WHERE re.routine_id = $2
				ORDER BY re.sort_order, re.id
			`,
			workoutID, *params.RoutineID,
		); err != nil {
			return fmt.Errorf("snapshot routine exercises: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return workoutID, nil
}

func (r *Repo) Update(ctx context.Context, w Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", w.ID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE gymstats_workout
			SET date = $1, start_time = $2, end_time = $3, notes = $4, updated_at = now()
			WHERE id = $5
		`,
		w.Date.Time, w.StartTime, w.EndTime, w.Notes, w.ID,
	)
	if err != nil {
		return fmt.Errorf("update workout: %w", apperr.FromDB(err, "end_time"))
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM gymstats_workout WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}

// Finish sets the end time only if the workout is not finished yet, so two
// concurrent finishes cannot both succeed.
func (r *Repo) Finish(ctx context.Context, id int, at time.Time) (_ time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	var endTime time.Time
	err = r.db.QueryRow(
		ctx,
		`
			UPDATE gymstats_workout
			SET end_time = $2, updated_at = now()
			WHERE id = $1 AND end_time IS NULL
			RETURNING end_time
		`,
		id, at,
	).Scan(&endTime)
	if err == nil {
		return endTime, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, fmt.Errorf("finish workout: %w", apperr.FromDB(err, "end_time"))
	}

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM gymstats_workout WHERE id = $1)`,
		id,
	).Scan(&exists); err != nil {
		return time.Time{}, fmt.Errorf("finish workout, check exists: %w", err)
	}
	if !exists {
		return time.Time{}, ErrWorkoutNotFound
	}
	return time.Time{}, ErrWorkoutAlreadyFinished
}

func (r *Repo) AddExercise(ctx context.Context, workoutID int, exerciseID int, order int, notes string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.add_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("workout.id", workoutID),
		attribute.Int("exercise.id", exerciseID),
	)

	if _, err := r.db.Exec(
		ctx,
		`
			INSERT INTO gymstats_workout_exercise (workout_id, exercise_id, sort_order, notes)
			VALUES ($1, $2, $3, $4)
		`,
		workoutID, exerciseID, order, notes,
	); err != nil {
		return fmt.Errorf("add workout exercise: %w", apperr.FromDB(err, "exercise_id"))
	}

	return nil
}

func (r *Repo) RemoveExercise(ctx context.Context, workoutID, workoutExerciseID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.remove_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM gymstats_workout_exercise WHERE id = $1 AND workout_id = $2`,
		workoutExerciseID, workoutID,
	)
	if err != nil {
		return fmt.Errorf("remove workout exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutExerciseNotFound
	}

	return nil
}

func scanSet(row pgx.Row) (Set, error) {
	var s Set
	if err := row.Scan(
		&s.ID,
		&s.WorkoutExerciseID,
		&s.SetNumber,
		&s.Weight,
		&s.Reps,
		&s.Completed,
		&s.RPE,
		&s.CreatedAt,
	); err != nil {
		return Set{}, err
	}
	s.Volume = SetVolume(s.Weight, s.Reps)
	return s, nil
}

// GetSet loads a set, checking it belongs to the given workout exercise of the workout.
func (r *Repo) GetSet(ctx context.Context, workoutID, workoutExerciseID, setID int) (_ Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.get_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", setID))

	s, err := scanSet(r.db.QueryRow(
		ctx,
		`
			SELECT s.id, s.workout_exercise_id, s.set_number, s.weight::float8, s.reps,
			       s.completed, s.rpe, s.created_at
			FROM gymstats_set s
			JOIN gymstats_workout_exercise we ON we.id = s.workout_exercise_id
			WHERE s.id = $1 AND we.id = $2 AND we.workout_id = $3
		`,
		setID, workoutExerciseID, workoutID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Set{}, ErrSetNotFound
		}
		return Set{}, fmt.Errorf("set [query row]: %w", err)
	}

	return s, nil
}

// AddSet inserts a set into a workout exercise of the workout. A zero set
// number is replaced with the next free number of that exercise.
func (r *Repo) AddSet(ctx context.Context, workoutID, workoutExerciseID int, s Set) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.add_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("workout.id", workoutID),
		attribute.Int("workout_exercise.id", workoutExerciseID),
	)

	var id int
	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO gymstats_set (workout_exercise_id, set_number, weight, reps, completed, rpe)
			SELECT we.id,
			       COALESCE(
			           NULLIF($3::int, 0),
			           (SELECT COALESCE(MAX(s.set_number), 0) + 1 FROM gymstats_set s WHERE s.workout_exercise_id = we.id)
			       ),
			       $4::numeric, $5::int, $6::boolean, $7::int
			FROM gymstats_workout_exercise we
			WHERE we.id = $2 AND we.workout_id = $1
			RETURNING id
		`,
		workoutID, workoutExerciseID, s.SetNumber, s.Weight, s.Reps, s.Completed, s.RPE,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrWorkoutExerciseNotFound
		}
		return 0, fmt.Errorf("add set: %w", apperr.FromDB(err, "set_number"))
	}

	return id, nil
}

func (r *Repo) UpdateSet(ctx context.Context, s Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.update_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", s.ID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE gymstats_set
			SET set_number = $1, weight = $2, reps = $3, completed = $4, rpe = $5
			WHERE id = $6
		`,
		s.SetNumber, s.Weight, s.Reps, s.Completed, s.RPE, s.ID,
	)
	if err != nil {
		return fmt.Errorf("update set: %w", apperr.FromDB(err, "set_number"))
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}

	return nil
}

func (r *Repo) DeleteSet(ctx context.Context, workoutID, workoutExerciseID, setID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.workouts.delete_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", setID))

	tag, err := r.db.Exec(
		ctx,
		`
			DELETE FROM gymstats_set s
			USING gymstats_workout_exercise we
			WHERE s.id = $1
			  AND s.workout_exercise_id = we.id
			  AND we.id = $2
			  AND we.workout_id = $3
		`,
		setID, workoutExerciseID, workoutID,
	)
	if err != nil {
		return fmt.Errorf("delete set: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}

	return nil
}
