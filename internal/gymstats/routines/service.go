package routines

import (
	"context"
	"fmt"

	"github.com/2beens/gymtracker/internal/gymstats/access"
	"github.com/2beens/gymtracker/internal/gymstats/exercises"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=routines_test

type routinesRepo interface {
	List(ctx context.Context, ownerID, limit, offset int) ([]Routine, int, error)
	Get(ctx context.Context, id int) (Routine, error)
	Detail(ctx context.Context, id int) (Detail, error)
	Create(ctx context.Context, ownerID int, params CreateParams) (int, error)
	Update(ctx context.Context, routine Routine) error
	Activate(ctx context.Context, ownerID, id int) error
	Delete(ctx context.Context, id int) error
	AddExercise(ctx context.Context, routineID int, re RoutineExercise) error
	GetExercise(ctx context.Context, routineID, routineExerciseID int) (RoutineExercise, error)
	UpdateExercise(ctx context.Context, re RoutineExercise) error
	RemoveExercise(ctx context.Context, routineID, routineExerciseID int) error
}

type exerciseLookup interface {
	Lookup(ctx context.Context, id int) (exercises.Exercise, error)
}

type workoutCreator interface {
	Create(ctx context.Context, actorID int, params workouts.CreateParams) (workouts.Detail, error)
}

type Service struct {
	repo           routinesRepo
	exercises      exerciseLookup
	workouts       workoutCreator
	metricsManager *metrics.Manager
}

func NewService(
	repo routinesRepo,
	exercises exerciseLookup,
	workouts workoutCreator,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		exercises:      exercises,
		workouts:       workouts,
		metricsManager: metricsManager,
	}
}

func (s *Service) List(ctx context.Context, actorID, limit, offset int) ([]Routine, int, error) {
	routines, count, err := s.repo.List(ctx, actorID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list routines: %w", err)
	}
	return routines, count, nil
}

// Get returns the full routine; routines of other users are reported as not found.
func (s *Service) Get(ctx context.Context, actorID, id int) (Detail, error) {
	detail, err := s.repo.Detail(ctx, id)
	if err != nil {
		return Detail{}, fmt.Errorf("get routine: %w", err)
	}
	if !access.CanRead(actorID, detail.Routine) {
		return Detail{}, ErrRoutineNotFound
	}
	return detail, nil
}

func (s *Service) Create(ctx context.Context, actorID int, params CreateParams) (_ Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.routines.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	params, err = params.Validate()
	if err != nil {
		return Detail{}, err
	}

	id, err := s.repo.Create(ctx, actorID, params)
	if err != nil {
		return Detail{}, fmt.Errorf("create routine: %w", err)
	}
	span.SetAttributes(attribute.Int("routine.id", id))

	if params.IsActive {
		s.countActivation()
	}
	return s.detail(ctx, id)
}

func (s *Service) Update(ctx context.Context, actorID, id int, params UpdateParams) (_ Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.routines.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routine, err := s.getForWrite(ctx, actorID, id)
	if err != nil {
		return Detail{}, err
	}
	wasActive := routine.IsActive

	routine, err = params.Apply(routine)
	if err != nil {
		return Detail{}, err
	}

	if err := s.repo.Update(ctx, routine); err != nil {
		return Detail{}, fmt.Errorf("update routine: %w", err)
	}
	if routine.IsActive && !wasActive {
		s.countActivation()
	}
	return s.detail(ctx, id)
}

func (s *Service) Delete(ctx context.Context, actorID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.getForWrite(ctx, actorID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete routine: %w", err)
	}
	return nil
}

// Activate makes the routine the actor's only active routine.
func (s *Service) Activate(ctx context.Context, actorID, id int) (_ Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.routines.activate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.getForWrite(ctx, actorID, id); err != nil {
		return Detail{}, err
	}
	if err := s.repo.Activate(ctx, actorID, id); err != nil {
		return Detail{}, fmt.Errorf("activate routine: %w", err)
	}
	s.countActivation()
	return s.detail(ctx, id)
}

// AddExercise appends an exercise to the routine. A custom exercise must belong
// to the routine owner.
func (s *Service) AddExercise(ctx context.Context, actorID, id int, params AddExerciseParams) (_ Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.routines.add_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routine, err := s.getForWrite(ctx, actorID, id)
	if err != nil {
		return Detail{}, err
	}

	re, err := params.NewRoutineExercise()
	if err != nil {
		return Detail{}, err
	}

	exercise, err := s.exercises.Lookup(ctx, params.ExerciseID)
	if err != nil {
		return Detail{}, err
	}
	if err := access.CheckUsable(routine.UserID, exercise); err != nil {
		return Detail{}, err
	}

	if err := s.repo.AddExercise(ctx, id, re); err != nil {
		return Detail{}, fmt.Errorf("add routine exercise: %w", err)
	}
	return s.detail(ctx, id)
}

// UpdateExercise changes order, targets and notes only.
func (s *Service) UpdateExercise(ctx context.Context, actorID, id, routineExerciseID int, params UpdateExerciseParams) (_ Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.routines.update_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.getForWrite(ctx, actorID, id); err != nil {
		return Detail{}, err
	}

	re, err := s.repo.GetExercise(ctx, id, routineExerciseID)
	if err != nil {
		return Detail{}, fmt.Errorf("get routine exercise: %w", err)
	}

	re, err = params.Apply(re)
	if err != nil {
		return Detail{}, err
	}

	if err := s.repo.UpdateExercise(ctx, re); err != nil {
		return Detail{}, fmt.Errorf("update routine exercise: %w", err)
	}
	return s.detail(ctx, id)
}

func (s *Service) RemoveExercise(ctx context.Context, actorID, id, routineExerciseID int) (_ Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.routines.remove_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.getForWrite(ctx, actorID, id); err != nil {
		return Detail{}, err
	}
	if err := s.repo.RemoveExercise(ctx, id, routineExerciseID); err != nil {
		return Detail{}, fmt.Errorf("remove routine exercise: %w", err)
	}
	return s.detail(ctx, id)
}

// StartWorkout creates a workout holding a snapshot of the routine exercises.
// Later routine edits do not change the workout.
func (s *Service) StartWorkout(ctx context.Context, actorID, id int, params StartWorkoutParams) (_ workouts.Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.routines.start_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.getForWrite(ctx, actorID, id); err != nil {
		return workouts.Detail{}, err
	}

	routineID := id
	detail, err := s.workouts.Create(ctx, actorID, workouts.CreateParams{
		RoutineID: &routineID,
		Date:      params.Date,
		Notes:     params.Notes,
	})
	if err != nil {
		return workouts.Detail{}, fmt.Errorf("start workout from routine %d: %w", id, err)
	}
	return detail, nil
}

// getForWrite loads the routine and checks the actor owns it; a routine of
// another user is not visible and is reported as not found.
func (s *Service) getForWrite(ctx context.Context, actorID, id int) (Routine, error) {
	routine, err := s.repo.Get(ctx, id)
	if err != nil {
		return Routine{}, fmt.Errorf("get routine: %w", err)
	}
	if !access.CanRead(actorID, routine) {
		return Routine{}, ErrRoutineNotFound
	}
	if err := access.Check(actorID, routine, access.Write); err != nil {
		return Routine{}, err
	}
	return routine, nil
}

func (s *Service) detail(ctx context.Context, id int) (Detail, error) {
	detail, err := s.repo.Detail(ctx, id)
	if err != nil {
		return Detail{}, fmt.Errorf("get routine detail: %w", err)
	}
	return detail, nil
}

func (s *Service) countActivation() {
	if s.metricsManager != nil {
		s.metricsManager.CounterRoutineActivations.Inc()
	}
}
