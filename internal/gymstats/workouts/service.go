package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats/access"
	"github.com/2beens/gymtracker/internal/gymstats/events"
	"github.com/2beens/gymtracker/internal/gymstats/exercises"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	List(ctx context.Context, ownerID, limit, offset int) ([]Workout, int, error)
	Get(ctx context.Context, id int) (Workout, error)
	Detail(ctx context.Context, id int) (Detail, error)
	Create(ctx context.Context, ownerID int, params CreateParams) (int, error)
	Update(ctx context.Context, w Workout) error
	Delete(ctx context.Context, id int) error
	Finish(ctx context.Context, id int, at time.Time) (time.Time, error)
	AddExercise(ctx context.Context, workoutID int, exerciseID int, order int, notes string) error
	RemoveExercise(ctx context.Context, workoutID, workoutExerciseID int) error
	GetSet(ctx context.Context, workoutID, workoutExerciseID, setID int) (Set, error)
	AddSet(ctx context.Context, workoutID, workoutExerciseID int, s Set) (int, error)
	UpdateSet(ctx context.Context, s Set) error
	DeleteSet(ctx context.Context, workoutID, workoutExerciseID, setID int) error
}

type exerciseLookup interface {
	Lookup(ctx context.Context, id int) (exercises.Exercise, error)
}

type eventRecorder interface {
	AddTrainingStart(ctx context.Context, ts events.TrainingStart) (int, error)
	AddTrainingFinish(ctx context.Context, tf events.TrainingFinish) (int, error)
}

type Service struct {
	repo           workoutsRepo
	exercises      exerciseLookup
	events         eventRecorder
	metricsManager *metrics.Manager
	nowFunc        func() time.Time
}

func NewService(
	repo workoutsRepo,
	exercises exerciseLookup,
	events eventRecorder,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		exercises:      exercises,
		events:         events,
		metricsManager: metricsManager,
		nowFunc:        time.Now,
	}
}

// SetNowFunc replaces the clock used for start and finish times.
func (s *Service) SetNowFunc(nowFunc func() time.Time) {
	s.nowFunc = nowFunc
}

func (s *Service) List(ctx context.Context, actorID, limit, offset int) ([]Workout, int, error) {
	workouts, count, err := s.repo.List(ctx, actorID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, count, nil
}

// Get returns the full workout; workouts of other users are reported as not found.
func (s *Service) Get(ctx context.Context, actorID, id int) (Detail, error) {
	detail, err := s.repo.Detail(ctx, id)
	if err != nil {
		return Detail{}, fmt.Errorf("get workout: %w", err)
	}
	if !access.CanRead(actorID, detail.Workout) {
		return Detail{}, ErrWorkoutNotFound
	}
	return detail, nil
}

// Create starts a workout for the actor. With a routine id the routine
// exercises are copied into the new workout.
func (s *Service) Create(ctx context.Context, actorID int, params CreateParams) (_ Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := s.nowFunc().UTC()
	if params.Date == nil {
		today := NewDate(now)
		params.Date = &today
	}
	if params.StartTime == nil {
		params.StartTime = &now
	}

	id, err := s.repo.Create(ctx, actorID, params)
	if err != nil {
		return Detail{}, fmt.Errorf("create workout: %w", err)
	}
	span.SetAttributes(attribute.Int("workout.id", id))

	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsStarted.Inc()
	}
	s.recordStart(ctx, actorID, id, *params.StartTime)

	return s.detail(ctx, id)
}

func (s *Service) Update(ctx context.Context, actorID, id int, params UpdateParams) (_ Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := s.getForWrite(ctx, actorID, id)
	if err != nil {
		return Detail{}, err
	}

	w, err = params.Apply(w)
	if err != nil {
		return Detail{}, err
	}

	if err := s.repo.Update(ctx, w); err != nil {
		return Detail{}, fmt.Errorf("update workout: %w", err)
	}
	return s.detail(ctx, id)
}

func (s *Service) Delete(ctx context.Context, actorID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.getForWrite(ctx, actorID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}

// Finish sets the end time to now. Finishing twice fails with AlreadyFinalized
// and leaves the first end time in place.
func (s *Service) Finish(ctx context.Context, actorID, id int) (_ Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.workouts.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := s.getForWrite(ctx, actorID, id)
	if err != nil {
		return Detail{}, err
	}
	if w.IsFinished() {
		return Detail{}, ErrWorkoutAlreadyFinished
	}

	endTime, err := s.repo.Finish(ctx, id, s.nowFunc().UTC())
	if err != nil {
		return Detail{}, fmt.Errorf("finish workout: %w", err)
	}

	detail, err := s.detail(ctx, id)
	if err != nil {
		return Detail{}, err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsFinished.Inc()
		if detail.Duration != nil {
			s.metricsManager.HistWorkoutDuration.Observe(float64(*detail.Duration))
		}
	}
	s.recordFinish(ctx, detail, endTime)

	return detail, nil
}

// AddExercise appends an exercise to the workout. The exercise must be visible
// to the actor and, when custom, owned by the workout owner.
func (s *Service) AddExercise(ctx context.Context, actorID, id int, params AddExerciseParams) (_ Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.workouts.add_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := s.getForWrite(ctx, actorID, id)
	if err != nil {
		return Detail{}, err
	}

	order, err := validateAddExercise(params)
	if err != nil {
		return Detail{}, err
	}

	exercise, err := s.exercises.Lookup(ctx, params.ExerciseID)
	if err != nil {
		return Detail{}, err
	}
	if err := access.CheckUsable(w.UserID, exercise); err != nil {
		return Detail{}, err
	}

	if err := s.repo.AddExercise(ctx, id, exercise.ID, order, params.Notes); err != nil {
		return Detail{}, fmt.Errorf("add workout exercise: %w", err)
	}
	return s.detail(ctx, id)
}

func (s *Service) RemoveExercise(ctx context.Context, actorID, id, workoutExerciseID int) (_ Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.workouts.remove_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.getForWrite(ctx, actorID, id); err != nil {
		return Detail{}, err
	}
	if err := s.repo.RemoveExercise(ctx, id, workoutExerciseID); err != nil {
		return Detail{}, fmt.Errorf("remove workout exercise: %w", err)
	}
	return s.detail(ctx, id)
}

func (s *Service) AddSet(ctx context.Context, actorID, id, workoutExerciseID int, params SetParams) (_ Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.workouts.add_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.getForWrite(ctx, actorID, id); err != nil {
		return Detail{}, err
	}

	set, err := params.NewSet()
	if err != nil {
		return Detail{}, err
	}

	if _, err := s.repo.AddSet(ctx, id, workoutExerciseID, set); err != nil {
		return Detail{}, fmt.Errorf("add set: %w", err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterSetsLogged.Inc()
	}
	return s.detail(ctx, id)
}

// UpdateSet merges the partial update into the stored set and validates the result.
func (s *Service) UpdateSet(ctx context.Context, actorID, id, workoutExerciseID, setID int, params SetUpdateParams) (_ Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.workouts.update_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.getForWrite(ctx, actorID, id); err != nil {
		return Detail{}, err
	}

	set, err := s.repo.GetSet(ctx, id, workoutExerciseID, setID)
	if err != nil {
		return Detail{}, fmt.Errorf("get set: %w", err)
	}

	set, err = params.Apply(set)
	if err != nil {
		return Detail{}, err
	}

	if err := s.repo.UpdateSet(ctx, set); err != nil {
		return Detail{}, fmt.Errorf("update set: %w", err)
	}
	return s.detail(ctx, id)
}

func (s *Service) DeleteSet(ctx context.Context, actorID, id, workoutExerciseID, setID int) (_ Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.workouts.delete_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.getForWrite(ctx, actorID, id); err != nil {
		return Detail{}, err
	}
	if err := s.repo.DeleteSet(ctx, id, workoutExerciseID, setID); err != nil {
		return Detail{}, fmt.Errorf("delete set: %w", err)
	}
	return s.detail(ctx, id)
}

// getForWrite loads the workout and checks the actor owns it; a workout of
// another user is not visible and is reported as not found.
func (s *Service) getForWrite(ctx context.Context, actorID, id int) (Workout, error) {
	w, err := s.repo.Get(ctx, id)
	if err != nil {
		return Workout{}, fmt.Errorf("get workout: %w", err)
	}
	if !access.CanRead(actorID, w) {
		return Workout{}, ErrWorkoutNotFound
	}
	if err := access.Check(actorID, w, access.Write); err != nil {
		return Workout{}, err
	}
	return w, nil
}

func (s *Service) detail(ctx context.Context, id int) (Detail, error) {
	detail, err := s.repo.Detail(ctx, id)
	if err != nil {
		return Detail{}, fmt.Errorf("get workout detail: %w", err)
	}
	return detail, nil
}

func (s *Service) recordStart(ctx context.Context, ownerID, workoutID int, at time.Time) {
	if s.events == nil {
		return
	}
	if _, err := s.events.AddTrainingStart(ctx, events.TrainingStart{
		OwnerID:   ownerID,
		WorkoutID: workoutID,
		Timestamp: at,
	}); err != nil {
		log.Errorf("workout %d: record training start: %s", workoutID, err)
	}
}

func (s *Service) recordFinish(ctx context.Context, detail Detail, at time.Time) {
	if s.events == nil {
		return
	}
	if _, err := s.events.AddTrainingFinish(ctx, events.TrainingFinish{
		OwnerID:     detail.UserID,
		WorkoutID:   detail.ID,
		Timestamp:   at,
		Duration:    detail.Duration,
		TotalVolume: detail.TotalVolume,
		TotalSets:   detail.TotalSets,
	}); err != nil {
		log.Errorf("workout %d: record training finish: %s", detail.ID, err)
	}
}
