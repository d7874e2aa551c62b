package exercises

import (
	"context"
	"fmt"

	"github.com/2beens/gymtracker/internal/gymstats/access"
	"github.com/2beens/gymtracker/internal/gymstats/apperr"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	List(ctx context.Context, actorID int, params ListParams) ([]Exercise, int, error)
	Get(ctx context.Context, id int) (Exercise, error)
	NameTaken(ctx context.Context, ownerID int, name string, excludeID int) (bool, error)
	Add(ctx context.Context, ownerID int, params CreateParams) (Exercise, error)
	Update(ctx context.Context, e Exercise) (Exercise, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo exercisesRepo
}

func NewService(repo exercisesRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) List(ctx context.Context, actorID int, params ListParams) ([]ListItem, int, error) {
	if params.MuscleGroup != "" {
		muscleGroup, err := ValidateMuscleGroup(params.MuscleGroup)
		if err != nil {
			return nil, 0, err
		}
		params.MuscleGroup = muscleGroup
	}

	exercises, count, err := s.repo.List(ctx, actorID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list exercises: %w", err)
	}

	items := make([]ListItem, 0, len(exercises))
	for _, e := range exercises {
		items = append(items, NewListItem(e, actorID))
	}
	return items, count, nil
}

// Get returns the exercise if it is visible to the actor; another user's
// custom exercise is reported as not found.
func (s *Service) Get(ctx context.Context, actorID, id int) (Exercise, error) {
	e, err := s.repo.Get(ctx, id)
	if err != nil {
		return Exercise{}, fmt.Errorf("get exercise: %w", err)
	}
	if !access.CanRead(actorID, e) {
		return Exercise{}, ErrExerciseNotFound
	}
	return e, nil
}

// Lookup returns the exercise whoever owns it. Callers referencing it from a
// routine or workout apply access.CheckUsable themselves.
func (s *Service) Lookup(ctx context.Context, id int) (Exercise, error) {
	e, err := s.repo.Get(ctx, id)
	if err != nil {
		return Exercise{}, fmt.Errorf("lookup exercise: %w", err)
	}
	return e, nil
}

// Create always creates a custom exercise owned by the actor.
func (s *Service) Create(ctx context.Context, actorID int, params CreateParams) (_ Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.exercises.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	params, err = params.Validate()
	if err != nil {
		return Exercise{}, err
	}

	if err := s.checkNameFree(ctx, actorID, params.Name, 0); err != nil {
		return Exercise{}, err
	}

	e, err := s.repo.Add(ctx, actorID, params)
	if err != nil {
		return Exercise{}, fmt.Errorf("create exercise: %w", err)
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, actorID, id int, params UpdateParams) (_ Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e, err := s.getForWrite(ctx, actorID, id)
	if err != nil {
		return Exercise{}, err
	}

	e, err = params.Apply(e)
	if err != nil {
		return Exercise{}, err
	}

	if params.Name != nil {
		if err := s.checkNameFree(ctx, actorID, e.Name, e.ID); err != nil {
			return Exercise{}, err
		}
	}

	updated, err := s.repo.Update(ctx, e)
	if err != nil {
		return Exercise{}, fmt.Errorf("update exercise: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, actorID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.getForWrite(ctx, actorID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}

// getForWrite loads the exercise and applies the write policy: global exercises
// are immutable, custom ones can only be changed by their owner.
func (s *Service) getForWrite(ctx context.Context, actorID, id int) (Exercise, error) {
	e, err := s.repo.Get(ctx, id)
	if err != nil {
		return Exercise{}, fmt.Errorf("get exercise: %w", err)
	}
	if err := access.Check(actorID, e, access.Write); err != nil {
		return Exercise{}, err
	}
	return e, nil
}

func (s *Service) checkNameFree(ctx context.Context, ownerID int, name string, excludeID int) error {
	taken, err := s.repo.NameTaken(ctx, ownerID, name, excludeID)
	if err != nil {
		return fmt.Errorf("check exercise name: %w", err)
	}
	if taken {
		return apperr.Uniqueness("name", "you already have an exercise named %q", name)
	}
	return nil
}
