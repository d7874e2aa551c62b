package events

import (
	"context"
	"fmt"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=events_test

type eventsRepo interface {
	Add(ctx context.Context, event Event) (Event, error)
	List(ctx context.Context, params ListParams) ([]Event, error)
	Count(ctx context.Context, params EventParams) (int, error)
}

type Service struct {
	repo eventsRepo
}

func NewService(repo eventsRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) AddTrainingStart(ctx context.Context, ts TrainingStart) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.events.add.trainingstart")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	event, err := s.repo.Add(ctx, NewTrainingStartEvent(ts))
	if err != nil {
		return 0, fmt.Errorf("add training start event: %w", err)
	}
	return event.ID, nil
}

func (s *Service) AddTrainingFinish(ctx context.Context, tf TrainingFinish) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.events.add.trainingfinish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	event, err := s.repo.Add(ctx, NewTrainingFinishEvent(tf))
	if err != nil {
		return 0, fmt.Errorf("add training finish event: %w", err)
	}
	return event.ID, nil
}

// List returns a page of the owner's events, newest first, and the total count.
func (s *Service) List(ctx context.Context, params ListParams) (_ []Event, _ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.events.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	count, err := s.repo.Count(ctx, params.EventParams)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	events, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	return events, count, nil
}
