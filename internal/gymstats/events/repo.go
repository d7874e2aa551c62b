package events

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type EventParams struct {
	OwnerID int
	Type    *EventType
	From    *time.Time
	To      *time.Time
}

type ListParams struct {
	EventParams
	Limit  int
	Offset int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, event Event) (_ Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.events.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("type", event.Type.String()))

	if event.Data == nil {
		event.Data = map[string]string{}
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO gymstats_event (owner_id, type, workout_id, data, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		event.OwnerID,
		event.Type,
		event.WorkoutID,
		event.Data,
		event.Timestamp,
	).Scan(&event.ID)
	if err != nil {
		return Event{}, fmt.Errorf("add event: %w", err)
	}
	return event, nil
}

const eventsWhere = `
	WHERE owner_id = $1
	  AND ($2::text IS NULL OR type = $2)
	  AND ($3::timestamptz IS NULL OR timestamp >= $3)
	  AND ($4::timestamptz IS NULL OR timestamp <= $4)
`

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.events.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("owner.id", params.OwnerID))
	if params.Type != nil {
		span.SetAttributes(attribute.String("type", string(*params.Type)))
	}
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, type, workout_id, data, timestamp
		FROM gymstats_event
	`+eventsWhere+`
		ORDER BY timestamp DESC, id DESC
		LIMIT $5 OFFSET $6
	`,
		params.OwnerID,
		params.Type,
		params.From, params.To,
		params.Limit, params.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("events [query]: %w", err)
	}
	defer rows.Close()

	events := make([]Event, 0)
	for rows.Next() {
		var event Event
		if err := rows.Scan(
			&event.ID,
			&event.OwnerID,
			&event.Type,
			&event.WorkoutID,
			&event.Data,
			&event.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("events [rows scan]: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("events [rows error]: %w", err)
	}

	return events, nil
}

func (r *Repo) Count(ctx context.Context, params EventParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.events.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM gymstats_event`+eventsWhere,
		params.OwnerID,
		params.Type,
		params.From, params.To,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("events count [query row]: %w", err)
	}
	return count, nil
}
