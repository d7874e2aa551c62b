package events

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats/apperr"
	"github.com/2beens/gymtracker/internal/gymstats/web"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=events_test

type service interface {
	List(ctx context.Context, params ListParams) ([]Event, int, error)
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/events", h.HandleList).Methods("GET", "OPTIONS").Name("list-events")
}

// HandleList serves the actor's activity feed. Optional filters: type, from, to (RFC 3339).
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.events.list")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	page, ok := web.Page(w, r, pkg.StandardPageSizing)
	if !ok {
		return
	}

	params := ListParams{
		EventParams: EventParams{OwnerID: actorID},
		Limit:       page.Size,
		Offset:      page.Offset(),
	}

	if typeParam := r.URL.Query().Get("type"); typeParam != "" {
		eventType := EventType(typeParam)
		if !eventType.IsValid() {
			apperr.WriteBadRequest(w, "type", "invalid event type")
			return
		}
		params.Type = &eventType
	}

	for _, bound := range []struct {
		name string
		dst  **time.Time
	}{
		{"from", &params.From},
		{"to", &params.To},
	} {
		raw := r.URL.Query().Get(bound.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			apperr.WriteBadRequest(w, bound.name, "invalid "+bound.name+" timestamp")
			return
		}
		*bound.dst = &t
	}

	events, count, err := h.service.List(ctx, params)
	if err != nil {
		apperr.WriteHTTP(w, "list events", err)
		return
	}

	pkg.WriteJSON(w, pkg.NewPageResponse(events, count, page), http.StatusOK)
}
