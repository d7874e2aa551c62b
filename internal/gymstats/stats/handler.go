package stats

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats/apperr"
	"github.com/2beens/gymtracker/internal/gymstats/web"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
)

const defaultHistoryDays = 90

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type exercisesAnalyzer interface {
	ExerciseHistory(ctx context.Context, actorID, exerciseID int, from, to workouts.Date) (*ExerciseHistory, error)
}

type Handler struct {
	analyzer exercisesAnalyzer
	now      func() time.Time
}

func NewHandler(analyzer exercisesAnalyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
		now:      time.Now,
	}
}

func (handler *Handler) SetNowFunc(nowFunc func() time.Time) {
	handler.now = nowFunc
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/exercises/{id:[0-9]+}/history", handler.HandleExerciseHistory).Methods("GET", "OPTIONS").Name("exercise-history")
}

// HandleExerciseHistory serves the per day stats of an exercise. Without
// params it covers the last 90 days, up to and including today.
func (handler *Handler) HandleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.stats.exercise_history")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	id, ok := web.PathID(w, r, "id")
	if !ok {
		return
	}

	to := workouts.NewDate(handler.now())
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := workouts.ParseDate(raw)
		if err != nil {
			apperr.WriteBadRequest(w, "to", err.Error())
			return
		}
		to = parsed
	}

	from := workouts.NewDate(to.AddDate(0, 0, -defaultHistoryDays))
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := workouts.ParseDate(raw)
		if err != nil {
			apperr.WriteBadRequest(w, "from", err.Error())
			return
		}
		from = parsed
	}

	history, err := handler.analyzer.ExerciseHistory(ctx, actorID, id, from, to)
	if err != nil {
		apperr.WriteHTTP(w, "exercise history", err)
		return
	}

	pkg.WriteJSON(w, history, http.StatusOK)
}
