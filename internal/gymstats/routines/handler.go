package routines

import (
	"context"
	"net/http"

	"github.com/2beens/gymtracker/internal/gymstats/apperr"
	"github.com/2beens/gymtracker/internal/gymstats/web"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=routines_test

type routinesService interface {
	List(ctx context.Context, actorID, limit, offset int) ([]Routine, int, error)
	Get(ctx context.Context, actorID, id int) (Detail, error)
	Create(ctx context.Context, actorID int, params CreateParams) (Detail, error)
	Update(ctx context.Context, actorID, id int, params UpdateParams) (Detail, error)
	Delete(ctx context.Context, actorID, id int) error
	Activate(ctx context.Context, actorID, id int) (Detail, error)
	AddExercise(ctx context.Context, actorID, id int, params AddExerciseParams) (Detail, error)
	UpdateExercise(ctx context.Context, actorID, id, routineExerciseID int, params UpdateExerciseParams) (Detail, error)
	RemoveExercise(ctx context.Context, actorID, id, routineExerciseID int) (Detail, error)
	StartWorkout(ctx context.Context, actorID, id int, params StartWorkoutParams) (workouts.Detail, error)
}

type Handler struct {
	service routinesService
}

func NewHandler(service routinesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	const (
		routinePath  = "/api/routines/{id:[0-9]+}"
		exercisePath = routinePath + "/exercises/{reid:[0-9]+}"
	)
	router.HandleFunc("/api/routines", handler.HandleList).Methods("GET", "OPTIONS").Name("list-routines")
	router.HandleFunc("/api/routines", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-routine")
	router.HandleFunc(routinePath, handler.HandleGet).Methods("GET", "OPTIONS").Name("get-routine")
	router.HandleFunc(routinePath, handler.HandleUpdate).Methods("PATCH", "OPTIONS").Name("update-routine")
	router.HandleFunc(routinePath, handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-routine")
	router.HandleFunc(routinePath+"/activate", handler.HandleActivate).Methods("POST", "OPTIONS").Name("activate-routine")
	router.HandleFunc(routinePath+"/start-workout", handler.HandleStartWorkout).Methods("POST", "OPTIONS").Name("start-workout")
	router.HandleFunc(routinePath+"/exercises", handler.HandleAddExercise).Methods("POST", "OPTIONS").Name("new-routine-exercise")
	router.HandleFunc(exercisePath, handler.HandleUpdateExercise).Methods("PATCH", "OPTIONS").Name("update-routine-exercise")
	router.HandleFunc(exercisePath, handler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("remove-routine-exercise")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.routines.list")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	page, ok := web.Page(w, r, pkg.StandardPageSizing)
	if !ok {
		return
	}

	routines, count, err := handler.service.List(ctx, actorID, page.Size, page.Offset())
	if err != nil {
		apperr.WriteHTTP(w, "list routines", err)
		return
	}

	pkg.WriteJSON(w, pkg.NewPageResponse(routines, count, page), http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.routines.get")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	id, ok := web.PathID(w, r, "id")
	if !ok {
		return
	}

	detail, err := handler.service.Get(ctx, actorID, id)
	if err != nil {
		apperr.WriteHTTP(w, "get routine", err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusOK)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.routines.new")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}

	var params CreateParams
	if !web.DecodeJSON(w, r, &params) {
		return
	}

	detail, err := handler.service.Create(ctx, actorID, params)
	if err != nil {
		apperr.WriteHTTP(w, "create routine", err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.routines.update")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	id, ok := web.PathID(w, r, "id")
	if !ok {
		return
	}

	var params UpdateParams
	if !web.DecodeJSON(w, r, &params) {
		return
	}

	detail, err := handler.service.Update(ctx, actorID, id, params)
	if err != nil {
		apperr.WriteHTTP(w, "update routine", err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.routines.delete")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	id, ok := web.PathID(w, r, "id")
	if !ok {
		return
	}

	if err := handler.service.Delete(ctx, actorID, id); err != nil {
		apperr.WriteHTTP(w, "delete routine", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.routines.activate")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	id, ok := web.PathID(w, r, "id")
	if !ok {
		return
	}

	detail, err := handler.service.Activate(ctx, actorID, id)
	if err != nil {
		apperr.WriteHTTP(w, "activate routine", err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusOK)
}

// HandleStartWorkout accepts an optional body with date and notes.
func (handler *Handler) HandleStartWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.routines.start_workout")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	id, ok := web.PathID(w, r, "id")
	if !ok {
		return
	}

	var params StartWorkoutParams
	if r.ContentLength != 0 && !web.DecodeJSON(w, r, &params) {
		return
	}

	detail, err := handler.service.StartWorkout(ctx, actorID, id, params)
	if err != nil {
		apperr.WriteHTTP(w, "start workout", err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusCreated)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.routines.new_exercise")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	id, ok := web.PathID(w, r, "id")
	if !ok {
		return
	}

	var params AddExerciseParams
	if !web.DecodeJSON(w, r, &params) {
		return
	}

	detail, err := handler.service.AddExercise(ctx, actorID, id, params)
	if err != nil {
		apperr.WriteHTTP(w, "add routine exercise", err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusCreated)
}

func (handler *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.routines.update_exercise")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	id, ok := web.PathID(w, r, "id")
	if !ok {
		return
	}
	routineExerciseID, ok := web.PathID(w, r, "reid")
	if !ok {
		return
	}

	var params UpdateExerciseParams
	if !web.DecodeJSON(w, r, &params) {
		return
	}

	detail, err := handler.service.UpdateExercise(ctx, actorID, id, routineExerciseID, params)
	if err != nil {
		apperr.WriteHTTP(w, "update routine exercise", err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusOK)
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.routines.remove_exercise")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	id, ok := web.PathID(w, r, "id")
	if !ok {
		return
	}
	routineExerciseID, ok := web.PathID(w, r, "reid")
	if !ok {
		return
	}

	detail, err := handler.service.RemoveExercise(ctx, actorID, id, routineExerciseID)
	if err != nil {
		apperr.WriteHTTP(w, "remove routine exercise", err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusOK)
}
