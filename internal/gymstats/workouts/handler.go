package workouts

import (
	"context"
	"net/http"

	"github.com/2beens/gymtracker/internal/gymstats/apperr"
	"github.com/2beens/gymtracker/internal/gymstats/web"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	List(ctx context.Context, actorID, limit, offset int) ([]Workout, int, error)
	Get(ctx context.Context, actorID, id int) (Detail, error)
	Create(ctx context.Context, actorID int, params CreateParams) (Detail, error)
	Update(ctx context.Context, actorID, id int, params UpdateParams) (Detail, error)
	Delete(ctx context.Context, actorID, id int) error
	Finish(ctx context.Context, actorID, id int) (Detail, error)
	AddExercise(ctx context.Context, actorID, id int, params AddExerciseParams) (Detail, error)
	RemoveExercise(ctx context.Context, actorID, id, workoutExerciseID int) (Detail, error)
	AddSet(ctx context.Context, actorID, id, workoutExerciseID int, params SetParams) (Detail, error)
	UpdateSet(ctx context.Context, actorID, id, workoutExerciseID, setID int, params SetUpdateParams) (Detail, error)
	DeleteSet(ctx context.Context, actorID, id, workoutExerciseID, setID int) (Detail, error)
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	const (
		workoutPath  = "/api/workouts/{id:[0-9]+}"
		exercisePath = workoutPath + "/exercises/{weid:[0-9]+}"
		setPath      = exercisePath + "/sets/{sid:[0-9]+}"
	)
	router.HandleFunc("/api/workouts", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	router.HandleFunc("/api/workouts", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-workout")
	router.HandleFunc(workoutPath, handler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	router.HandleFunc(workoutPath, handler.HandleUpdate).Methods("PATCH", "OPTIONS").Name("update-workout")
	router.HandleFunc(workoutPath, handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	router.HandleFunc(workoutPath+"/finish", handler.HandleFinish).Methods("POST", "OPTIONS").Name("finish-workout")
	router.HandleFunc(workoutPath+"/exercises", handler.HandleAddExercise).Methods("POST", "OPTIONS").Name("new-workout-exercise")
	router.HandleFunc(exercisePath, handler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("remove-workout-exercise")
	router.HandleFunc(exercisePath+"/sets", handler.HandleAddSet).Methods("POST", "OPTIONS").Name("new-set")
	router.HandleFunc(setPath, handler.HandleUpdateSet).Methods("PATCH", "OPTIONS").Name("update-set")
	router.HandleFunc(setPath, handler.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-set")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.workouts.list")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	page, ok := web.Page(w, r, pkg.LargePageSizing)
	if !ok {
		return
	}

	workouts, count, err := handler.service.List(ctx, actorID, page.Size, page.Offset())
	if err != nil {
		apperr.WriteHTTP(w, "list workouts", err)
		return
	}

	pkg.WriteJSON(w, pkg.NewPageResponse(workouts, count, page), http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.workouts.get")
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
		apperr.WriteHTTP(w, "get workout", err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusOK)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.workouts.new")
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
		apperr.WriteHTTP(w, "create workout", err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.workouts.update")
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
		apperr.WriteHTTP(w, "update workout", err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.workouts.delete")
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
		apperr.WriteHTTP(w, "delete workout", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.workouts.finish")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	id, ok := web.PathID(w, r, "id")
	if !ok {
		return
	}

	detail, err := handler.service.Finish(ctx, actorID, id)
	if err != nil {
		apperr.WriteHTTP(w, "finish workout", err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.workouts.new_exercise")
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
		apperr.WriteHTTP(w, "add workout exercise", err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusCreated)
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.workouts.remove_exercise")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	id, ok := web.PathID(w, r, "id")
	if !ok {
		return
	}
	workoutExerciseID, ok := web.PathID(w, r, "weid")
	if !ok {
		return
	}

	detail, err := handler.service.RemoveExercise(ctx, actorID, id, workoutExerciseID)
	if err != nil {
		apperr.WriteHTTP(w, "remove workout exercise", err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusOK)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.workouts.new_set")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	id, ok := web.PathID(w, r, "id")
	if !ok {
		return
	}
	workoutExerciseID, ok := web.PathID(w, r, "weid")
	if !ok {
		return
	}

	var params SetParams
	if !web.DecodeJSON(w, r, &params) {
		return
	}

	detail, err := handler.service.AddSet(ctx, actorID, id, workoutExerciseID, params)
	if err != nil {
		apperr.WriteHTTP(w, "add set", err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusCreated)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.workouts.update_set")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	id, ok := web.PathID(w, r, "id")
	if !ok {
		return
	}
	workoutExerciseID, ok := web.PathID(w, r, "weid")
	if !ok {
		return
	}
	setID, ok := web.PathID(w, r, "sid")
	if !ok {
		return
	}

	var params SetUpdateParams
	if !web.DecodeJSON(w, r, &params) {
		return
	}

	detail, err := handler.service.UpdateSet(ctx, actorID, id, workoutExerciseID, setID, params)
	if err != nil {
		apperr.WriteHTTP(w, "update set", err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusOK)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.workouts.delete_set")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	id, ok := web.PathID(w, r, "id")
	if !ok {
		return
	}
	workoutExerciseID, ok := web.PathID(w, r, "weid")
	if !ok {
		return
	}
	setID, ok := web.PathID(w, r, "sid")
	if !ok {
		return
	}

	detail, err := handler.service.DeleteSet(ctx, actorID, id, workoutExerciseID, setID)
	if err != nil {
		apperr.WriteHTTP(w, "delete set", err)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusOK)
}
