package exercises

import (
	"context"
	"net/http"

	"github.com/2beens/gymtracker/internal/gymstats/apperr"
	"github.com/2beens/gymtracker/internal/gymstats/web"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesService interface {
	List(ctx context.Context, actorID int, params ListParams) ([]ListItem, int, error)
	Get(ctx context.Context, actorID, id int) (Exercise, error)
	Create(ctx context.Context, actorID int, params CreateParams) (Exercise, error)
	Update(ctx context.Context, actorID, id int, params UpdateParams) (Exercise, error)
	Delete(ctx context.Context, actorID, id int) error
}

type Handler struct {
	service exercisesService
}

func NewHandler(service exercisesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/exercises", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	router.HandleFunc("/api/exercises", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-exercise")
	router.HandleFunc("/api/exercises/muscle-groups", handler.HandleMuscleGroups).Methods("GET", "OPTIONS").Name("muscle-groups")
	router.HandleFunc("/api/exercises/{id:[0-9]+}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	router.HandleFunc("/api/exercises/{id:[0-9]+}", handler.HandleUpdate).Methods("PATCH", "OPTIONS").Name("update-exercise")
	router.HandleFunc("/api/exercises/{id:[0-9]+}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.exercises.list")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	page, ok := web.Page(w, r, pkg.StandardPageSizing)
	if !ok {
		return
	}
	isGlobal, err := web.OptionalBool(r, "is_global")
	if err != nil {
		apperr.WriteBadRequest(w, "is_global", err.Error())
		return
	}

	items, count, err := handler.service.List(ctx, actorID, ListParams{
		Search:      r.URL.Query().Get("search"),
		MuscleGroup: r.URL.Query().Get("muscle_group"),
		IsGlobal:    isGlobal,
		Limit:       page.Size,
		Offset:      page.Offset(),
	})
	if err != nil {
		apperr.WriteHTTP(w, "list exercises", err)
		return
	}

	pkg.WriteJSON(w, pkg.NewPageResponse(items, count, page), http.StatusOK)
}

func (handler *Handler) HandleMuscleGroups(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, MuscleGroupInfos(), http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.exercises.get")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}
	id, ok := web.PathID(w, r, "id")
	if !ok {
		return
	}

	exercise, err := handler.service.Get(ctx, actorID, id)
	if err != nil {
		apperr.WriteHTTP(w, "get exercise", err)
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusOK)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.exercises.new")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}

	var params CreateParams
	if !web.DecodeJSON(w, r, &params) {
		return
	}

	exercise, err := handler.service.Create(ctx, actorID, params)
	if err != nil {
		apperr.WriteHTTP(w, "create exercise", err)
		return
	}

	log.Debugf("new exercise added: %d [%s]", exercise.ID, exercise.Name)
	pkg.WriteJSON(w, exercise, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.exercises.update")
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

	exercise, err := handler.service.Update(ctx, actorID, id, params)
	if err != nil {
		apperr.WriteHTTP(w, "update exercise", err)
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.exercises.delete")
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
		apperr.WriteHTTP(w, "delete exercise", err)
		return
	}

	log.Debugf("exercise %d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
