package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/gymstats/apperr"
	"github.com/2beens/gymtracker/internal/gymstats/web"
	"github.com/2beens/gymtracker/internal/middleware"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type usersService interface {
	Register(ctx context.Context, params RegisterParams) (User, string, error)
	Login(ctx context.Context, params LoginParams) (User, string, error)
	Logout(ctx context.Context, token string) error
	Get(ctx context.Context, id int) (User, error)
	UpdateProfile(ctx context.Context, id int, params UpdateProfileParams) (User, error)
	ChangePassword(ctx context.Context, id int, params ChangePasswordParams) error
}

type Handler struct {
	service usersService
}

func NewHandler(service usersService) *Handler {
	return &Handler{
		service: service,
	}
}

type authResponse struct {
	User  Profile `json:"user"`
	Token string  `json:"token,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) {
	// login and register attempts are limited per client ip
	rateLimit := middleware.RateLimit(rateLimiter, "auth", allowedPerMin, metricsManager)

	router.Handle("/api/auth/register", rateLimit(http.HandlerFunc(handler.HandleRegister))).Methods("POST", "OPTIONS").Name("register")
	router.Handle("/api/auth/login", rateLimit(http.HandlerFunc(handler.HandleLogin))).Methods("POST", "OPTIONS").Name("login")
	router.HandleFunc("/api/auth/logout", handler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	router.HandleFunc("/api/auth/me", handler.HandleMe).Methods("GET", "OPTIONS").Name("me")
	router.HandleFunc("/api/auth/profile", handler.HandleUpdateProfile).Methods("PATCH", "OPTIONS").Name("update-profile")
	router.HandleFunc("/api/auth/change-password", handler.HandleChangePassword).Methods("POST", "OPTIONS").Name("change-password")
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	var params RegisterParams
	if !web.DecodeJSON(w, r, &params) {
		return
	}

	u, token, err := handler.service.Register(ctx, params)
	if err != nil {
		apperr.WriteHTTP(w, "register", err)
		return
	}

	pkg.WriteJSON(w, authResponse{User: NewProfile(u), Token: token}, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	var params LoginParams
	if !web.DecodeJSON(w, r, &params) {
		return
	}

	u, token, err := handler.service.Login(ctx, params)
	if errors.Is(err, ErrInvalidCredentials) {
		log.Tracef("failed login attempt for user: %s", params.Username)
		pkg.WriteJSON(w, apperr.Response{
			Error:   "invalid_credentials",
			Message: "invalid credentials",
		}, http.StatusUnauthorized)
		return
	}
	if err != nil {
		apperr.WriteHTTP(w, "login", err)
		return
	}

	pkg.WriteJSON(w, authResponse{User: NewProfile(u), Token: token}, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	if _, ok := web.Actor(w, r); !ok {
		return
	}

	if err := handler.service.Logout(ctx, auth.TokenFromRequest(r)); err != nil {
		apperr.WriteHTTP(w, "logout", err)
		return
	}

	pkg.WriteJSON(w, messageResponse{Message: "logged out"}, http.StatusOK)
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.me")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}

	u, err := handler.service.Get(ctx, actorID)
	if err != nil {
		apperr.WriteHTTP(w, "get current user", err)
		return
	}

	pkg.WriteJSON(w, authResponse{User: NewProfile(u)}, http.StatusOK)
}

func (handler *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.updateProfile")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}

	var params UpdateProfileParams
	if !web.DecodeJSON(w, r, &params) {
		return
	}

	u, err := handler.service.UpdateProfile(ctx, actorID, params)
	if err != nil {
		apperr.WriteHTTP(w, "update profile", err)
		return
	}

	pkg.WriteJSON(w, NewProfile(u), http.StatusOK)
}

func (handler *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.changePassword")
	defer span.End()

	actorID, ok := web.Actor(w, r)
	if !ok {
		return
	}

	var params ChangePasswordParams
	if !web.DecodeJSON(w, r, &params) {
		return
	}

	if err := handler.service.ChangePassword(ctx, actorID, params); err != nil {
		apperr.WriteHTTP(w, "change password", err)
		return
	}

	pkg.WriteJSON(w, messageResponse{Message: "password changed"}, http.StatusOK)
}
