package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats/apperr"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users_test

var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	loginOutcomeSuccess = "success"
	loginOutcomeInvalid = "invalid_credentials"
	loginOutcomeError   = "error"
)

type usersRepo interface {
	Get(ctx context.Context, id int) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Add(ctx context.Context, u User) (User, error)
	UpdateProfile(ctx context.Context, u User) (User, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
}

type sessionStore interface {
	Login(ctx context.Context, userID int, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type Service struct {
	repo           usersRepo
	sessions       sessionStore
	metricsManager *metrics.Manager
	nowFunc        func() time.Time
}

func NewService(repo usersRepo, sessions sessionStore, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		sessions:       sessions,
		metricsManager: metricsManager,
		nowFunc:        time.Now,
	}
}

// Register creates the user and opens a session for it.
func (s *Service) Register(ctx context.Context, params RegisterParams) (_ User, _ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	params, err = params.Validate()
	if err != nil {
		return User{}, "", err
	}

	passwordHash, err := pkg.HashPassword(params.Password)
	if err != nil {
		return User{}, "", fmt.Errorf("hash password: %w", err)
	}

	u, err := s.repo.Add(ctx, User{
		Username:     params.Username,
		Email:        params.Email,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, apperr.ErrUniqueness) {
			return User{}, "", apperr.Uniqueness("username", "username %q is already taken", params.Username)
		}
		return User{}, "", fmt.Errorf("register user: %w", err)
	}

	token, err := s.sessions.Login(ctx, u.ID, s.nowFunc())
	if err != nil {
		return User{}, "", fmt.Errorf("login registered user: %w", err)
	}

	log.Debugf("new user registered: %d [%s]", u.ID, u.Username)
	return u, token, nil
}

func (s *Service) Login(ctx context.Context, params LoginParams) (_ User, _ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if params.Username == "" || params.Password == "" {
		return User{}, "", apperr.Validation("", "username and password are required")
	}

	u, err := s.repo.GetByUsername(ctx, params.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.countLogin(loginOutcomeInvalid)
			return User{}, "", ErrInvalidCredentials
		}
		s.countLogin(loginOutcomeError)
		return User{}, "", fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(params.Password, u.PasswordHash) {
		s.countLogin(loginOutcomeInvalid)
		return User{}, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Login(ctx, u.ID, s.nowFunc())
	if err != nil {
		s.countLogin(loginOutcomeError)
		return User{}, "", fmt.Errorf("open session: %w", err)
	}

	s.countLogin(loginOutcomeSuccess)
	return u, token, nil
}

func (s *Service) Logout(ctx context.Context, token string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	removed, err := s.sessions.Logout(ctx, token)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if !removed {
		log.Debugf("logout: session already gone")
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id int) (User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id int, params UpdateProfileParams) (_ User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u, err := s.Get(ctx, id)
	if err != nil {
		return User{}, err
	}

	u, err = params.Apply(u)
	if err != nil {
		return User{}, err
	}

	updated, err := s.repo.UpdateProfile(ctx, u)
	if err != nil {
		return User{}, fmt.Errorf("update profile: %w", err)
	}
	return updated, nil
}

func (s *Service) ChangePassword(ctx context.Context, id int, params ChangePasswordParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.changePassword")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if !pkg.CheckPasswordHash(params.OldPassword, u.PasswordHash) {
		return apperr.Validation("old_password", "current password is incorrect")
	}
	if err := validatePassword("new_password", params.NewPassword, params.NewPasswordConfirm, "new_password_confirm"); err != nil {
		return err
	}

	passwordHash, err := pkg.HashPassword(params.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.UpdatePassword(ctx, id, passwordHash); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

func (s *Service) countLogin(outcome string) {
	if s.metricsManager != nil {
		s.metricsManager.CounterLogins.WithLabelValues(outcome).Inc()
	}
}
