package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoplite/store-api/internal/api/metrics"
	"github.com/shoplite/store-api/internal/core/domain"
	"github.com/shoplite/store-api/internal/core/ports"
	"github.com/shoplite/store-api/internal/core/token"
)

// LoginLimiter abstracts the failed-attempt counter (Redis). All limiter
// errors are non-fatal: when the limiter is unreachable, logins proceed.
type LoginLimiter interface {
	TooMany(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuthService implements registration and login for both roles.
type AuthService struct {
	users    ports.UserRepository
	admins   ports.UserRepository
	codec    *token.Codec
	limiter  LoginLimiter
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	admins ports.UserRepository,
	codec *token.Codec,
	limiter LoginLimiter,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		admins:   admins,
		codec:    codec,
		limiter:  limiter,
		activity: activity,
		log:      log,
	}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	exists, err := s.users.Exists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, username, "register")
	s.log.Info().Str("username", username).Msg("user registered")
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string, persistent bool) (*ports.LoginResult, error) {
	return s.login(ctx, s.users, domain.RoleUser, username, password, persistent)
}

func (s *AuthService) AdminLogin(ctx context.Context, username, password string, persistent bool) (*ports.LoginResult, error) {
	return s.login(ctx, s.admins, domain.RoleAdmin, username, password, persistent)
}

func (s *AuthService) login(ctx context.Context, repo ports.UserRepository, role, username, password string, persistent bool) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	tooMany, err := s.limiter.TooMany(ctx, username)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login limiter check failed, proceeding")
	} else if tooMany {
		metrics.LoginsTotal.WithLabelValues(role, "rate_limited").Inc()
		return nil, domain.ErrTooManyAttempts
	}

	user, err := repo.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			// Same failure path as a bad password so usernames can't be probed.
			s.noteFailure(ctx, role, username)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.noteFailure(ctx, role, username)
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login limiter reset failed")
	}

	signed, expiresAt, err := s.codec.Issue(user.Username, role, persistent)
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, username, "login")
	metrics.LoginsTotal.WithLabelValues(role, "success").Inc()
	s.log.Info().Str("username", username).Str("role", role).Bool("persistent", persistent).Msg("login successful")

	return &ports.LoginResult{Token: signed, ExpiresAt: expiresAt, User: user}, nil
}

func (s *AuthService) Logout(ctx context.Context, username string) {
	s.recordActivity(ctx, username, "logout")
	s.log.Info().Str("username", username).Msg("logout")
}

func (s *AuthService) noteFailure(ctx context.Context, role, username string) {
	metrics.LoginsTotal.WithLabelValues(role, "invalid_credentials").Inc()
	if err := s.limiter.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login limiter record failed")
	}
}

func (s *AuthService) recordActivity(ctx context.Context, username, activity string) {
	if err := s.activity.Append(ctx, username, activity); err != nil {
		metrics.ActivityAppendFailuresTotal.Inc()
		s.log.Warn().Err(err).Str("username", username).Str("activity", activity).Msg("activity append failed")
	}
}
