package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jokehub/jokes-service/internal/core/domain"
	"github.com/jokehub/jokes-service/internal/core/ports"
)

// LoginLimiter abstracts the failed-attempt counter (Redis).
type LoginLimiter interface {
	TooManyFailures(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// dummyHash is a bcrypt hash compared against when the username does not
// exist, so the unknown-user path costs the same as a wrong password.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService verifies credentials against the user store. It never creates
// sessions itself; that is the session manager's job.
type AuthService struct {
	repo    ports.UserRepository
	limiter LoginLimiter
	logger  zerolog.Logger
}

// NewAuthService builds an AuthService. limiter may be nil, in which case
// failed attempts are not throttled.
func NewAuthService(repo ports.UserRepository, limiter LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, limiter: limiter, logger: logger}
}

// Verify authenticates a username/password pair. Unknown usernames and wrong
// passwords both come back as domain.ErrInvalidCredentials; the detailed
// cause goes to the log only. Store faults propagate unchanged so the caller
// can surface them as 5xx rather than a validation failure.
func (s *AuthService) Verify(ctx context.Context, username, password string) (*domain.User, error) {
	if s.limiter != nil {
		locked, err := s.limiter.TooManyFailures(ctx, username)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login limiter check failed, proceeding")
		} else if locked {
			s.logger.Info().Str("username", username).Msg("login throttled")
			return nil, domain.ErrInvalidCredentials
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn a hash comparison anyway to keep timing uniform.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			s.logger.Debug().Str("username", username).Str("reason", "unknown_user").Msg("login rejected")
			s.recordFailure(ctx, username)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Debug().Str("username", username).Str("reason", "bad_password").Msg("login rejected")
		s.recordFailure(ctx, username)
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, username); err != nil {
			s.logger.Warn().Err(err).Msg("login limiter reset failed")
		}
	}
	return user, nil
}

// Register checks username availability. Completing registration (hash the
// password, create the user, mint a session) is an explicitly unfinished
// feature, so an available name still comes back domain.ErrNotImplemented.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUserExists
	}
	return nil, domain.ErrNotImplemented
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, username); err != nil {
		s.logger.Warn().Err(err).Msg("login limiter record failed")
	}
}
