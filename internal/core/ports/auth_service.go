package ports

import (
	"context"

	"github.com/jokehub/jokes-service/internal/core/domain"
)

// AuthService verifies credentials and guards registration.
type AuthService interface {
	// Verify authenticates a username/password pair. It returns
	// domain.ErrInvalidCredentials for an unknown username and for a wrong
	// password alike; callers must not be able to tell the two apart.
	Verify(ctx context.Context, username, password string) (*domain.User, error)

	// Register checks username availability. It returns domain.ErrUserExists
	// when the name is taken and domain.ErrNotImplemented otherwise: account
	// creation is an explicitly unfinished feature.
	Register(ctx context.Context, username, password string) (*domain.User, error)
}
