package ports

import (
	"context"

	"github.com/jokehub/jokes-service/internal/core/domain"
)

// UserRepository defines the read-only user store the auth flow consumes.
type UserRepository interface {
	// FindByUsername returns the user with the exact username, or
	// domain.ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// ExistsByUsername reports whether a user with the username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
