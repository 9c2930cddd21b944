package ports

import (
	"context"

	"github.com/jokehub/jokes-service/internal/core/domain"
)

// JokeRepository mirrors the collaborator record store the read endpoints
// are glue over: count, windowed findMany, findFirst-by-id, plus the one
// write the owner-delete flow needs.
type JokeRepository interface {
	Count(ctx context.Context) (int64, error)

	// FindMany returns up to take jokes, skipping skip, ordered by creation time.
	FindMany(ctx context.Context, take, skip int64) ([]domain.Joke, error)

	// FindByID returns the joke with the given id, or domain.ErrJokeNotFound.
	FindByID(ctx context.Context, id string) (*domain.Joke, error)

	// Delete removes the joke with the given id, or domain.ErrJokeNotFound.
	Delete(ctx context.Context, id string) error
}
