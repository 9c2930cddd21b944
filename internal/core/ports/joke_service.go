package ports

import (
	"context"

	"github.com/jokehub/jokes-service/internal/core/domain"
)

// JokeService exposes the read/display glue plus owner-scoped deletion.
type JokeService interface {
	// Random returns one uniformly chosen joke, or domain.ErrJokeNotFound
	// when the store is empty.
	Random(ctx context.Context) (*domain.Joke, error)

	List(ctx context.Context, take, skip int64) ([]domain.Joke, error)

	Get(ctx context.Context, id string) (*domain.Joke, error)

	// Delete removes a joke on behalf of requesterID. A requester who does
	// not own the joke gets domain.ErrForbidden.
	Delete(ctx context.Context, id, requesterID string) error
}
