package service

import (
	"context"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/jokehub/jokes-service/internal/core/domain"
	"github.com/jokehub/jokes-service/internal/core/ports"
)

const (
	defaultTake = 20
	maxTake     = 100
)

// JokeService is thin read/display glue over the joke store, plus the
// owner-scoped delete that consumes the session subsystem's identity output.
type JokeService struct {
	repo   ports.JokeRepository
	logger zerolog.Logger
}

func NewJokeService(repo ports.JokeRepository, logger zerolog.Logger) *JokeService {
	return &JokeService{repo: repo, logger: logger}
}

// Random picks one joke uniformly: count the store, skip a random row, take one.
func (s *JokeService) Random(ctx context.Context) (*domain.Joke, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domain.ErrJokeNotFound
	}

	jokes, err := s.repo.FindMany(ctx, 1, rand.Int64N(count))
	if err != nil {
		return nil, err
	}
	if len(jokes) == 0 {
		return nil, domain.ErrJokeNotFound
	}
	return &jokes[0], nil
}

// List returns a window of jokes. take is clamped to [1, maxTake] with a
// default of defaultTake; a negative skip reads from the start.
func (s *JokeService) List(ctx context.Context, take, skip int64) ([]domain.Joke, error) {
	if take <= 0 {
		take = defaultTake
	}
	if take > maxTake {
		take = maxTake
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.FindMany(ctx, take, skip)
}

func (s *JokeService) Get(ctx context.Context, id string) (*domain.Joke, error) {
	return s.repo.FindByID(ctx, id)
}

// Delete removes a joke on behalf of requesterID. Only the owner may delete.
func (s *JokeService) Delete(ctx context.Context, id, requesterID string) error {
	joke, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if joke.JokesterID != requesterID {
		s.logger.Info().
			Str("joke_id", id).
			Str("requester_id", requesterID).
			Msg("delete rejected: requester is not the owner")
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
