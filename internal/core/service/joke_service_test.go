package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jokehub/jokes-service/internal/core/domain"
)

type stubJokeRepo struct {
	jokes   []domain.Joke
	deleted []string

	lastTake int64
	lastSkip int64
}

func (r *stubJokeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.jokes)), nil
}

func (r *stubJokeRepo) FindMany(_ context.Context, take, skip int64) ([]domain.Joke, error) {
	r.lastTake, r.lastSkip = take, skip
	if skip >= int64(len(r.jokes)) {
		return nil, nil
	}
	end := skip + take
	if end > int64(len(r.jokes)) {
		end = int64(len(r.jokes))
	}
	return r.jokes[skip:end], nil
}

func (r *stubJokeRepo) FindByID(_ context.Context, id string) (*domain.Joke, error) {
	for i := range r.jokes {
		if r.jokes[i].ID == id {
			clone := r.jokes[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrJokeNotFound
}

func (r *stubJokeRepo) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func threeJokes() []domain.Joke {
	return []domain.Joke{
		{ID: "j1", Name: "Road worker", Content: "I never understood...", JokesterID: "u1"},
		{ID: "j2", Name: "Frisbee", Content: "I was wondering...", JokesterID: "u1"},
		{ID: "j3", Name: "Hippos", Content: "Why don't you find...", JokesterID: "u2"},
	}
}

func TestJokeService_Random(t *testing.T) {
	repo := &stubJokeRepo{jokes: threeJokes()}
	svc := NewJokeService(repo, zerolog.Nop())

	joke, err := svc.Random(context.Background())
	if err != nil {
		t.Fatalf("Random returned error: %v", err)
	}
	if joke == nil {
		t.Fatalf("expected a joke")
	}
	if repo.lastTake != 1 {
		t.Fatalf("Random must take exactly one, took %d", repo.lastTake)
	}
	if repo.lastSkip < 0 || repo.lastSkip >= 3 {
		t.Fatalf("random skip out of range: %d", repo.lastSkip)
	}
}

func TestJokeService_Random_Empty(t *testing.T) {
	svc := NewJokeService(&stubJokeRepo{}, zerolog.Nop())

	_, err := svc.Random(context.Background())
	if !errors.Is(err, domain.ErrJokeNotFound) {
		t.Fatalf("expected ErrJokeNotFound, got %v", err)
	}
}

func TestJokeService_List_Clamps(t *testing.T) {
	repo := &stubJokeRepo{jokes: threeJokes()}
	svc := NewJokeService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background(), 0, -5); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.lastTake != defaultTake || repo.lastSkip != 0 {
		t.Fatalf("expected defaults take=%d skip=0, got take=%d skip=%d", defaultTake, repo.lastTake, repo.lastSkip)
	}

	if _, err := svc.List(context.Background(), 10_000, 1); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.lastTake != maxTake {
		t.Fatalf("expected take clamped to %d, got %d", maxTake, repo.lastTake)
	}
}

func TestJokeService_Delete_Owner(t *testing.T) {
	repo := &stubJokeRepo{jokes: threeJokes()}
	svc := NewJokeService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "j1", "u1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "j1" {
		t.Fatalf("expected j1 deleted, got %v", repo.deleted)
	}
}

func TestJokeService_Delete_NotOwner(t *testing.T) {
	repo := &stubJokeRepo{jokes: threeJokes()}
	svc := NewJokeService(repo, zerolog.Nop())

	err := svc.Delete(context.Background(), "j1", "u2")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("nothing may be deleted on a forbidden request, got %v", repo.deleted)
	}
}

func TestJokeService_Delete_Missing(t *testing.T) {
	repo := &stubJokeRepo{jokes: threeJokes()}
	svc := NewJokeService(repo, zerolog.Nop())

	err := svc.Delete(context.Background(), "nope", "u1")
	if !errors.Is(err, domain.ErrJokeNotFound) {
		t.Fatalf("expected ErrJokeNotFound, got %v", err)
	}
}
