package handler

import (
	"time"

	"github.com/jokehub/jokes-service/internal/core/domain"
)

type listJokesRequest struct {
	Take int64 `query:"take" validate:"omitempty,min=1,max=100"`
	Skip int64 `query:"skip" validate:"omitempty,min=0"`
}

type jokeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type listJokesResponse struct {
	Jokes []jokeResponse `json:"jokes"`
}

func toJokeResponse(j *domain.Joke) jokeResponse {
	return jokeResponse{
		ID:        j.ID,
		Name:      j.Name,
		Content:   j.Content,
		CreatedAt: j.CreatedAt.UTC(),
	}
}

func toListResponse(jokes []domain.Joke) listJokesResponse {
	out := listJokesResponse{Jokes: make([]jokeResponse, 0, len(jokes))}
	for i := range jokes {
		out.Jokes = append(out.Jokes, toJokeResponse(&jokes[i]))
	}
	return out
}
