package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jokehub/jokes-service/internal/core/domain"
	"github.com/jokehub/jokes-service/internal/core/ports"
)

// JokeHandler serves the joke read endpoints and the owner-scoped delete.
type JokeHandler struct {
	service ports.JokeService
}

func NewJokeHandler(service ports.JokeService) *JokeHandler {
	return &JokeHandler{service: service}
}

// Random handles GET /jokes/random.
func (h *JokeHandler) Random(c echo.Context) error {
	joke, err := h.service.Random(c.Request().Context())
	if errors.Is(err, domain.ErrJokeNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "No random joke found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJokeResponse(joke))
}

// List handles GET /jokes with optional take/skip query parameters.
func (h *JokeHandler) List(c echo.Context) error {
	var req listJokesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	jokes, err := h.service.List(c.Request().Context(), req.Take, req.Skip)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(jokes))
}

// Get handles GET /jokes/:id, the permalink view.
func (h *JokeHandler) Get(c echo.Context) error {
	joke, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJokeResponse(joke))
}

// Delete handles DELETE /jokes/:id. Requires an authenticated requester, who
// must own the joke.
func (h *JokeHandler) Delete(c echo.Context) error {
	requesterID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), requesterID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
