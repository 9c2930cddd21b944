package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jokehub/jokes-service/internal/session"
)

// CurrentUser resolves the session cookie and, when it verifies, stores the
// bound user id in the request context under "user_id". Anonymous requests
// pass through untouched: a missing or invalid cookie denies identity, never
// the request itself.
func CurrentUser(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if uid, ok := sessions.UserID(c.Request()); ok {
				c.Set("user_id", uid)
			}
			return next(c)
		}
	}
}

// RequireUser rejects requests that carry no authenticated identity. Mount it
// after CurrentUser on routes that need a logged-in user.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, _ := c.Get("user_id").(string)
			if uid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}
