package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the user id injected by the session middleware. An empty
// id means the request carried no valid session cookie, so reject with 401
// before any service call.
func ctxUserID(c echo.Context) (string, error) {
	uid, _ := c.Get("user_id").(string)
	if uid == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return uid, nil
}
