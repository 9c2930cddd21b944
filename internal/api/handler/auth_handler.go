package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jokehub/jokes-service/internal/api/metrics"
	"github.com/jokehub/jokes-service/internal/core/domain"
	"github.com/jokehub/jokes-service/internal/core/ports"
	"github.com/jokehub/jokes-service/internal/core/service"
	"github.com/jokehub/jokes-service/internal/session"
)

// AuditSink is the interface the handler uses to enqueue auth events onto the
// diagnostic trail without blocking the response.
type AuditSink interface {
	Enqueue(event domain.AuthEvent)
}

// AuthHandler orchestrates one login/register form submission end-to-end:
// field extraction, shape validation, credential verification, session
// minting, safe redirect.
type AuthHandler struct {
	auth      ports.AuthService
	sessions  *session.Manager
	redirects *session.RedirectPolicy
	audit     AuditSink
}

func NewAuthHandler(auth ports.AuthService, sessions *session.Manager, redirects *session.RedirectPolicy, audit AuditSink) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, redirects: redirects, audit: audit}
}

// badRequest renders the structured 400 body the form re-renders from.
func badRequest(c echo.Context, data actionData) error {
	return c.JSON(http.StatusBadRequest, data)
}

// Submit handles POST /login.
//
// On success the response is a 302 to the validated redirect destination
// carrying the session cookie. Every failure is a 400 with actionData; no
// failure path ever sets a cookie.
func (h *AuthHandler) Submit(c echo.Context) error {
	req := c.Request()
	if err := req.ParseForm(); err != nil {
		return badRequest(c, actionData{FormError: msgMalformedForm})
	}

	form := req.PostForm
	if !form.Has("loginType") || !form.Has("username") || !form.Has("password") {
		return badRequest(c, actionData{FormError: msgMalformedForm})
	}

	loginType := form.Get("loginType")
	username := form.Get("username")
	password := form.Get("password")
	redirectTo := h.redirects.Validate(form.Get("redirectTo"))
	if raw := form.Get("redirectTo"); raw != "" && raw != redirectTo {
		metrics.RedirectsRejectedTotal.Inc()
	}

	fields := &formFields{LoginType: loginType, Username: username}

	// Both checks always run so both errors can be reported together.
	fe := fieldErrors{
		Username: service.CheckUsername(username),
		Password: service.CheckPassword(password),
	}
	if !fe.empty() {
		return badRequest(c, actionData{FieldErrors: &fe, Fields: fields})
	}

	ctx := req.Context()
	switch loginType {
	case "login":
		user, err := h.auth.Verify(ctx, username, password)
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			h.record(c, domain.AuthEvent{Username: username, Kind: domain.AuthLoginFailure, Reason: "invalid_credentials"})
			return badRequest(c, actionData{Fields: fields, FormError: msgBadCombination})
		}
		if err != nil {
			return err
		}

		cookie, err := h.sessions.Issue(user.ID)
		if err != nil {
			return err
		}
		metrics.LoginsTotal.WithLabelValues("success").Inc()
		metrics.SessionsIssuedTotal.Inc()
		h.record(c, domain.AuthEvent{Username: username, Kind: domain.AuthLoginSuccess})

		c.SetCookie(cookie)
		return c.Redirect(http.StatusFound, redirectTo)

	case "register":
		_, err := h.auth.Register(ctx, username, password)
		switch {
		case errors.Is(err, domain.ErrUserExists):
			h.record(c, domain.AuthEvent{Username: username, Kind: domain.AuthRegisterAttempt, Reason: "username_taken"})
			return badRequest(c, actionData{Fields: fields, FormError: fmt.Sprintf(msgUserExistsFmt, username)})
		case errors.Is(err, domain.ErrNotImplemented):
			h.record(c, domain.AuthEvent{Username: username, Kind: domain.AuthRegisterAttempt, Reason: "not_implemented"})
			return badRequest(c, actionData{Fields: fields, FormError: msgNotImplemented})
		default:
			return err
		}

	default:
		return badRequest(c, actionData{Fields: fields, FormError: msgInvalidLoginType})
	}
}

// Logout handles POST /logout: clears the session cookie and redirects to a
// public destination. There is no server-side state to revoke.
func (h *AuthHandler) Logout(c echo.Context) error {
	if uid, ok := h.sessions.UserID(c.Request()); ok {
		h.record(c, domain.AuthEvent{Username: uid, Kind: domain.AuthLogout})
	}
	c.SetCookie(h.sessions.Clear())
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) record(c echo.Context, event domain.AuthEvent) {
	if h.audit == nil {
		return
	}
	event.RequestID = c.Response().Header().Get(echo.HeaderXRequestID)
	event.At = time.Now().UTC()
	h.audit.Enqueue(event)
}
