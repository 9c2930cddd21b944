package domain

import "time"

// AuthEventKind classifies entries in the authentication audit trail.
type AuthEventKind string

const (
	AuthLoginSuccess    AuthEventKind = "login_success"
	AuthLoginFailure    AuthEventKind = "login_failure"
	AuthLogout          AuthEventKind = "logout"
	AuthRegisterAttempt AuthEventKind = "register_attempt"
)

// AuthEvent records one authentication decision for the internal diagnostic
// trail. Reason carries the detailed cause that the HTTP response deliberately
// omits (e.g. "unknown_user" vs "bad_password").
type AuthEvent struct {
	Username  string
	Kind      AuthEventKind
	Reason    string
	RequestID string
	At        time.Time
}
