// Package session mints and verifies the signed session cookie that carries
// user identity between requests. The cookie is the only session state: there
// is no server-side table, so invalidation is limited to clearing the cookie.
package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the session cookie issued on successful login.
const CookieName = "RJ_session"

// DefaultTTL bounds session validity when no explicit TTL is configured.
const DefaultTTL = 7 * 24 * time.Hour

// Manager signs and verifies session cookies with a server-held secret. The
// secret is loaded once at process start and immutable afterwards; signing
// and verification are pure computations safe for concurrent use.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewManager builds a Manager. secure controls the cookie Secure flag and
// should be true everywhere except local development.
func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl, secure: secure}
}

type sessionClaims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

// Issue mints a session cookie bound to userID, HS256-signed, with iat/exp
// set from the configured TTL.
func (m *Manager) Issue(userID string) (*http.Cookie, error) {
	now := time.Now()
	claims := sessionClaims{
		UID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// UserID reconstructs the identity bound to the request's session cookie.
// A missing, malformed, expired, or tampered cookie yields no identity;
// verification fails closed and never surfaces an error.
func (m *Manager) UserID(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid || claims.UID == "" {
		return "", false
	}
	return claims.UID, true
}

// Clear returns a cookie that invalidates the session: empty value,
// immediate expiry.
func (m *Manager) Clear() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
