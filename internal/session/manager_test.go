package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func requestWithCookie(value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: value})
	return req
}

func TestManager_IssueAndUserID_Roundtrip(t *testing.T) {
	m := NewManager(testSecret, time.Hour, false)

	cookie, err := m.Issue("user_42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if cookie.Name != CookieName {
		t.Fatalf("unexpected cookie name: %s", cookie.Name)
	}
	if !cookie.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected SameSite=Lax, got %v", cookie.SameSite)
	}
	if cookie.MaxAge != int(time.Hour.Seconds()) {
		t.Fatalf("unexpected MaxAge: %d", cookie.MaxAge)
	}

	uid, ok := m.UserID(requestWithCookie(cookie.Value))
	if !ok {
		t.Fatalf("expected identity from freshly issued cookie")
	}
	if uid != "user_42" {
		t.Fatalf("expected user_42, got %s", uid)
	}
}

func TestManager_UserID_MissingCookie(t *testing.T) {
	m := NewManager(testSecret, time.Hour, false)

	if _, ok := m.UserID(httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Fatalf("expected no identity without a cookie")
	}
}

func TestManager_UserID_TamperedSignature(t *testing.T) {
	m := NewManager(testSecret, time.Hour, false)

	cookie, err := m.Issue("user_42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip one byte in the signature segment.
	parts := strings.Split(cookie.Value, ".")
	if len(parts) != 3 {
		t.Fatalf("expected a three-part token, got %d parts", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, ok := m.UserID(requestWithCookie(tampered)); ok {
		t.Fatalf("tampered cookie must be rejected")
	}
}

func TestManager_UserID_WrongSecret(t *testing.T) {
	other := NewManager("another-secret", time.Hour, false)
	cookie, err := other.Issue("user_42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	m := NewManager(testSecret, time.Hour, false)
	if _, ok := m.UserID(requestWithCookie(cookie.Value)); ok {
		t.Fatalf("cookie signed with a different secret must be rejected")
	}
}

func TestManager_UserID_Expired(t *testing.T) {
	m := NewManager(testSecret, time.Hour, false)

	claims := jwt.MapClaims{
		"uid": "user_42",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, ok := m.UserID(requestWithCookie(token)); ok {
		t.Fatalf("expired cookie must be rejected")
	}
}

func TestManager_UserID_Malformed(t *testing.T) {
	m := NewManager(testSecret, time.Hour, false)

	for _, value := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, ok := m.UserID(requestWithCookie(value)); ok {
			t.Fatalf("malformed cookie %q must be rejected", value)
		}
	}
}

func TestManager_UserID_MissingUID(t *testing.T) {
	m := NewManager(testSecret, time.Hour, false)

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, ok := m.UserID(requestWithCookie(token)); ok {
		t.Fatalf("token without uid must yield no identity")
	}
}

func TestManager_Clear(t *testing.T) {
	m := NewManager(testSecret, time.Hour, false)

	cookie := m.Clear()
	if cookie.Value != "" {
		t.Fatalf("cleared cookie must have an empty value")
	}
	if cookie.MaxAge != -1 {
		t.Fatalf("cleared cookie must expire immediately, got MaxAge %d", cookie.MaxAge)
	}
	if cookie.Name != CookieName {
		t.Fatalf("unexpected cookie name: %s", cookie.Name)
	}
}

func TestNewManager_DefaultTTL(t *testing.T) {
	m := NewManager(testSecret, 0, false)

	cookie, err := m.Issue("user_42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if cookie.MaxAge != int(DefaultTTL.Seconds()) {
		t.Fatalf("expected default TTL MaxAge, got %d", cookie.MaxAge)
	}
}
