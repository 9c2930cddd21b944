package session

import "testing"

func TestRedirectPolicy_Validate(t *testing.T) {
	policy := NewRedirectPolicy("/jokes", "/jokes", "/", "https://remix.run")

	tests := []struct {
		name      string
		candidate string
		want      string
	}{
		{"listing path unchanged", "/jokes", "/jokes"},
		{"site root unchanged", "/", "/"},
		{"trusted external unchanged", "https://remix.run", "https://remix.run"},
		{"absent falls back", "", "/jokes"},
		{"external attacker falls back", "https://evil.example", "/jokes"},
		{"prefix match is not enough", "/jokes/123", "/jokes"},
		{"suffix match is not enough", "//jokes", "/jokes"},
		{"case differs", "/Jokes", "/jokes"},
		{"protocol-relative falls back", "//remix.run", "/jokes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.Validate(tt.candidate); got != tt.want {
				t.Fatalf("Validate(%q) = %q, want %q", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestRedirectPolicy_FallbackAlwaysAllowed(t *testing.T) {
	policy := NewRedirectPolicy("/jokes")

	if got := policy.Validate("/jokes"); got != "/jokes" {
		t.Fatalf("fallback itself must validate, got %q", got)
	}
}
