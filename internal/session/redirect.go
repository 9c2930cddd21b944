package session

// RedirectPolicy whitelists post-login destinations against a fixed allow-set.
// Membership is exact string equality: no prefix matching, no URL parsing.
// Anything outside the set, including an absent value, falls back to a safe
// internal destination.
type RedirectPolicy struct {
	allowed  map[string]struct{}
	fallback string
}

// NewRedirectPolicy builds an immutable policy. The fallback is always
// considered allowed.
func NewRedirectPolicy(fallback string, allowed ...string) *RedirectPolicy {
	set := make(map[string]struct{}, len(allowed)+1)
	set[fallback] = struct{}{}
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return &RedirectPolicy{allowed: set, fallback: fallback}
}

// Validate returns candidate unchanged when it is in the allow-set, and the
// fallback otherwise.
func (p *RedirectPolicy) Validate(candidate string) string {
	if _, ok := p.allowed[candidate]; ok {
		return candidate
	}
	return p.fallback
}
