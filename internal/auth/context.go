package auth

import "context"

type contextKey string

const contextKeyIdentity contextKey = "auth.identity"

// Identity identifies the caller of a request: an authenticated user taken
// from a bearer token, or an anonymous browser session.
type Identity struct {
	Subject   string
	Anonymous bool
}

// Key returns the storage key for per-user data such as recent searches.
// Users and sessions live in separate key spaces.
func (i Identity) Key() string {
	if i.Subject == "" {
		return ""
	}
	if i.Anonymous {
		return "session:" + i.Subject
	}
	return "user:" + i.Subject
}

// WithIdentity stores the caller identity in context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKeyIdentity, id)
}

// IdentityFromContext extracts the caller identity from context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	if ctx == nil {
		return Identity{}, false
	}
	id, ok := ctx.Value(contextKeyIdentity).(Identity)
	return id, ok
}
