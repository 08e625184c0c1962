package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Middleware attaches an Identity to every request.
//
// A request carrying "Authorization: Bearer <jwt>" is authenticated against
// the configured secret; an invalid token is rejected with 401. Requests
// without a bearer token get an anonymous session id from the session
// cookie, and a fresh cookie is issued when none is present.
type Middleware struct {
	secret     []byte
	cookieName string
	cookieTTL  time.Duration
	logger     *zap.Logger
}

// NewMiddleware creates the identity middleware. An empty secret disables
// bearer authentication.
func NewMiddleware(secret, cookieName string, cookieTTL time.Duration, logger *zap.Logger) *Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Middleware{
		secret:     []byte(secret),
		cookieName: cookieName,
		cookieTTL:  cookieTTL,
		logger:     logger.Named("auth"),
	}
}

// Wrap returns next wrapped with identity resolution.
func (m *Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token, ok := bearerToken(r); ok {
			if len(m.secret) == 0 {
				unauthorized(w, "Bearer authentication is not enabled")
				return
			}
			claims, err := ParseJWT(token, m.secret)
			if err != nil {
				m.logger.Debug("rejected bearer token", zap.Error(err))
				unauthorized(w, "Invalid or expired token")
				return
			}
			ctx := WithIdentity(r.Context(), Identity{Subject: claims.Subject})
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		session := m.session(w, r)
		ctx := WithIdentity(r.Context(), Identity{Subject: session, Anonymous: true})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) session(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(m.cookieName); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(m.cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(token), true
}

func unauthorized(w http.ResponseWriter, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	//nolint:errcheck // Best effort; the status code is already written.
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized", "details": details})
}
