package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
)

//go:generate mockgen -source=auth.go -destination=mocks/mock.go
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (domain.Session, error)
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFrom returns the caller's session, or the anonymous volunteer
// session when the request went through no authentication.
func SessionFrom(ctx context.Context) domain.Session {
	if sess, ok := ctx.Value(sessionKey{}).(domain.Session); ok {
		return sess
	}
	return domain.Anonymous()
}

// BearerToken extracts the token of an "Authorization: Bearer" header.
func BearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// Authenticate resolves the bearer token into a session. Requests without
// a token continue as volunteers; a stale or unknown token is rejected.
func Authenticate(resolver SessionResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := resolver.Resolve(r.Context(), BearerToken(r))
			if err != nil {
				switch {
				case errors.Is(err, e.ErrUnauthorized):
					logger.Info("session rejected", slog.String("path", r.URL.Path), slog.Any("error", err))
					writeError(w, http.StatusUnauthorized, "session expired or invalid, log in again")
				case errors.Is(err, e.ErrStoreUnavailable):
					logger.Error("session lookup failed", slog.Any("error", err))
					writeError(w, http.StatusServiceUnavailable, "session store unavailable, retry")
				default:
					logger.Error("session lookup failed", slog.Any("error", err))
					writeError(w, http.StatusInternalServerError, "internal error")
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// Require lets through only sessions allowed to perform action. Anonymous
// callers get 401 so clients know to log in; others get 403.
func Require(action domain.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFrom(r.Context())
			if !sess.Can(action) {
				if sess.Token == "" {
					writeError(w, http.StatusUnauthorized, "login required")
					return
				}
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
