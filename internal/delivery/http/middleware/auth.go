package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"invites/internal/delivery/http/helpers"
	"invites/internal/domain"
)

type contextKey string

const adminKey contextKey = "admin"

// LoginPath is where unauthenticated admin requests are sent.
const LoginPath = "/login"

// SetAdmin returns a context carrying the authenticated admin username.
func SetAdmin(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminKey, username)
}

// AdminFromContext returns the authenticated admin username from the context, if present.
func AdminFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(adminKey).(string)
	return name, ok && name != ""
}

// IsAdmin reports whether r carries an active admin session, without requiring one.
func IsAdmin(authn domain.SessionAuthenticator, r *http.Request) (string, error) {
	token, ok := helpers.ReadSession(r)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return authn.Authenticate(r.Context(), token)
}

// RequireAdmin returns a wrapper that validates the session cookie and sets the admin in the request context.
// If the session is missing, invalid or revoked, it redirects to the login page and does not call next.
func RequireAdmin(authn domain.SessionAuthenticator, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			admin, err := IsAdmin(authn, r)
			if err != nil && !errors.Is(err, domain.ErrUnauthorized) {
				logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			if err != nil {
				if _, hadCookie := helpers.ReadSession(r); hadCookie {
					logger.DebugContext(r.Context(), "rejected admin session", "path", r.URL.Path)
					helpers.ClearSession(w, r)
				}
				http.Redirect(w, r, LoginPath+"?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
				return
			}
			next(w, r.WithContext(SetAdmin(r.Context(), admin)))
		}
	}
}
