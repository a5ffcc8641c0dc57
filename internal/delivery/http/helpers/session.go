package helpers

import (
	"net/http"
	"strings"
	"time"
)

// SessionCookieName is the admin session cookie.
const SessionCookieName = "invites_session"

// ReadSession returns the trimmed session cookie value when present.
func ReadSession(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// WriteSession sets the session cookie. ttl bounds the cookie lifetime; the
// token carries its own expiry.
func WriteSession(w http.ResponseWriter, r *http.Request, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    strings.TrimSpace(token),
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSession expires the session cookie.
func ClearSession(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, r, SessionCookieName)
}
