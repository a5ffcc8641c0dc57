package helpers

import (
	"encoding/base64"
	"net/http"
	"strings"
	"unicode/utf8"
)

// FlashCookieName is the cookie used for one-time notices shown after a redirect.
const FlashCookieName = "invites_flash"

const maxFlashLength = 512

// WriteFlash stores a one-time message for the next page render.
func WriteFlash(w http.ResponseWriter, r *http.Request, message string) {
	message = strings.TrimSpace(message)
	if w == nil || message == "" {
		return
	}
	if len(message) > maxFlashLength {
		message = message[:maxFlashLength]
		for !utf8.ValidString(message) {
			message = message[:len(message)-1]
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(message)),
		Path:     "/",
		HttpOnly: true,
		Secure:   IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadFlash returns the pending message, if any, and clears the cookie.
func ReadFlash(w http.ResponseWriter, r *http.Request) string {
	if r == nil {
		return ""
	}
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil || cookie == nil {
		return ""
	}
	if w != nil {
		clearCookie(w, r, FlashCookieName)
	}
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(cookie.Value))
	if err != nil || !utf8.Valid(decoded) {
		return ""
	}
	return strings.TrimSpace(string(decoded))
}

func clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
