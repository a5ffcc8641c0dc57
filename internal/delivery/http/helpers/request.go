package helpers

import (
	"net/http"
	"net/url"
	"strings"
)

// IsHTTPS reports whether the request reached us over TLS, directly or via a
// proxy setting X-Forwarded-Proto.
func IsHTTPS(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	proto := strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-Proto"), ",")[0])
	return strings.EqualFold(proto, "https")
}

// BaseURL returns configured when set, otherwise the scheme and host the request was made to.
func BaseURL(r *http.Request, configured string) string {
	if configured = strings.TrimSpace(configured); configured != "" {
		return strings.TrimSuffix(configured, "/")
	}
	scheme := "http"
	if IsHTTPS(r) {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// InviteLink returns the fully-qualified shareable link for an invite token.
func InviteLink(r *http.Request, configuredBase, token string) string {
	return BaseURL(r, configuredBase) + InvitePath(token)
}

// InvitePath returns the site-relative path of an invite page.
func InvitePath(token string) string {
	return "/invite/" + url.PathEscape(token)
}

// SafeRedirectPath returns next when it is a site-local path, fallback otherwise.
func SafeRedirectPath(next, fallback string) string {
	next = strings.TrimSpace(next)
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, `/\`) {
		return fallback
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return next
}
