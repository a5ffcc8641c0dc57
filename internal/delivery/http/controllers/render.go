package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"invites/internal/delivery/http/views"
	"invites/internal/domain"
)

// PageRenderer renders a named HTML page. *views.Renderer implements it.
type PageRenderer interface {
	Render(ctx context.Context, w http.ResponseWriter, status int, name string, page views.Page) error
}

const (
	dashboardPath    = "/admin_dashboard"
	createInvitePath = "/create_invite"
	invalidInviteMsg = "Invalid invite link."
)

func renderPage(w http.ResponseWriter, r *http.Request, logger *slog.Logger, renderer PageRenderer, status int, name string, page views.Page) {
	if err := renderer.Render(r.Context(), w, status, name, page); err != nil {
		logger.ErrorContext(r.Context(), "render failed", "page", name, "path", r.URL.Path, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func serverError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, renderer PageRenderer, err error) {
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	renderPage(w, r, logger, renderer, http.StatusInternalServerError, views.PageError, views.Page{Title: "Error"})
}

// NotFound renders the 404 page with message.
func NotFound(w http.ResponseWriter, r *http.Request, logger *slog.Logger, renderer PageRenderer, message string) {
	renderPage(w, r, logger, renderer, http.StatusNotFound, views.PageNotFound, views.Page{Title: "Not found", Data: message})
}

// validationMessage returns the user-facing message of a ValidationError.
func validationMessage(err error) (string, bool) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Message, true
	}
	return "", false
}

func redirectSeeOther(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}
