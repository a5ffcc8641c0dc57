package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"invites/internal/delivery/http/helpers"
	"invites/internal/delivery/http/middleware"
	"invites/internal/delivery/http/views"
	"invites/internal/domain"
)

const invalidCredentialsMsg = "Invalid credentials"

type AuthController struct {
	Logger     *slog.Logger
	Service    domain.AuthService
	Renderer   PageRenderer
	SessionTTL time.Duration
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService, renderer PageRenderer, sessionTTL time.Duration) *AuthController {
	return &AuthController{
		Logger:     logger,
		Service:    svc,
		Renderer:   renderer,
		SessionTTL: sessionTTL,
	}
}

// LoginPage handles GET /login. An already signed-in admin is sent on to next.
func (c *AuthController) LoginPage(w http.ResponseWriter, r *http.Request) {
	next := helpers.SafeRedirectPath(r.URL.Query().Get("next"), "")
	if _, err := middleware.IsAdmin(c.Service, r); err == nil {
		http.Redirect(w, r, helpers.SafeRedirectPath(next, dashboardPath), http.StatusFound)
		return
	}
	renderPage(w, r, c.Logger, c.Renderer, http.StatusOK, views.PageLogin, views.Page{
		Title: "Admin login",
		Flash: helpers.ReadFlash(w, r),
		Data:  next,
	})
}

// Login handles POST /login. Unknown user and wrong password share one message.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var form LoginForm
	msg, err := helpers.BindAndValidate(r, &form)
	if err != nil {
		msg = invalidCredentialsMsg
	}
	next := helpers.SafeRedirectPath(form.Next, "")
	if msg != "" {
		helpers.WriteFlash(w, r, msg)
		redirectSeeOther(w, r, loginURL(next))
		return
	}

	token, err := c.Service.Login(r.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.Logger.InfoContext(r.Context(), "admin login rejected")
			helpers.WriteFlash(w, r, invalidCredentialsMsg)
			redirectSeeOther(w, r, loginURL(next))
			return
		}
		serverError(w, r, c.Logger, c.Renderer, err)
		return
	}

	helpers.WriteSession(w, r, token, c.SessionTTL)
	redirectSeeOther(w, r, helpers.SafeRedirectPath(next, dashboardPath))
}

// Logout handles GET /logout. The server-side session is revoked, so a copy of
// the cookie stops working too.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := helpers.ReadSession(r); ok {
		if err := c.Service.Logout(r.Context(), token); err != nil {
			serverError(w, r, c.Logger, c.Renderer, err)
			return
		}
	}
	helpers.ClearSession(w, r)
	http.Redirect(w, r, middleware.LoginPath, http.StatusFound)
}

func loginURL(next string) string {
	if next == "" {
		return middleware.LoginPath
	}
	return middleware.LoginPath + "?next=" + url.QueryEscape(next)
}
