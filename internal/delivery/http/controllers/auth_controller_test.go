package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invites/internal/delivery/http/helpers"
	"invites/internal/domain"
)

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestAuthController_Login(t *testing.T) {
	tests := []struct {
		name         string
		form         url.Values
		svc          *mockAuthService
		wantStatus   int
		wantLocation string
		wantSession  bool
		wantFlash    bool
		wantCalls    int
	}{
		{
			name:         "success redirects to dashboard",
			form:         url.Values{"username": {"admin"}, "password": {"pw"}},
			svc:          &mockAuthService{token: "tok"},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/admin_dashboard",
			wantSession:  true,
			wantCalls:    1,
		},
		{
			name:         "success honors local next",
			form:         url.Values{"username": {"admin"}, "password": {"pw"}, "next": {"/create_invite"}},
			svc:          &mockAuthService{token: "tok"},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/create_invite",
			wantSession:  true,
			wantCalls:    1,
		},
		{
			name:         "external next is ignored",
			form:         url.Values{"username": {"admin"}, "password": {"pw"}, "next": {"//evil.example"}},
			svc:          &mockAuthService{token: "tok"},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/admin_dashboard",
			wantSession:  true,
			wantCalls:    1,
		},
		{
			name:         "invalid credentials flash",
			form:         url.Values{"username": {"admin"}, "password": {"wrong"}},
			svc:          &mockAuthService{err: domain.ErrInvalidCredentials},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
			wantFlash:    true,
			wantCalls:    1,
		},
		{
			name:         "empty credentials never reach the service",
			form:         url.Values{"username": {""}, "password": {""}},
			svc:          &mockAuthService{token: "tok"},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
			wantFlash:    true,
		},
		{
			name:       "unexpected error",
			form:       url.Values{"username": {"admin"}, "password": {"pw"}},
			svc:        &mockAuthService{err: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(testLogger(), tt.svc, testRenderer(t), time.Hour)
			rr := httptest.NewRecorder()
			ctrl.Login(rr, postForm("/login", tt.form))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalls, tt.svc.calls)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			}
			session := findCookie(rr, helpers.SessionCookieName)
			if tt.wantSession {
				require.NotNil(t, session)
				assert.Equal(t, "tok", session.Value)
				assert.True(t, session.HttpOnly)
				assert.Equal(t, http.SameSiteLaxMode, session.SameSite)
				assert.Equal(t, 3600, session.MaxAge)
			} else {
				assert.Nil(t, session)
			}
			assert.Equal(t, tt.wantFlash, findCookie(rr, helpers.FlashCookieName) != nil)
		})
	}
}

func TestAuthController_LoginPage(t *testing.T) {
	t.Run("renders form with flash and next", func(t *testing.T) {
		ctrl := NewAuthController(testLogger(), &mockAuthService{}, testRenderer(t), time.Hour)
		req := httptest.NewRequest(http.MethodGet, "/login?next=%2Fcreate_invite", nil)
		flash := httptest.NewRecorder()
		helpers.WriteFlash(flash, req, invalidCredentialsMsg)
		req.AddCookie(findCookie(flash, helpers.FlashCookieName))
		rr := httptest.NewRecorder()

		ctrl.LoginPage(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, invalidCredentialsMsg)
		assert.Contains(t, body, `name="next" value="/create_invite"`)
		cleared := findCookie(rr, helpers.FlashCookieName)
		require.NotNil(t, cleared)
		assert.Negative(t, cleared.MaxAge)
	})

	t.Run("signed-in admin is redirected", func(t *testing.T) {
		ctrl := NewAuthController(testLogger(), &mockAuthService{subject: "admin"}, testRenderer(t), time.Hour)
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: "tok"})
		rr := httptest.NewRecorder()

		ctrl.LoginPage(rr, req)

		require.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/admin_dashboard", rr.Header().Get("Location"))
	})
}

func TestAuthController_Logout(t *testing.T) {
	svc := &mockAuthService{}
	ctrl := NewAuthController(testLogger(), svc, testRenderer(t), time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: "tok"})
	rr := httptest.NewRecorder()

	ctrl.Logout(rr, req)

	assert.Equal(t, []string{"tok"}, svc.loggedOut, "server-side session is revoked")
	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	session := findCookie(rr, helpers.SessionCookieName)
	require.NotNil(t, session)
	assert.Empty(t, session.Value)
	assert.Negative(t, session.MaxAge)
}

func TestAuthController_Logout_store_failure(t *testing.T) {
	ctrl := NewAuthController(testLogger(), &mockAuthService{logoutErr: errors.New("db down")}, testRenderer(t), time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: "tok"})
	rr := httptest.NewRecorder()

	ctrl.Logout(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Nil(t, findCookie(rr, helpers.SessionCookieName))
}
