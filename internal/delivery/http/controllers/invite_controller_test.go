package controllers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invites/internal/delivery/http/helpers"
	"invites/internal/domain"
)

func multipartRequest(t *testing.T, fields map[string]string, fileName string, fileContent []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "http://invites.test/create_invite", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func inviteFields() map[string]string {
	return map[string]string{
		"message":    "Birthday party",
		"event_date": "2025-06-01",
		"event_time": "07:30 PM",
		"location":   "Park",
	}
}

func TestInviteController_CreateInvite(t *testing.T) {
	t.Run("success renders link with image", func(t *testing.T) {
		svc := &mockInviteService{created: &domain.Invite{ID: 1, Token: "abc-123", ImagePath: "uploads/abc-123_a.png"}}
		ctrl := NewInviteController(testLogger(), svc, testRenderer(t), "")
		rr := httptest.NewRecorder()

		ctrl.CreateInvite(rr, multipartRequest(t, inviteFields(), "a.png", []byte("png-bytes")))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "http://invites.test/invite/abc-123")
		assert.Equal(t, "Birthday party", svc.gotInput.Message)
		assert.Equal(t, "07:30 PM", svc.gotInput.EventTime)
		require.NotNil(t, svc.gotInput.Image)
		assert.Equal(t, "a.png", svc.gotInput.Image.Filename)
		assert.Equal(t, []byte("png-bytes"), svc.gotImage)
	})

	t.Run("configured base url and no image", func(t *testing.T) {
		svc := &mockInviteService{created: &domain.Invite{ID: 1, Token: "abc-123"}}
		ctrl := NewInviteController(testLogger(), svc, testRenderer(t), "https://party.example/")
		rr := httptest.NewRecorder()

		ctrl.CreateInvite(rr, multipartRequest(t, inviteFields(), "", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "https://party.example/invite/abc-123")
		assert.Nil(t, svc.gotInput.Image)
	})

	t.Run("url-encoded body without image", func(t *testing.T) {
		svc := &mockInviteService{created: &domain.Invite{ID: 1, Token: "tok"}}
		ctrl := NewInviteController(testLogger(), svc, testRenderer(t), "")
		values := url.Values{}
		for k, v := range inviteFields() {
			values.Set(k, v)
		}
		rr := httptest.NewRecorder()

		ctrl.CreateInvite(rr, postForm("/create_invite", values))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Park", svc.gotInput.Location)
		assert.Nil(t, svc.gotInput.Image)
	})

	t.Run("validation error flashes and redirects", func(t *testing.T) {
		svc := &mockInviteService{createErr: domain.NewValidationError("Invalid time format.")}
		ctrl := NewInviteController(testLogger(), svc, testRenderer(t), "")
		rr := httptest.NewRecorder()

		ctrl.CreateInvite(rr, multipartRequest(t, inviteFields(), "", nil))

		require.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/create_invite", rr.Header().Get("Location"))
		flash := findCookie(rr, helpers.FlashCookieName)
		require.NotNil(t, flash)
		req := httptest.NewRequest(http.MethodGet, "/create_invite", nil)
		req.AddCookie(flash)
		assert.Equal(t, "Invalid time format.", helpers.ReadFlash(nil, req))
	})

	t.Run("unexpected error", func(t *testing.T) {
		svc := &mockInviteService{createErr: errors.New("disk full")}
		ctrl := NewInviteController(testLogger(), svc, testRenderer(t), "")
		rr := httptest.NewRecorder()

		ctrl.CreateInvite(rr, multipartRequest(t, inviteFields(), "", nil))

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "disk full")
	})
}

func TestInviteController_ViewInvite(t *testing.T) {
	tests := []struct {
		name       string
		svc        *mockInviteService
		wantStatus int
		contains   string
	}{
		{
			name: "found",
			svc: &mockInviteService{view: &domain.InviteView{
				Invite:      &domain.Invite{Message: "Come over", EventDate: "2025-06-01", Location: "Park"},
				DisplayTime: "07:30 PM",
			}},
			wantStatus: http.StatusOK,
			contains:   "Come over",
		},
		{
			name:       "unknown token",
			svc:        &mockInviteService{getErr: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			contains:   "Invalid invite link.",
		},
		{
			name:       "store failure",
			svc:        &mockInviteService{getErr: errors.New("db down")},
			wantStatus: http.StatusInternalServerError,
			contains:   "Something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewInviteController(testLogger(), tt.svc, testRenderer(t), "")
			req := httptest.NewRequest(http.MethodGet, "/invite/tok", nil)
			req.SetPathValue("token", "tok")
			rr := httptest.NewRecorder()

			ctrl.ViewInvite(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.contains)
		})
	}
}

func TestInviteController_SubmitRSVP(t *testing.T) {
	tests := []struct {
		name         string
		svc          *mockInviteService
		wantStatus   int
		wantLocation string
		contains     string
	}{
		{
			name:       "success renders thank you",
			svc:        &mockInviteService{resp: &domain.Response{ID: 1, Name: "Ann", NumberOfAttendees: 2}},
			wantStatus: http.StatusOK,
			contains:   "Thanks, Ann.",
		},
		{
			name:         "validation error redirects back",
			svc:          &mockInviteService{rsvpErr: domain.NewValidationError("Name is required.")},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/invite/tok",
		},
		{
			name:       "unknown token",
			svc:        &mockInviteService{rsvpErr: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			contains:   "Invalid invite link.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewInviteController(testLogger(), tt.svc, testRenderer(t), "")
			req := postForm("/invite/tok", url.Values{"name": {"Ann"}, "number_of_attendees": {"2"}})
			req.SetPathValue("token", "tok")
			rr := httptest.NewRecorder()

			ctrl.SubmitRSVP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.True(t, tt.svc.rsvpCalled)
			assert.Equal(t, "Ann", tt.svc.gotName)
			assert.Equal(t, "2", tt.svc.gotCount)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			}
			if tt.contains != "" {
				assert.Contains(t, rr.Body.String(), tt.contains)
			}
		})
	}
}
