package controllers

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"invites/internal/delivery/http/views"
	"invites/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testRenderer(t *testing.T) *views.Renderer {
	t.Helper()
	r, err := views.NewRenderer()
	require.NoError(t, err)
	return r
}

type mockInviteService struct {
	created    *domain.Invite
	createErr  error
	gotInput   domain.CreateInviteInput
	gotImage   []byte
	view       *domain.InviteView
	getErr     error
	resp       *domain.Response
	rsvpErr    error
	rsvpCalled bool
	gotName    string
	gotCount   string
}

func (m *mockInviteService) CreateInvite(_ context.Context, in domain.CreateInviteInput) (*domain.Invite, error) {
	m.gotInput = in
	if in.Image != nil {
		m.gotImage, _ = io.ReadAll(in.Image.Content)
	}
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.created, nil
}

func (m *mockInviteService) GetInvite(_ context.Context, _ string) (*domain.InviteView, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.view, nil
}

func (m *mockInviteService) SubmitRSVP(_ context.Context, _ string, name, attendeesRaw string) (*domain.Response, error) {
	m.rsvpCalled = true
	m.gotName = name
	m.gotCount = attendeesRaw
	if m.rsvpErr != nil {
		return nil, m.rsvpErr
	}
	return m.resp, nil
}

type mockAuthService struct {
	token     string
	err       error
	calls     int
	subject   string
	authErr   error
	loggedOut []string
	logoutErr error
}

func (m *mockAuthService) Login(_ context.Context, _, _ string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

type mockDashboardService struct {
	dashboard *domain.Dashboard
	err       error
}

func (m *mockDashboardService) Load(_ context.Context) (*domain.Dashboard, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.dashboard, nil
}

func (m *mockAuthService) Authenticate(_ context.Context, _ string) (string, error) {
	if m.authErr != nil {
		return "", m.authErr
	}
	if m.subject == "" {
		return "", domain.ErrUnauthorized
	}
	return m.subject, nil
}

func (m *mockAuthService) Logout(_ context.Context, token string) error {
	m.loggedOut = append(m.loggedOut, token)
	return m.logoutErr
}

type fakePinger struct {
	err error
}

func (f *fakePinger) PingContext(_ context.Context) error {
	return f.err
}
