package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"invites/internal/domain"
)

type authService struct {
	admin    domain.Admin
	verifier domain.PasswordVerifier
	tokens   domain.SessionTokens
	sessions domain.SessionRepository
	ttl      time.Duration
	newID    func() string
	now      func() time.Time
}

// NewAuthService creates the single-admin AuthService. Sessions are stored
// server-side so logout revokes the token even before it expires.
func NewAuthService(
	admin domain.Admin,
	verifier domain.PasswordVerifier,
	tokens domain.SessionTokens,
	sessions domain.SessionRepository,
	ttl time.Duration,
) domain.AuthService {
	return &authService{
		admin:    admin,
		verifier: verifier,
		tokens:   tokens,
		sessions: sessions,
		ttl:      ttl,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	// The hash is always checked so an unknown user costs the same as a wrong password.
	passErr := s.verifier.Compare(s.admin.PasswordHash, password)
	if !userOK || passErr != nil {
		return "", domain.ErrInvalidCredentials
	}

	now := s.now()
	if _, err := s.sessions.DeleteExpired(ctx, now); err != nil {
		return "", fmt.Errorf("purge sessions: %w", err)
	}
	session := &domain.Session{
		ID:        s.newID(),
		Subject:   s.admin.Username,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	token, err := s.tokens.Issue(session.Subject, session.ID, s.ttl)
	if err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	return token, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return "", domain.ErrUnauthorized
	}
	session, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("get session: %w", err)
	}
	if !s.now().Before(session.ExpiresAt) ||
		session.Subject != claims.Subject ||
		subtle.ConstantTimeCompare([]byte(session.Subject), []byte(s.admin.Username)) != 1 {
		return "", domain.ErrUnauthorized
	}
	return session.Subject, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
