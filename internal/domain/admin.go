package domain

import (
	"context"
	"time"
)

// Admin is the single trusted operator identity, loaded from configuration.
type Admin struct {
	Username     string
	PasswordHash string
}

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Compare(hash, password string) error
}

// SessionClaims are the verified contents of a session token.
type SessionClaims struct {
	SessionID string
	Subject   string
}

// SessionTokens signs and verifies the session token carried in the cookie.
// A valid signature alone does not make a session active; see SessionRepository.
type SessionTokens interface {
	Issue(subject, sessionID string, expiry time.Duration) (string, error)
	Verify(token string) (SessionClaims, error)
}

// Session is a server-side login record. Deleting it revokes every token that names it.
type Session struct {
	ID        string
	Subject   string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// SessionRepository stores active admin sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	// Get returns ErrNotFound for unknown or revoked sessions.
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// SessionAuthenticator resolves a session token to the signed-in admin.
// It returns ErrUnauthorized for invalid, expired or revoked sessions.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// AuthService defines admin login and logout. Login returns a session token or ErrInvalidCredentials.
type AuthService interface {
	SessionAuthenticator
	Login(ctx context.Context, username, password string) (string, error)
	// Logout revokes the session named by token. Unknown or invalid tokens are not an error.
	Logout(ctx context.Context, token string) error
}
