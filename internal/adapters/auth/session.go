package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"invites/internal/domain"
)

// MinSecretLength is the minimum accepted session signing secret length in bytes.
const MinSecretLength = 32

// SessionManager issues and verifies HS256-signed session tokens.
type SessionManager struct {
	secret []byte
	now    func() time.Time
}

// NewSessionManager returns a SessionManager signing with secret.
func NewSessionManager(secret string) (*SessionManager, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("session secret must be at least %d bytes", MinSecretLength)
	}
	return &SessionManager{secret: []byte(secret), now: time.Now}, nil
}

// Issue signs a token for subject naming the server-side session sessionID (the jti claim).
func (m *SessionManager) Issue(subject, sessionID string, expiry time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("session subject is required")
	}
	if sessionID == "" {
		return "", errors.New("session id is required")
	}
	now := m.now()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return tokenString, nil
}

// Verify checks signature, algorithm and expiry. It does not know whether the
// session has been revoked.
func (m *SessionManager) Verify(tokenString string) (domain.SessionClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return domain.SessionClaims{}, fmt.Errorf("invalid session: %w", err)
	}
	if claims.Subject == "" || claims.ID == "" {
		return domain.SessionClaims{}, errors.New("invalid session: missing subject or id")
	}
	return domain.SessionClaims{SessionID: claims.ID, Subject: claims.Subject}, nil
}
