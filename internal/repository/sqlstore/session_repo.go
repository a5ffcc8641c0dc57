package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"invites/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{DB: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (id, subject, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.Subject, timeToUnixMillis(s.ExpiresAt), timeToUnixMillis(s.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	query := `
		SELECT id, subject, expires_at, created_at
		FROM sessions
		WHERE id = $1
	`
	s := &domain.Session{}
	var expiresAt, createdAt int64
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Subject, &expiresAt, &createdAt); err != nil {
		return nil, translateNotFound(err)
	}
	s.ExpiresAt = unixMillisToTime(expiresAt)
	s.CreatedAt = unixMillisToTime(createdAt)
	return s, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes sessions whose expiry is at or before now.
func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, timeToUnixMillis(now))
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return res.RowsAffected()
}
