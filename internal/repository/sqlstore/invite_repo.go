package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"invites/internal/domain"
)

type inviteRepository struct {
	DB *sql.DB
}

func NewInviteRepository(db *sql.DB) domain.InviteRepository {
	return &inviteRepository{DB: db}
}

func (r *inviteRepository) Create(ctx context.Context, inv *domain.Invite) error {
	query := `
		INSERT INTO invites (uuid, message, image_path, event_date, event_time, location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		inv.Token, inv.Message, inv.ImagePath, inv.EventDate, inv.EventTime, inv.Location,
		timeToUnixMillis(inv.CreatedAt),
	).Scan(&inv.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateToken
		}
		return fmt.Errorf("insert invite: %w", err)
	}
	return nil
}

func (r *inviteRepository) GetByToken(ctx context.Context, token string) (*domain.Invite, error) {
	query := `
		SELECT id, uuid, message, image_path, event_date, event_time, location, created_at
		FROM invites
		WHERE uuid = $1
	`
	inv := &domain.Invite{}
	var createdAt int64
	err := r.DB.QueryRowContext(ctx, query, token).Scan(
		&inv.ID, &inv.Token, &inv.Message, &inv.ImagePath,
		&inv.EventDate, &inv.EventTime, &inv.Location, &createdAt,
	)
	if err != nil {
		return nil, translateNotFound(err)
	}
	inv.CreatedAt = unixMillisToTime(createdAt)
	return inv, nil
}
