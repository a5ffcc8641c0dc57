package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"invites/internal/domain"
)

type responseRepository struct {
	DB *sql.DB
}

func NewResponseRepository(db *sql.DB) domain.ResponseRepository {
	return &responseRepository{DB: db}
}

func (r *responseRepository) Create(ctx context.Context, resp *domain.Response) error {
	query := `
		INSERT INTO responses (invite_id, name, number_of_attendees, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		resp.InviteID, resp.Name, resp.NumberOfAttendees, timeToUnixMillis(resp.CreatedAt),
	).Scan(&resp.ID)
	if err != nil {
		return fmt.Errorf("insert response: %w", err)
	}
	return nil
}

func (r *responseRepository) CountByInvite(ctx context.Context, inviteID int64) (int, error) {
	query := `SELECT COUNT(*) FROM responses WHERE invite_id = $1`
	var n int
	if err := r.DB.QueryRowContext(ctx, query, inviteID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count responses: %w", err)
	}
	return n, nil
}

func (r *responseRepository) ListAttendees(ctx context.Context) ([]*domain.AttendeeRow, error) {
	query := `
		SELECT responses.name, responses.number_of_attendees,
		       invites.event_date, invites.event_time, invites.location
		FROM responses
		JOIN invites ON responses.invite_id = invites.id
		ORDER BY responses.id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.AttendeeRow
	for rows.Next() {
		row := &domain.AttendeeRow{}
		if err := rows.Scan(&row.Name, &row.NumberOfAttendees, &row.EventDate, &row.EventTime, &row.Location); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		out = []*domain.AttendeeRow{}
	}
	return out, nil
}
