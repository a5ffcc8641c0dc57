package domain

import (
	"context"
	"time"
)

// Response is one invitee's RSVP against an invite.
type Response struct {
	ID                int64     `json:"id"`
	InviteID          int64     `json:"-"`
	Name              string    `json:"name"`
	NumberOfAttendees int       `json:"number_of_attendees"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewResponse creates a new Response. ID is set by the repository on create.
func NewResponse(inviteID int64, name string, numberOfAttendees int, createdAt time.Time) *Response {
	return &Response{
		InviteID:          inviteID,
		Name:              name,
		NumberOfAttendees: numberOfAttendees,
		CreatedAt:         createdAt,
	}
}

// AttendeeRow is a response joined with the date, time and location of its invite.
type AttendeeRow struct {
	Name              string
	NumberOfAttendees int
	EventDate         string
	EventTime         string
	Location          string
}

// ResponseRepository defines storage operations for RSVP responses.
type ResponseRepository interface {
	Create(ctx context.Context, resp *Response) error
	CountByInvite(ctx context.Context, inviteID int64) (int, error)
	// ListAttendees returns every response joined to its invite, in insertion order.
	ListAttendees(ctx context.Context) ([]*AttendeeRow, error)
}

// Dashboard is the admin view of all responses.
type Dashboard struct {
	Attendees      []*AttendeeRow
	TotalAttendees int
}

// DashboardService defines the read-only admin dashboard.
type DashboardService interface {
	Load(ctx context.Context) (*Dashboard, error)
}
