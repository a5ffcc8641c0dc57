package domain

import (
	"context"
	"io"
	"time"
)

// Invite represents one event. ID is assigned by the store; Token is the
// random identifier exposed in shareable links.
type Invite struct {
	ID        int64     `json:"-"`
	Token     string    `json:"token"`
	Message   string    `json:"message"`
	ImagePath string    `json:"image_path"`
	EventDate string    `json:"event_date"`
	EventTime string    `json:"event_time"` // 24-hour "15:04"
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// NewInvite returns a new Invite with the given fields. ID is set by the repository on create.
func NewInvite(token, message, imagePath, eventDate, eventTime, location string, createdAt time.Time) *Invite {
	return &Invite{
		Token:     token,
		Message:   message,
		ImagePath: imagePath,
		EventDate: eventDate,
		EventTime: eventTime,
		Location:  location,
		CreatedAt: createdAt,
	}
}

// DisplayTime returns the event time in 12-hour form ("02:30 PM").
func (i *Invite) DisplayTime() string {
	return FormatEventTime12h(i.EventTime)
}

// InviteRepository defines the interface for invite storage. Invites are
// immutable: there is no update or delete.
type InviteRepository interface {
	Create(ctx context.Context, invite *Invite) error
	GetByToken(ctx context.Context, token string) (*Invite, error)
}

// ImageUpload is an optional image submitted with a new invite.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// ImageStore saves uploaded invite images. Save returns the relative storage
// path, or "" when the upload was dropped. Delete takes a path Save returned.
type ImageStore interface {
	Save(ctx context.Context, token, filename string, content io.Reader) (string, error)
	Delete(ctx context.Context, relPath string) error
}

// CreateInviteInput holds the raw values submitted on the invite creation form.
type CreateInviteInput struct {
	Message   string
	EventDate string
	EventTime string // 12-hour "03:04 PM"
	Location  string
	Image     *ImageUpload
}

// InviteView is an invite prepared for the public invite page.
type InviteView struct {
	Invite        *Invite
	DisplayTime   string
	ResponseCount int
}

// InviteService defines invite creation and the invitee-facing operations.
type InviteService interface {
	CreateInvite(ctx context.Context, in CreateInviteInput) (*Invite, error)
	GetInvite(ctx context.Context, token string) (*InviteView, error)
	// SubmitRSVP records one response for the invite identified by token.
	SubmitRSVP(ctx context.Context, token, name, attendeesRaw string) (*Response, error)
}
