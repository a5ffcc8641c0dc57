package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// RenderedEmail is a message ready to hand to a Mailer.
type RenderedEmail struct {
	Subject string
	HTML    string
	Text    string
}

// RSVPEmailRenderer renders the admin notification for one RSVP.
type RSVPEmailRenderer interface {
	RenderRSVPReceived(data *RSVPReceivedEmailData) (RenderedEmail, error)
}

// RSVPReceivedEmailData holds data for the admin notification sent on each RSVP.
type RSVPReceivedEmailData struct {
	Name              string
	NumberOfAttendees int
	Message           string
	EventDate         string
	EventTime         string
	Location          string
	InviteLink        string
	ResponseCount     int
}

// Notifier tells the admin about new responses. Implementations must not fail the RSVP.
type Notifier interface {
	RSVPReceived(ctx context.Context, invite *Invite, resp *Response)
}
