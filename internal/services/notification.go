package services

import (
	"context"
	"log/slog"
	"strings"

	"invites/internal/domain"
)

type notificationService struct {
	mailer       domain.Mailer
	renderer     domain.RSVPEmailRenderer
	responseRepo domain.ResponseRepository
	adminEmail   string
	baseURL      string
	logger       *slog.Logger
}

// NewNotificationService returns a Notifier that emails adminEmail on every RSVP.
// With an empty adminEmail it does nothing.
func NewNotificationService(
	mailer domain.Mailer,
	renderer domain.RSVPEmailRenderer,
	responseRepo domain.ResponseRepository,
	adminEmail, baseURL string,
	logger *slog.Logger,
) domain.Notifier {
	return &notificationService{
		mailer:       mailer,
		renderer:     renderer,
		responseRepo: responseRepo,
		adminEmail:   strings.TrimSpace(adminEmail),
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		logger:       logger,
	}
}

// RSVPReceived renders the RSVP notification and mails it. Failures are logged only.
func (s *notificationService) RSVPReceived(ctx context.Context, invite *domain.Invite, resp *domain.Response) {
	if s.adminEmail == "" || invite == nil || resp == nil {
		return
	}
	count, err := s.responseRepo.CountByInvite(ctx, invite.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "count responses for notification", "err", err)
	}
	data := &domain.RSVPReceivedEmailData{
		Name:              resp.Name,
		NumberOfAttendees: resp.NumberOfAttendees,
		Message:           invite.Message,
		EventDate:         invite.EventDate,
		EventTime:         invite.DisplayTime(),
		Location:          invite.Location,
		InviteLink:        s.baseURL + "/invite/" + invite.Token,
		ResponseCount:     count,
	}
	msg, err := s.renderer.RenderRSVPReceived(data)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to render rsvp notification", "err", err)
		return
	}
	if err := s.mailer.Send(ctx, s.adminEmail, msg.Subject, msg.HTML, msg.Text); err != nil {
		s.logger.ErrorContext(ctx, "failed to send rsvp notification", "err", err)
		return
	}
	s.logger.InfoContext(ctx, "rsvp notification sent", "invite", invite.Token)
}
