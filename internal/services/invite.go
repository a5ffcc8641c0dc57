package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"invites/internal/domain"
)

const (
	eventDateLayout = "2006-01-02"
	maxAttendees    = 1000
)

type inviteService struct {
	inviteRepo   domain.InviteRepository
	responseRepo domain.ResponseRepository
	images       domain.ImageStore
	notifier     domain.Notifier
	newToken     func() string
	now          func() time.Time
}

// NewInviteService creates an InviteService. notifier may be nil.
func NewInviteService(
	inviteRepo domain.InviteRepository,
	responseRepo domain.ResponseRepository,
	images domain.ImageStore,
	notifier domain.Notifier,
) domain.InviteService {
	return &inviteService{
		inviteRepo:   inviteRepo,
		responseRepo: responseRepo,
		images:       images,
		notifier:     notifier,
		newToken:     uuid.NewString,
		now:          time.Now,
	}
}

func (s *inviteService) CreateInvite(ctx context.Context, in domain.CreateInviteInput) (*domain.Invite, error) {
	message := strings.TrimSpace(in.Message)
	eventDate := strings.TrimSpace(in.EventDate)
	location := strings.TrimSpace(in.Location)

	switch {
	case message == "":
		return nil, domain.NewValidationError("Message is required.")
	case eventDate == "":
		return nil, domain.NewValidationError("Event date is required.")
	case location == "":
		return nil, domain.NewValidationError("Location is required.")
	}
	if _, err := time.Parse(eventDateLayout, eventDate); err != nil {
		return nil, domain.NewValidationError("Invalid date format.")
	}
	eventTime, err := domain.ParseEventTime12h(in.EventTime)
	if err != nil {
		return nil, err
	}

	token := s.newToken()
	imagePath := ""
	if in.Image != nil && s.images != nil {
		imagePath, err = s.images.Save(ctx, token, in.Image.Filename, in.Image.Content)
		if err != nil {
			return nil, fmt.Errorf("save invite image: %w", err)
		}
	}

	invite := domain.NewInvite(token, message, imagePath, eventDate, eventTime, location, s.now())
	if err := s.inviteRepo.Create(ctx, invite); err != nil {
		if imagePath != "" {
			if delErr := s.images.Delete(context.WithoutCancel(ctx), imagePath); delErr != nil {
				err = errors.Join(err, fmt.Errorf("remove invite image: %w", delErr))
			}
		}
		return nil, fmt.Errorf("create invite: %w", err)
	}
	return invite, nil
}

func (s *inviteService) GetInvite(ctx context.Context, token string) (*domain.InviteView, error) {
	invite, err := s.lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	count, err := s.responseRepo.CountByInvite(ctx, invite.ID)
	if err != nil {
		return nil, fmt.Errorf("count responses: %w", err)
	}
	return &domain.InviteView{
		Invite:        invite,
		DisplayTime:   invite.DisplayTime(),
		ResponseCount: count,
	}, nil
}

func (s *inviteService) SubmitRSVP(ctx context.Context, token, name, attendeesRaw string) (*domain.Response, error) {
	invite, err := s.lookup(ctx, token)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("Name is required.")
	}
	attendees, err := parseAttendees(attendeesRaw)
	if err != nil {
		return nil, err
	}

	resp := domain.NewResponse(invite.ID, name, attendees, s.now())
	if err := s.responseRepo.Create(ctx, resp); err != nil {
		return nil, fmt.Errorf("create response: %w", err)
	}
	if s.notifier != nil {
		s.notifier.RSVPReceived(ctx, invite, resp)
	}
	return resp, nil
}

func (s *inviteService) lookup(ctx context.Context, token string) (*domain.Invite, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrNotFound
	}
	invite, err := s.inviteRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invite: %w", err)
	}
	return invite, nil
}

func parseAttendees(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 || n > maxAttendees {
		return 0, domain.NewValidationError(
			fmt.Sprintf("Number of attendees must be a whole number between 1 and %d.", maxAttendees))
	}
	return n, nil
}
