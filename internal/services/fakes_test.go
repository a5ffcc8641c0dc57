package services

import (
	"context"
	"errors"
	"io"
	"time"

	"invites/internal/domain"
)

type fakeInviteRepository struct {
	byToken   map[string]*domain.Invite
	nextID    int64
	createErr error
	getErr    error
	creates   int
}

func newFakeInviteRepository() *fakeInviteRepository {
	return &fakeInviteRepository{byToken: map[string]*domain.Invite{}}
}

func (f *fakeInviteRepository) Create(ctx context.Context, inv *domain.Invite) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byToken[inv.Token]; ok {
		return domain.ErrDuplicateToken
	}
	f.nextID++
	inv.ID = f.nextID
	f.byToken[inv.Token] = inv
	f.creates++
	return nil
}

func (f *fakeInviteRepository) GetByToken(ctx context.Context, token string) (*domain.Invite, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	inv, ok := f.byToken[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

type fakeResponseRepository struct {
	invites   *fakeInviteRepository
	responses []*domain.Response
	createErr error
	countErr  error
	listErr   error
}

func (f *fakeResponseRepository) Create(ctx context.Context, resp *domain.Response) error {
	if f.createErr != nil {
		return f.createErr
	}
	resp.ID = int64(len(f.responses) + 1)
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeResponseRepository) CountByInvite(ctx context.Context, inviteID int64) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	n := 0
	for _, r := range f.responses {
		if r.InviteID == inviteID {
			n++
		}
	}
	return n, nil
}

func (f *fakeResponseRepository) ListAttendees(ctx context.Context) ([]*domain.AttendeeRow, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	rows := []*domain.AttendeeRow{}
	for _, r := range f.responses {
		for _, inv := range f.invites.byToken {
			if inv.ID == r.InviteID {
				rows = append(rows, &domain.AttendeeRow{
					Name:              r.Name,
					NumberOfAttendees: r.NumberOfAttendees,
					EventDate:         inv.EventDate,
					EventTime:         inv.EventTime,
					Location:          inv.Location,
				})
			}
		}
	}
	return rows, nil
}

type fakeImageStore struct {
	saved     map[string]string
	err       error
	deleteErr error
	lastName  string
	deleted   []string
}

func (f *fakeImageStore) Delete(ctx context.Context, relPath string) error {
	f.deleted = append(f.deleted, relPath)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.saved, relPath)
	return nil
}

func (f *fakeImageStore) Save(ctx context.Context, token, filename string, content io.Reader) (string, error) {
	f.lastName = filename
	if f.err != nil {
		return "", f.err
	}
	if filename == "payload.exe" {
		return "", nil
	}
	data, _ := io.ReadAll(content)
	if f.saved == nil {
		f.saved = map[string]string{}
	}
	rel := "uploads/" + token + "_" + filename
	f.saved[rel] = string(data)
	return rel, nil
}

type fakeNotifier struct {
	calls []*domain.Response
}

func (f *fakeNotifier) RSVPReceived(ctx context.Context, invite *domain.Invite, resp *domain.Response) {
	f.calls = append(f.calls, resp)
}

var errDB = errors.New("db unavailable")

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
