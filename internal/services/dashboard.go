package services

import (
	"context"
	"fmt"

	"invites/internal/domain"
)

type dashboardService struct {
	responseRepo domain.ResponseRepository
}

// NewDashboardService returns the read-only admin dashboard service.
func NewDashboardService(responseRepo domain.ResponseRepository) domain.DashboardService {
	return &dashboardService{responseRepo: responseRepo}
}

func (s *dashboardService) Load(ctx context.Context) (*domain.Dashboard, error) {
	rows, err := s.responseRepo.ListAttendees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	total := 0
	for _, row := range rows {
		row.EventTime = domain.FormatEventTime12h(row.EventTime)
		total += row.NumberOfAttendees
	}
	return &domain.Dashboard{Attendees: rows, TotalAttendees: total}, nil
}
