package services

import (
	"github.com/hostelsuite/dashboard-service/internal/core/domain"
	"github.com/hostelsuite/dashboard-service/internal/core/ports"
)

// DashboardService assembles the landing-page aggregates from the store.
type DashboardService struct {
	store ports.RecordStore
}

func NewDashboardService(store ports.RecordStore) *DashboardService {
	return &DashboardService{store: store}
}

// Overview is everything the dashboard landing page renders at once.
type Overview struct {
	Stats            domain.Statistics
	RecentRequests   []domain.Request
	WeeklyAttendance []domain.DailyAttendance
}

const recentRequestLimit = 5

func (s *DashboardService) Overview() Overview {
	recent := s.store.AllRequests()
	if len(recent) > recentRequestLimit {
		recent = recent[:recentRequestLimit]
	}
	return Overview{
		Stats:            s.store.Statistics(),
		RecentRequests:   recent,
		WeeklyAttendance: s.store.WeeklySummary(),
	}
}

// PendingCount feeds the pending-requests gauge.
func (s *DashboardService) PendingCount() int {
	return s.store.Statistics().TotalPendingRequests
}
