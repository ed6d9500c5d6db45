package repository

import (
	"time"

	"github.com/hostelsuite/dashboard-service/internal/core/domain"
)

func parseDate(s string) (time.Time, error) {
	return time.Parse(attendanceDateLayout, s)
}

// Statistics recomputes the dashboard aggregates from the live collections
// on every call. Nothing is cached or incrementally maintained.
func (s *MemoryStore) Statistics() domain.Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats domain.Statistics

	stats.Leaves.Total = len(s.leaveRequests)
	for i := range s.leaveRequests {
		switch s.leaveRequests[i].Status {
		case domain.StatusPending:
			stats.Leaves.Pending++
		case domain.StatusApproved:
			stats.Leaves.Approved++
		case domain.StatusRejected:
			stats.Leaves.Rejected++
		}
	}

	stats.Outings.Total = len(s.outingPasses)
	for i := range s.outingPasses {
		switch s.outingPasses[i].Status {
		case domain.StatusPending:
			stats.Outings.Pending++
		case domain.StatusApproved:
			stats.Outings.Approved++
		case domain.StatusRejected:
			stats.Outings.Rejected++
		}
	}

	stats.MissingItems.Total = len(s.missingItems)
	for i := range s.missingItems {
		switch s.missingItems[i].Status {
		case domain.ItemMissing:
			stats.MissingItems.Active++
		case domain.ItemFound:
			stats.MissingItems.Found++
		}
	}

	stats.TotalPendingRequests = stats.Leaves.Pending + stats.Outings.Pending
	return stats
}
