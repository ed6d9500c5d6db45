package services_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hostelsuite/dashboard-service/internal/adapters/metrics"
	"github.com/hostelsuite/dashboard-service/internal/adapters/repository"
	"github.com/hostelsuite/dashboard-service/internal/core/domain"
	"github.com/hostelsuite/dashboard-service/internal/core/services"
	"github.com/hostelsuite/dashboard-service/internal/seed"
	"github.com/hostelsuite/dashboard-service/test/mocks"
)

func TestDashboardService_Overview(t *testing.T) {
	store := repository.NewMemoryStore(mocks.NewMockNotifier(), metrics.New(prometheus.NewRegistry()))
	store.Seed(seed.Users(), seed.LeaveRequests(), seed.OutingPasses(), seed.MissingItems(), seed.Attendance())
	svc := services.NewDashboardService(store)

	overview := svc.Overview()

	if overview.Stats.Leaves.Total != 5 || overview.Stats.Outings.Total != 4 || overview.Stats.MissingItems.Total != 5 {
		t.Fatalf("stats totals wrong: %+v", overview.Stats)
	}
	if len(overview.RecentRequests) != 5 {
		t.Fatalf("got %d recent requests, want 5", len(overview.RecentRequests))
	}
	for i := 1; i < len(overview.RecentRequests); i++ {
		if overview.RecentRequests[i-1].CreatedAt().Before(overview.RecentRequests[i].CreatedAt()) {
			t.Fatal("recent requests not newest first")
		}
	}
	if len(overview.WeeklyAttendance) != 3 {
		t.Fatalf("got %d attendance days, want 3", len(overview.WeeklyAttendance))
	}
}

func TestDashboardService_PendingCount(t *testing.T) {
	store := repository.NewMemoryStore(mocks.NewMockNotifier(), metrics.New(prometheus.NewRegistry()))
	store.Seed(seed.Users(), seed.LeaveRequests(), seed.OutingPasses(), nil, nil)
	svc := services.NewDashboardService(store)

	// Two pending leaves and two pending outings in the demo dataset.
	if got := svc.PendingCount(); got != 4 {
		t.Fatalf("got %d pending, want 4", got)
	}

	status := domain.StatusApproved
	if _, err := store.UpdateLeaveRequest(2, domain.LeaveRequestUpdate{Status: &status}); err != nil {
		t.Fatal(err)
	}
	if got := svc.PendingCount(); got != 3 {
		t.Fatalf("got %d pending after approval, want 3", got)
	}
}
