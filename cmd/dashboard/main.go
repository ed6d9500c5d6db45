package main

import (
	"context"
	"log"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hostelsuite/dashboard-service/internal/adapters/metrics"
	"github.com/hostelsuite/dashboard-service/internal/adapters/notify"
	"github.com/hostelsuite/dashboard-service/internal/adapters/repository"
	"github.com/hostelsuite/dashboard-service/internal/adapters/session"
	"github.com/hostelsuite/dashboard-service/internal/config"
	"github.com/hostelsuite/dashboard-service/internal/core/services"
	"github.com/hostelsuite/dashboard-service/internal/seed"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	dispatcher := notify.NewDispatcher(m)
	store := repository.NewMemoryStore(dispatcher, m)

	if cfg.SeedDemoData {
		store.Seed(
			seed.Users(),
			seed.LeaveRequests(),
			seed.OutingPasses(),
			seed.MissingItems(),
			seed.Attendance(),
		)
		log.Println("Seeded demo dataset")
	}

	sessions := session.NewFileStore(cfg.SessionFile)
	authService := services.NewAuthService(store, sessions, cfg.SessionSecret, cfg.SessionTTL)
	dashboardService := services.NewDashboardService(store)

	metrics.RegisterPendingGauge(registry, dashboardService.PendingCount)

	user, err := authService.Restore(ctx)
	if err != nil {
		log.Fatalf("failed to restore session: %v", err)
	}
	if user != nil {
		log.Printf("Restored session for %s (%s)", user.Name, user.Role)
	} else {
		log.Println("No active session")
	}

	overview := dashboardService.Overview()
	log.Printf("Store ready (version %s): %d leave requests (%d pending), %d outing passes (%d pending), %d missing items (%d active)",
		cfg.Version,
		overview.Stats.Leaves.Total, overview.Stats.Leaves.Pending,
		overview.Stats.Outings.Total, overview.Stats.Outings.Pending,
		overview.Stats.MissingItems.Total, overview.Stats.MissingItems.Active,
	)
}
