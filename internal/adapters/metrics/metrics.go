// Package metrics holds the Prometheus instrumentation for the record store
// and the notification dispatcher. Collectors are registered on an injected
// Registerer so tests can use isolated registries.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hostel_dashboard"

type Metrics struct {
	RecordsCreated     *prometheus.CounterVec
	RecordsUpdated     *prometheus.CounterVec
	UpdateMisses       *prometheus.CounterVec
	RejectedCreates    *prometheus.CounterVec
	Notifications      *prometheus.CounterVec
	SubscriberFailures *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RecordsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_created_total",
			Help:      "Records created, per collection.",
		}, []string{"collection"}),
		RecordsUpdated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_updated_total",
			Help:      "Successful record updates, per collection.",
		}, []string{"collection"}),
		UpdateMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "record_update_misses_total",
			Help:      "Updates that targeted a nonexistent record id.",
		}, []string{"collection"}),
		RejectedCreates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_creates_total",
			Help:      "Creates rejected by validation, per collection.",
		}, []string{"collection"}),
		Notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Change notifications fanned out, per collection.",
		}, []string{"collection"}),
		SubscriberFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subscriber_failures_total",
			Help:      "Subscriber callbacks that panicked or were short-circuited.",
		}, []string{"collection"}),
	}
}

// RegisterPendingGauge exposes the current number of pending requests as a
// gauge computed from the store on every scrape.
func RegisterPendingGauge(reg prometheus.Registerer, pending func() int) {
	promauto.With(reg).NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "pending_requests",
		Help:      "Leave requests and outing passes currently pending.",
	}, func() float64 {
		return float64(pending())
	})
}
