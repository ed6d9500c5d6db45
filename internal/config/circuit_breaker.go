package config

import (
	"log"
	"time"

	"github.com/sony/gobreaker"
)

// NewSubscriberBreaker creates the circuit breaker that guards a single
// notification subscriber. The name parameter uniquely identifies the
// subscriber instance.
//
// A subscriber that keeps failing gets its circuit opened so it stops
// being invoked on every store mutation; after the timeout it is given a
// half-open retry.
func NewSubscriberBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Second * 10,
		Timeout:     time.Second * 30,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Open circuit after 3 consecutive failures
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[WARN] Subscriber breaker %s: %s -> %s", name, from, to)
		},
	})
}
