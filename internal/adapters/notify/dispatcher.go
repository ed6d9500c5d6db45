// Package notify implements the in-process change notification fan-out the
// dashboard views rely on to stay in sync without reloads.
package notify

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/sony/gobreaker"

	"github.com/hostelsuite/dashboard-service/internal/adapters/metrics"
	"github.com/hostelsuite/dashboard-service/internal/config"
	"github.com/hostelsuite/dashboard-service/internal/core/ports"
)

type subscriber struct {
	id ports.Subscription
	fn func()
	cb *gobreaker.CircuitBreaker
}

// Dispatcher implements ports.ChangeNotifier. Callbacks run synchronously
// and in registration order, but each invocation is wrapped in a recover
// and a per-subscriber circuit breaker, so one broken view cannot stall
// the rest or poison the mutating call.
type Dispatcher struct {
	mu      sync.Mutex
	nextID  ports.Subscription
	subs    map[ports.Collection][]*subscriber
	origin  map[ports.Subscription]ports.Collection
	metrics *metrics.Metrics
}

var _ ports.ChangeNotifier = (*Dispatcher)(nil)

func NewDispatcher(m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{
		subs:    make(map[ports.Collection][]*subscriber),
		origin:  make(map[ports.Subscription]ports.Collection),
		metrics: m,
	}
}

func (d *Dispatcher) Subscribe(c ports.Collection, fn func()) ports.Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	id := d.nextID
	sub := &subscriber{
		id: id,
		fn: fn,
		cb: config.NewSubscriberBreaker(fmt.Sprintf("%s/%d", c, id)),
	}
	d.subs[c] = append(d.subs[c], sub)
	d.origin[id] = c
	return id
}

func (d *Dispatcher) Unsubscribe(s ports.Subscription) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, ok := d.origin[s]
	if !ok {
		return
	}
	delete(d.origin, s)

	list := d.subs[c]
	for i, sub := range list {
		if sub.id == s {
			d.subs[c] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Notify invokes every subscriber registered for the collection. The
// subscriber list is snapshotted first so callbacks may subscribe or
// unsubscribe reentrantly.
func (d *Dispatcher) Notify(c ports.Collection) {
	d.mu.Lock()
	snapshot := make([]*subscriber, len(d.subs[c]))
	copy(snapshot, d.subs[c])
	d.mu.Unlock()

	d.metrics.Notifications.WithLabelValues(string(c)).Inc()

	for _, sub := range snapshot {
		_, err := sub.cb.Execute(func() (any, error) {
			return nil, invoke(sub.fn)
		})
		if err == nil {
			continue
		}
		d.metrics.SubscriberFailures.WithLabelValues(string(c)).Inc()
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			log.Printf("Subscriber %s/%d skipped: circuit open", c, sub.id)
			continue
		}
		log.Printf("Subscriber %s/%d failed: %v", c, sub.id, err)
	}
}

func invoke(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("subscriber panic: %v", r)
		}
	}()
	fn()
	return nil
}
