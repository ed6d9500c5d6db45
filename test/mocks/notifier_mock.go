// Package mocks provides mock implementations of port interfaces for
// testing. The services and the store only see interfaces, so tests swap in
// these in place of the real adapters.
package mocks

import (
	"sync"

	"github.com/hostelsuite/dashboard-service/internal/core/ports"
)

// MockNotifier implements ports.ChangeNotifier with plain bookkeeping and
// no breaker machinery, so store tests can assert on notification side
// effects directly.
type MockNotifier struct {
	mu     sync.Mutex
	nextID ports.Subscription
	subs   map[ports.Subscription]subscription

	// NotifyCalls records every Notify invocation in order.
	NotifyCalls []ports.Collection
}

type subscription struct {
	collection ports.Collection
	fn         func()
}

var _ ports.ChangeNotifier = (*MockNotifier)(nil)

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{subs: make(map[ports.Subscription]subscription)}
}

func (m *MockNotifier) Subscribe(c ports.Collection, fn func()) ports.Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.subs[m.nextID] = subscription{collection: c, fn: fn}
	return m.nextID
}

func (m *MockNotifier) Unsubscribe(s ports.Subscription) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subs, s)
}

func (m *MockNotifier) Notify(c ports.Collection) {
	m.mu.Lock()
	m.NotifyCalls = append(m.NotifyCalls, c)
	fns := make([]func(), 0, len(m.subs))
	for _, sub := range m.subs {
		if sub.collection == c {
			fns = append(fns, sub.fn)
		}
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Notified counts how many times the collection was notified.
func (m *MockNotifier) Notified(c ports.Collection) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, call := range m.NotifyCalls {
		if call == c {
			n++
		}
	}
	return n
}
