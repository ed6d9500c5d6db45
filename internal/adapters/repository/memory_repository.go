// Package repository provides the in-memory record store backing every
// dashboard view. Collections live in insertion-relevant order: requests
// and reports are prepended so reads come back newest first, users are
// appended. All reads hand out copies; store state can only change through
// the create/update operations, each of which notifies the collection's
// subscribers after the mutation is visible.
package repository

import (
	"sync"
	"time"

	"github.com/hostelsuite/dashboard-service/internal/adapters/metrics"
	"github.com/hostelsuite/dashboard-service/internal/core/domain"
	"github.com/hostelsuite/dashboard-service/internal/core/ports"
	"github.com/hostelsuite/dashboard-service/internal/core/validation"
)

type MemoryStore struct {
	mu sync.RWMutex

	leaveRequests []domain.LeaveRequest
	outingPasses  []domain.OutingPass
	missingItems  []domain.MissingItemReport
	users         []domain.User
	attendance    []domain.AttendanceRecord

	validator *validation.Validator
	notifier  ports.ChangeNotifier
	metrics   *metrics.Metrics
	now       func() time.Time
}

var _ ports.RecordStore = (*MemoryStore)(nil)

func NewMemoryStore(notifier ports.ChangeNotifier, m *metrics.Metrics) *MemoryStore {
	return &MemoryStore{
		validator: validation.New(),
		notifier:  notifier,
		metrics:   m,
		now:       time.Now,
	}
}

// Seed loads fixture records without firing notifications. Meant for the
// composition root and tests; ids in the fixtures are taken as-is.
func (s *MemoryStore) Seed(
	users []domain.User,
	leaves []domain.LeaveRequest,
	outings []domain.OutingPass,
	items []domain.MissingItemReport,
	attendance []domain.AttendanceRecord,
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, users...)
	s.leaveRequests = append(s.leaveRequests, leaves...)
	s.outingPasses = append(s.outingPasses, outings...)
	s.missingItems = append(s.missingItems, items...)
	s.attendance = append(s.attendance, attendance...)
}

func (s *MemoryStore) Subscribe(c ports.Collection, fn func()) ports.Subscription {
	return s.notifier.Subscribe(c, fn)
}

func (s *MemoryStore) Unsubscribe(sub ports.Subscription) {
	s.notifier.Unsubscribe(sub)
}

// nextID implements the max+1 id rule. Ids are never reused: these
// collections have no delete operation, so the max only grows.
func nextID[T any](records []T, id func(T) int) int {
	next := 1
	for _, r := range records {
		if id(r) >= next {
			next = id(r) + 1
		}
	}
	return next
}

// resolveStudent binds a record to a user identity at creation time.
// Requires s.mu held. A name that matches no user yields zero, which no
// student-filtered read will ever match.
func (s *MemoryStore) resolveStudent(name string) int {
	for i := range s.users {
		if s.users[i].Name == name {
			return s.users[i].ID
		}
	}
	return 0
}
