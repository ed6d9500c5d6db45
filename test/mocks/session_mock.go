package mocks

import (
	"context"
	"sync"

	"github.com/hostelsuite/dashboard-service/internal/core/ports"
)

// MockSessionStore keeps the session token in memory and supports error
// injection for failure scenarios.
type MockSessionStore struct {
	mu    sync.Mutex
	token string

	SaveCalls  int
	LoadCalls  int
	ClearCalls int

	SaveError  error
	LoadError  error
	ClearError error
}

var _ ports.SessionStore = (*MockSessionStore)(nil)

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{}
}

// SeedToken primes the stored token for restore tests.
func (m *MockSessionStore) SeedToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

// Token returns the currently stored token.
func (m *MockSessionStore) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *MockSessionStore) Save(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveError != nil {
		return m.SaveError
	}
	m.token = token
	return nil
}

func (m *MockSessionStore) Load(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadCalls++
	if m.LoadError != nil {
		return "", m.LoadError
	}
	return m.token, nil
}

func (m *MockSessionStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearError != nil {
		return m.ClearError
	}
	m.token = ""
	return nil
}
