package mocks

import (
	"sync"

	"github.com/hostelsuite/dashboard-service/internal/core/domain"
	"github.com/hostelsuite/dashboard-service/internal/core/ports"
)

// MockUserStore implements ports.UserStore for service tests that do not
// need the full record store.
type MockUserStore struct {
	mu    sync.Mutex
	users []domain.User

	CreateUserCalls []domain.NewUser
	CreateUserError error
}

var _ ports.UserStore = (*MockUserStore)(nil)

func NewMockUserStore(users ...domain.User) *MockUserStore {
	return &MockUserStore{users: users}
}

func (m *MockUserStore) Users() []domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.User(nil), m.users...)
}

func (m *MockUserStore) UserByID(id int) (*domain.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			user := m.users[i]
			return &user, true
		}
	}
	return nil, false
}

func (m *MockUserStore) UserByName(name string) (*domain.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].Name == name {
			user := m.users[i]
			return &user, true
		}
	}
	return nil, false
}

func (m *MockUserStore) CreateUser(input domain.NewUser) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateUserCalls = append(m.CreateUserCalls, input)
	if m.CreateUserError != nil {
		return nil, m.CreateUserError
	}
	next := 1
	for i := range m.users {
		if m.users[i].ID >= next {
			next = m.users[i].ID + 1
		}
	}
	user := domain.User{
		ID:         next,
		Username:   input.Username,
		Password:   input.Password,
		Name:       input.Name,
		Role:       input.Role,
		Email:      input.Email,
		RoomNumber: input.RoomNumber,
	}
	m.users = append(m.users, user)
	return &user, nil
}
