package repository

import (
	"github.com/hostelsuite/dashboard-service/internal/core/domain"
	"github.com/hostelsuite/dashboard-service/internal/core/ports"
)

func (s *MemoryStore) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User(nil), s.users...)
}

func (s *MemoryStore) UserByID(id int) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, true
		}
	}
	return nil, false
}

func (s *MemoryStore) UserByName(name string) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Name == name {
			user := s.users[i]
			return &user, true
		}
	}
	return nil, false
}

// CreateUser appends the new user; unlike requests and reports, the user
// list keeps registration order oldest first.
func (s *MemoryStore) CreateUser(input domain.NewUser) (*domain.User, error) {
	if msgs := s.validator.ValidateUser(input); len(msgs) > 0 {
		s.metrics.RejectedCreates.WithLabelValues(string(ports.CollectionUsers)).Inc()
		return nil, &domain.ValidationError{Messages: msgs}
	}

	s.mu.Lock()
	user := domain.User{
		ID:         nextID(s.users, func(u domain.User) int { return u.ID }),
		Username:   input.Username,
		Password:   input.Password,
		Name:       input.Name,
		Role:       input.Role,
		Email:      input.Email,
		RoomNumber: input.RoomNumber,
	}
	s.users = append(s.users, user)
	s.mu.Unlock()

	s.metrics.RecordsCreated.WithLabelValues(string(ports.CollectionUsers)).Inc()
	s.notifier.Notify(ports.CollectionUsers)

	created := user
	return &created, nil
}
