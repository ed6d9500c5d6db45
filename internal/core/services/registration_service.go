package services

import (
	"context"
	"log"

	"github.com/hostelsuite/dashboard-service/internal/core/domain"
	"github.com/hostelsuite/dashboard-service/internal/core/ports"
)

type RegistrationService struct {
	users ports.UserStore
}

var _ ports.RegistrationService = (*RegistrationService)(nil)

func NewRegistrationService(users ports.UserStore) *RegistrationService {
	return &RegistrationService{users: users}
}

// Register creates a user account after checking that the username and
// email are not taken. Self-registration is for students; an empty role
// defaults accordingly.
func (s *RegistrationService) Register(ctx context.Context, input domain.NewUser) (*domain.User, error) {
	if input.Role == "" {
		input.Role = domain.RoleStudent
	}

	for _, u := range s.users.Users() {
		if u.Username == input.Username {
			return nil, domain.ErrUsernameTaken
		}
		if u.Email == input.Email {
			return nil, domain.ErrEmailTaken
		}
	}

	user, err := s.users.CreateUser(input)
	if err != nil {
		return nil, err
	}

	log.Printf("Registered user %s (role %s)", user.Username, user.Role)
	return user, nil
}
