package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hostelsuite/dashboard-service/internal/core/domain"
	"github.com/hostelsuite/dashboard-service/internal/core/services"
	"github.com/hostelsuite/dashboard-service/test/mocks"
)

func newStudent(username, email string) domain.NewUser {
	return domain.NewUser{
		Username: username,
		Password: "student123",
		Name:     "New Student",
		Email:    email,
	}
}

func TestRegistrationService_Register(t *testing.T) {
	tests := []struct {
		name    string
		input   domain.NewUser
		wantErr error
	}{
		{
			name:  "new_student",
			input: newStudent("new.student", "new.student@university.edu"),
		},
		{
			name:    "duplicate_username",
			input:   newStudent("admin", "someone@university.edu"),
			wantErr: domain.ErrUsernameTaken,
		},
		{
			name:    "duplicate_email",
			input:   newStudent("someone", "admin@university.edu"),
			wantErr: domain.ErrEmailTaken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := mocks.NewMockUserStore(seedUsers()...)
			svc := services.NewRegistrationService(users)

			user, err := svc.Register(context.Background(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got %v, want %v", err, tt.wantErr)
				}
				if len(users.CreateUserCalls) != 0 {
					t.Fatal("rejected registration must not create a user")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if user.Role != domain.RoleStudent {
				t.Fatalf("got role %q, want Student default", user.Role)
			}
		})
	}
}
