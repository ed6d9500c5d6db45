package ports

import (
	"context"

	"github.com/hostelsuite/dashboard-service/internal/core/domain"
)

type AuthService interface {
	// Login matches the supplied login (username or email) and password
	// against the user collection and persists a session marker on success.
	Login(ctx context.Context, login, password string) (*domain.User, error)
	// Restore re-reads the persisted session marker, if any. A missing,
	// expired or tampered marker yields (nil, nil).
	Restore(ctx context.Context) (*domain.User, error)
	Logout(ctx context.Context) error
}

type RegistrationService interface {
	Register(ctx context.Context, input domain.NewUser) (*domain.User, error)
}

// SessionStore persists the opaque session token between runs. It is the
// localStorage analog of the browser dashboard: one slot, written at login,
// cleared at logout.
type SessionStore interface {
	Save(ctx context.Context, token string) error
	// Load returns ("", nil) when no session is stored.
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
