package services

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hostelsuite/dashboard-service/internal/core/domain"
	"github.com/hostelsuite/dashboard-service/internal/core/ports"
)

// AuthService performs the dashboard's credential check and manages the
// persisted session marker. The check is deliberately trivial: usernames,
// emails and plaintext passwords live in the user collection, and matching
// them is all the authentication this system does.
type AuthService struct {
	users    ports.UserStore
	sessions ports.SessionStore
	secret   []byte
	ttl      time.Duration
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(
	users ports.UserStore,
	sessions ports.SessionStore,
	secret []byte,
	ttl time.Duration,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		secret:   secret,
		ttl:      ttl,
	}
}

type sessionClaims struct {
	Name string      `json:"name"`
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Login accepts either the username or the email address in the login
// field, the way the sign-in form does.
func (s *AuthService) Login(ctx context.Context, login, password string) (*domain.User, error) {
	var match *domain.User
	for _, u := range s.users.Users() {
		if (u.Username == login || u.Email == login) && u.Password == password {
			user := u
			match = &user
			break
		}
	}
	if match == nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.sign(match)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, token); err != nil {
		return nil, err
	}

	log.Printf("User %s logged in (role %s)", match.Username, match.Role)
	return match, nil
}

// Restore re-validates a persisted session marker. Anything wrong with the
// marker (missing, expired, tampered, or the user no longer exists) clears
// it and yields no session rather than an error.
func (s *AuthService) Restore(ctx context.Context) (*domain.User, error) {
	token, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		log.Printf("Discarding unusable session marker: %v", err)
		_ = s.sessions.Clear(ctx)
		return nil, nil
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		_ = s.sessions.Clear(ctx)
		return nil, nil
	}
	user, ok := s.users.UserByID(userID)
	if !ok {
		log.Printf("Session user %d no longer exists", userID)
		_ = s.sessions.Clear(ctx)
		return nil, nil
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func (s *AuthService) sign(user *domain.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Name: user.Name,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
