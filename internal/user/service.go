package user

import (
	"context"
	"errors"
	"time"

	"bookshop/internal/auth"
)

var ErrUnauthorized = errors.New("unauthorized")

const accessTokenTTL = 24 * time.Hour

// Service handles registration, sign-in, and identity lookup. Sign-out is
// token discard on the client; tokens simply expire.
type Service struct {
	secret string
	repo   Repository
}

func NewService(secret string, repo Repository) *Service {
	return &Service{secret: secret, repo: repo}
}

// Register creates a USER-role account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, username, email, password string) (User, error) {
	if err := auth.ValidatePasswordStrength(password); err != nil {
		return User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return User{}, err
	}

	u := User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     auth.RoleUser,
	}
	if err := s.repo.Create(ctx, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login verifies credentials and issues an access token. A wrong email and
// a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, int, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil || !auth.VerifyPassword(u.Password, password) {
		return User{}, "", 0, ErrUnauthorized
	}

	token, err := auth.GenerateToken(s.secret, u.ID, u.Role, accessTokenTTL)
	if err != nil {
		return User{}, "", 0, err
	}
	return u, token, int(accessTokenTTL.Seconds()), nil
}

// GetByID returns the user's profile.
func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

// ListAll returns every account, for the admin console.
func (s *Service) ListAll(ctx context.Context) ([]User, error) {
	return s.repo.ListAll(ctx)
}
