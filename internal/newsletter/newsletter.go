package newsletter

import (
	"context"
	"errors"
)

// ErrAlreadySubscribed is the friendly remap of the unique-violation a
// duplicate email raises in the database.
var ErrAlreadySubscribed = errors.New("email already subscribed")

// Repository stores newsletter subscriptions. Subscribe returns
// ErrAlreadySubscribed for a duplicate email.
type Repository interface {
	Subscribe(ctx context.Context, email string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Subscribe(ctx context.Context, email string) error {
	return s.repo.Subscribe(ctx, email)
}
