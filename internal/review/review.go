package review

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a review or its book does not exist.
var ErrNotFound = errors.New("review not found")

type Review struct {
	ID           string    `json:"id"`
	BookID       string    `json:"book_id"`
	UserID       string    `json:"user_id"`
	ReviewerName string    `json:"reviewer_name,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Repository stores reviews. One review per (user, book) is enforced by the
// backing store's unique constraint; Upsert overwrites an existing review.
type Repository interface {
	Upsert(ctx context.Context, rev *Review) error
	ListByBook(ctx context.Context, bookID string) ([]Review, error)
	Delete(ctx context.Context, bookID, userID string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Upsert(ctx context.Context, rev *Review) error {
	return s.repo.Upsert(ctx, rev)
}

func (s *Service) ListByBook(ctx context.Context, bookID string) ([]Review, error) {
	return s.repo.ListByBook(ctx, bookID)
}

func (s *Service) Delete(ctx context.Context, bookID, userID string) error {
	return s.repo.Delete(ctx, bookID, userID)
}

// AverageRating derives the mean rating of a review list.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
