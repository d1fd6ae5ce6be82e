package catalog

import (
	"context"
	"sort"

	"golang.org/x/sync/singleflight"
)

// RelatedLimit bounds the related-books list on a book page.
const RelatedLimit = 4

// Repository defines the contract for catalog storage.
type Repository interface {
	ListAll(ctx context.Context, inStockOnly bool) ([]Book, error)
	GetByID(ctx context.Context, id string) (Book, error)
	ListRelated(ctx context.Context, genre, excludeID string, limit int) ([]Book, error)
	Create(ctx context.Context, b *Book) error
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id string) error
}

// Service provides catalog browsing and admin maintenance.
type Service struct {
	repo Repository
	sfg  singleflight.Group // collapses concurrent catalog fetches
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) fetchAll(ctx context.Context, inStockOnly bool) ([]Book, error) {
	key := "catalog"
	if inStockOnly {
		key = "catalog:instock"
	}
	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		return s.repo.ListAll(ctx, inStockOnly)
	})
	if err != nil {
		return nil, err
	}
	return v.([]Book), nil
}

// Browse fetches the catalog and runs the filter/sort pipeline over it.
func (s *Service) Browse(ctx context.Context, query string, c Criteria, inStockOnly bool) ([]Book, error) {
	books, err := s.fetchAll(ctx, inStockOnly)
	if err != nil {
		return nil, err
	}
	return Apply(books, query, c), nil
}

// Genres returns the distinct genres in the catalog, sorted.
func (s *Service) Genres(ctx context.Context) ([]string, error) {
	books, err := s.fetchAll(ctx, false)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var genres []string
	for _, b := range books {
		if b.Genre != "" && !seen[b.Genre] {
			seen[b.Genre] = true
			genres = append(genres, b.Genre)
		}
	}
	sort.Strings(genres)
	return genres, nil
}

// GetByID returns a single book.
func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Related returns up to RelatedLimit books sharing the genre, excluding the
// book itself.
func (s *Service) Related(ctx context.Context, id string) ([]Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repo.ListRelated(ctx, b.Genre, b.ID, RelatedLimit)
}

// Create adds a book to the catalog.
func (s *Service) Create(ctx context.Context, b *Book) error {
	return s.repo.Create(ctx, b)
}

// Update replaces a book's catalog fields.
func (s *Service) Update(ctx context.Context, b *Book) error {
	return s.repo.Update(ctx, b)
}

// Delete removes a book from the catalog.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
