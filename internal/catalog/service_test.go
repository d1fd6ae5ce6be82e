package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	books     []Book
	listErr   error
	listCalls int
}

func (s *stubRepo) ListAll(ctx context.Context, inStockOnly bool) ([]Book, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	if !inStockOnly {
		return s.books, nil
	}
	var out []Book
	for _, b := range s.books {
		if b.InStock > 0 {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (Book, error) {
	for _, b := range s.books {
		if b.ID == id {
			return b, nil
		}
	}
	return Book{}, ErrNotFound
}

func (s *stubRepo) ListRelated(ctx context.Context, genre, excludeID string, limit int) ([]Book, error) {
	var out []Book
	for _, b := range s.books {
		if b.Genre == genre && b.ID != excludeID && len(out) < limit {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubRepo) Create(ctx context.Context, b *Book) error { return nil }
func (s *stubRepo) Update(ctx context.Context, b *Book) error { return nil }
func (s *stubRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func TestService_Browse(t *testing.T) {
	repo := &stubRepo{books: sampleBooks()}
	svc := NewService(repo)

	c := DefaultCriteria()
	c.Genre = "Science Fiction"
	got, err := svc.Browse(context.Background(), "", c, false)

	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b5"}, ids(got))
}

func TestService_Browse_InStockOnly(t *testing.T) {
	repo := &stubRepo{books: []Book{
		{ID: "b1", InStock: 3},
		{ID: "b2", InStock: 0},
	}}
	svc := NewService(repo)

	got, err := svc.Browse(context.Background(), "", DefaultCriteria(), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, ids(got))
}

func TestService_Browse_RepoError(t *testing.T) {
	repo := &stubRepo{listErr: errors.New("db down")}
	svc := NewService(repo)

	_, err := svc.Browse(context.Background(), "", DefaultCriteria(), false)
	assert.Error(t, err)
}

func TestService_Genres(t *testing.T) {
	repo := &stubRepo{books: []Book{
		{ID: "b1", Genre: "Science Fiction"},
		{ID: "b2", Genre: "Fantasy"},
		{ID: "b3", Genre: "Science Fiction"},
		{ID: "b4", Genre: ""},
		{ID: "b5", Genre: "Biography"},
	}}
	svc := NewService(repo)

	genres, err := svc.Genres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Biography", "Fantasy", "Science Fiction"}, genres)
}

func TestService_Related(t *testing.T) {
	books := []Book{
		{ID: "b1", Genre: "Science Fiction"},
		{ID: "b2", Genre: "Science Fiction"},
		{ID: "b3", Genre: "Science Fiction"},
		{ID: "b4", Genre: "Science Fiction"},
		{ID: "b5", Genre: "Science Fiction"},
		{ID: "b6", Genre: "Science Fiction"},
		{ID: "b7", Genre: "Fantasy"},
	}
	repo := &stubRepo{books: books}
	svc := NewService(repo)

	got, err := svc.Related(context.Background(), "b1")
	require.NoError(t, err)

	assert.Len(t, got, RelatedLimit)
	for _, b := range got {
		assert.NotEqual(t, "b1", b.ID)
		assert.Equal(t, "Science Fiction", b.Genre)
	}
}

func TestService_Related_UnknownBook(t *testing.T) {
	svc := NewService(&stubRepo{})

	_, err := svc.Related(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
