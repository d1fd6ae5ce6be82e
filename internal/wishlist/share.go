package wishlist

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"bookshop/internal/catalog"
)

var (
	// ErrShareNotFound distinguishes an unknown or expired share code from
	// an empty wishlist.
	ErrShareNotFound = errors.New("shared wishlist not found")

	// ErrShareCodeTaken signals a share-code collision; the service retries
	// with a fresh code.
	ErrShareCodeTaken = errors.New("share code already taken")
)

// Snapshot is a frozen copy of a wishlist published under a share code.
type Snapshot struct {
	ShareCode string         `json:"share_code"`
	Books     []catalog.Book `json:"books"`
	CreatedAt time.Time      `json:"created_at"`
}

// ResolvePathPrefix is the public path a share URL points at. The resolve
// route is registered from the same constant so issued URLs always hit it.
const ResolvePathPrefix = "/shared-wishlist"

// ShareRepository stores code-to-snapshot associations. Uniqueness of the
// code is enforced by the backing store.
type ShareRepository interface {
	CreateShare(ctx context.Context, code, ownerID string, books []catalog.Book) error
	GetShare(ctx context.Context, code string) (Snapshot, error)
}

// ShareService publishes wishlist snapshots and resolves share codes.
type ShareService struct {
	repo    ShareRepository
	baseURL string
}

func NewShareService(repo ShareRepository, baseURL string) *ShareService {
	return &ShareService{repo: repo, baseURL: baseURL}
}

const shareCodeAttempts = 5

func newShareCode() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Share snapshots the current wishlist under a fresh code and returns the
// code and shareable URL. Failure leaves the wishlist untouched.
func (s *ShareService) Share(ctx context.Context, ownerID string, store *Store) (string, string, error) {
	books := store.Items()

	for attempt := 0; attempt < shareCodeAttempts; attempt++ {
		code, err := newShareCode()
		if err != nil {
			return "", "", err
		}

		err = s.repo.CreateShare(ctx, code, ownerID, books)
		if errors.Is(err, ErrShareCodeTaken) {
			continue
		}
		if err != nil {
			return "", "", err
		}
		return code, fmt.Sprintf("%s%s/%s", s.baseURL, ResolvePathPrefix, code), nil
	}
	return "", "", fmt.Errorf("could not allocate a unique share code after %d attempts", shareCodeAttempts)
}

// Resolve returns the snapshot published under the code, or ErrShareNotFound.
func (s *ShareService) Resolve(ctx context.Context, code string) (Snapshot, error) {
	return s.repo.GetShare(ctx, code)
}
