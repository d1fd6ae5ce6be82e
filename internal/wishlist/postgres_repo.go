package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bookshop/internal/catalog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// SharePostgresRepo stores wishlist snapshots keyed by share code, with the
// book list serialized as JSONB.
type SharePostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewSharePostgresRepo(db *pgxpool.Pool, timeout time.Duration) *SharePostgresRepo {
	return &SharePostgresRepo{db: db, timeout: timeout}
}

func (r *SharePostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *SharePostgresRepo) CreateShare(ctx context.Context, code, ownerID string, books []catalog.Book) error {
	if books == nil {
		books = []catalog.Book{}
	}
	payload, err := json.Marshal(books)
	if err != nil {
		return err
	}

	const insertSQL = `
		INSERT INTO shared_wishlists (id, share_code, user_id, books, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, NOW())
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err = r.db.Exec(timeoutCtx, insertSQL, code, ownerID, payload)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrShareCodeTaken
		}
		return err
	}
	return nil
}

func (r *SharePostgresRepo) GetShare(ctx context.Context, code string) (Snapshot, error) {
	const selectSQL = `
		SELECT share_code, books, created_at
		FROM shared_wishlists
		WHERE share_code = $1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var snap Snapshot
	var payload []byte
	err := r.db.QueryRow(timeoutCtx, selectSQL, code).Scan(&snap.ShareCode, &payload, &snap.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Snapshot{}, ErrShareNotFound
	}
	if err != nil {
		return Snapshot{}, err
	}

	if err := json.Unmarshal(payload, &snap.Books); err != nil {
		return Snapshot{}, err
	}
	if snap.Books == nil {
		snap.Books = []catalog.Book{}
	}
	return snap, nil
}
