package review

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Upsert(ctx context.Context, rev *Review) error {
	const upsertSQL = `
		INSERT INTO reviews (id, book_id, user_id, rating, comment, created_at, updated_at)
		SELECT gen_random_uuid(), b.id, $2, $3, $4, NOW(), NOW()
		FROM books b
		WHERE b.id = $1
		ON CONFLICT (book_id, user_id)
		DO UPDATE SET rating = EXCLUDED.rating, comment = EXCLUDED.comment, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, upsertSQL, rev.BookID, rev.UserID, rev.Rating, rev.Comment)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		// INSERT ... SELECT matched no book row.
		return ErrNotFound
	}
	if err := rows.Scan(&rev.ID, &rev.CreatedAt, &rev.UpdatedAt); err != nil {
		return err
	}
	return rows.Err()
}

func (r *PostgresRepo) ListByBook(ctx context.Context, bookID string) ([]Review, error) {
	const listSQL = `
		SELECT rv.id, rv.book_id, rv.user_id, u.username, rv.rating,
		       COALESCE(rv.comment, '') as comment, rv.created_at, rv.updated_at
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.book_id = $1
		ORDER BY rv.created_at DESC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, listSQL, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var rev Review
		if err := rows.Scan(
			&rev.ID, &rev.BookID, &rev.UserID, &rev.ReviewerName, &rev.Rating,
			&rev.Comment, &rev.CreatedAt, &rev.UpdatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *PostgresRepo) Delete(ctx context.Context, bookID, userID string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx,
		`DELETE FROM reviews WHERE book_id = $1 AND user_id = $2`, bookID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
