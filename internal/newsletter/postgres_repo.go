package newsletter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) Subscribe(ctx context.Context, email string) error {
	const insertSQL = `
		INSERT INTO newsletter_subscribers (id, email, created_at)
		VALUES (gen_random_uuid(), LOWER($1), NOW())
	`
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, insertSQL, email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrAlreadySubscribed
		}
		return err
	}
	return nil
}
