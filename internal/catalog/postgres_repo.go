package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = `id, title, author, price, rating, format, genre, cover_url,
	COALESCE(description, '') as description, COALESCE(isbn, '') as isbn,
	COALESCE(publication_date, '') as publication_date, in_stock, created_at, updated_at`

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

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Price, &b.Rating, &b.Format, &b.Genre, &b.Cover,
		&b.Description, &b.ISBN, &b.PublicationDate, &b.InStock, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *PostgresRepo) collect(rows pgx.Rows) ([]Book, error) {
	defer rows.Close()
	var books []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *PostgresRepo) ListAll(ctx context.Context, inStockOnly bool) ([]Book, error) {
	sql := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at ASC, id ASC`
	if inStockOnly {
		sql = `SELECT ` + bookColumns + ` FROM books WHERE in_stock > 0 ORDER BY created_at ASC, id ASC`
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, sql)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx,
		`SELECT `+bookColumns+` FROM books WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Book{}, ErrNotFound
	}
	return b, err
}

func (r *PostgresRepo) ListRelated(ctx context.Context, genre, excludeID string, limit int) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx,
		`SELECT `+bookColumns+` FROM books WHERE genre = $1 AND id <> $2 LIMIT $3`,
		genre, excludeID, limit)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const insertSQL = `
		INSERT INTO books (id, title, author, price, rating, format, genre, cover_url,
		                   description, isbn, publication_date, in_stock, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, insertSQL,
		b.Title, b.Author, b.Price, b.Rating, b.Format, b.Genre, b.Cover,
		b.Description, b.ISBN, b.PublicationDate, b.InStock,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *PostgresRepo) Update(ctx context.Context, b *Book) error {
	const updateSQL = `
		UPDATE books
		SET title = $2, author = $3, price = $4, rating = $5, format = $6, genre = $7,
		    cover_url = $8, description = $9, isbn = $10, publication_date = $11,
		    in_stock = $12, updated_at = NOW()
		WHERE id = $1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, updateSQL,
		b.ID, b.Title, b.Author, b.Price, b.Rating, b.Format, b.Genre,
		b.Cover, b.Description, b.ISBN, b.PublicationDate, b.InStock)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
