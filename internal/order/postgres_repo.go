package order

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
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

func (r *PostgresRepo) Create(ctx context.Context, o *Order) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return err
	}
	defer tx.Rollback(timeoutCtx)

	const orderSQL = `
		INSERT INTO orders (id, user_id, status, first_name, last_name, email,
		                    address, city, state, zip, subtotal, shipping_cost, total,
		                    created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if err := tx.QueryRow(timeoutCtx, orderSQL,
		o.ID, o.UserID, o.Status,
		o.Shipping.FirstName, o.Shipping.LastName, o.Shipping.Email,
		o.Shipping.Address, o.Shipping.City, o.Shipping.State, o.Shipping.Zip,
		o.Subtotal, o.ShippingCost, o.Total,
	).Scan(&o.CreatedAt, &o.UpdatedAt); err != nil {
		return err
	}

	const itemSQL = `
		INSERT INTO order_items (order_id, book_id, title, price, quantity)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, it := range o.Items {
		if _, err := tx.Exec(timeoutCtx, itemSQL, o.ID, it.BookID, it.Title, it.Price, it.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit(timeoutCtx)
}

const orderColumns = `id, COALESCE(user_id::text, '') as user_id, status,
	first_name, last_name, email, address, city, state, zip,
	subtotal, shipping_cost, total, created_at, updated_at`

func scanOrder(rows pgx.Rows) (Order, error) {
	var o Order
	err := rows.Scan(
		&o.ID, &o.UserID, &o.Status,
		&o.Shipping.FirstName, &o.Shipping.LastName, &o.Shipping.Email,
		&o.Shipping.Address, &o.Shipping.City, &o.Shipping.State, &o.Shipping.Zip,
		&o.Subtotal, &o.ShippingCost, &o.Total, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

func (r *PostgresRepo) list(ctx context.Context, sql string, args ...any) ([]Order, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	index := make(map[string]int)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	const itemsSQL = `
		SELECT order_id, book_id, title, price, quantity
		FROM order_items
		WHERE order_id = ANY($1)
	`
	itemsCtx, cancelItems := r.withTimeout(ctx)
	defer cancelItems()
	itemRows, err := r.db.Query(itemsCtx, itemsSQL, ids)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var it Item
		if err := itemRows.Scan(&orderID, &it.BookID, &it.Title, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, it)
		}
	}
	return orders, itemRows.Err()
}

func (r *PostgresRepo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	return r.list(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *PostgresRepo) ListAll(ctx context.Context) ([]Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
}

func (r *PostgresRepo) UpdateStatus(ctx context.Context, id, status string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx,
		`UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
