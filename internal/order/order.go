package order

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound  = errors.New("order not found")
	ErrEmptyCart = errors.New("cart is empty")
)

const (
	StatusPending   = "PENDING"
	StatusShipped   = "SHIPPED"
	StatusDelivered = "DELIVERED"
	StatusCancelled = "CANCELLED"
)

func ValidateStatus(status string) error {
	switch status {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("invalid status: %s", status)
	}
}

// ShippingInfo is the address block collected at checkout. All fields are
// required and validated before anything touches the database.
type ShippingInfo struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Zip       string `json:"zip" validate:"required"`
}

// Item is an order line frozen at checkout time.
type Item struct {
	BookID   string  `json:"book_id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id,omitempty"`
	Status       string       `json:"status"`
	Shipping     ShippingInfo `json:"shipping"`
	Items        []Item       `json:"items"`
	Subtotal     float64      `json:"subtotal"`
	ShippingCost float64      `json:"shipping_cost"`
	Total        float64      `json:"total"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Repository stores placed orders.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
