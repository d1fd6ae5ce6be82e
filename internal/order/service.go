package order

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"bookshop/internal/cart"
)

// Service places and lists orders. There is no payment gateway: checkout
// simulates a successful payment and fabricates the order identifier.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func newOrderID() (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "ORD-" + strings.ToUpper(hex.EncodeToString(buf)), nil
}

// Checkout prices the cart, persists the order, and clears the cart. The
// cart is only cleared after the order was stored; a failed checkout leaves
// it intact so the user can retry.
func (s *Service) Checkout(ctx context.Context, store *cart.Store, info ShippingInfo, userID string) (Order, error) {
	summary := cart.Summarize(store)
	if len(summary.Items) == 0 {
		return Order{}, ErrEmptyCart
	}

	id, err := newOrderID()
	if err != nil {
		return Order{}, err
	}

	items := make([]Item, 0, len(summary.Items))
	for _, it := range summary.Items {
		items = append(items, Item{
			BookID:   it.BookID,
			Title:    it.Title,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	o := Order{
		ID:           id,
		UserID:       userID,
		Status:       StatusPending,
		Shipping:     info,
		Items:        items,
		Subtotal:     summary.Subtotal,
		ShippingCost: summary.Shipping,
		Total:        summary.Total,
	}

	if err := s.repo.Create(ctx, &o); err != nil {
		return Order{}, err
	}

	store.Clear()
	return o, nil
}

// History returns the user's past orders, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListAll returns every order, for the admin console.
func (s *Service) ListAll(ctx context.Context) ([]Order, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStatus moves an order through its lifecycle.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	if err := ValidateStatus(status); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
