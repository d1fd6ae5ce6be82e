package order

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"bookshop/internal/cart"
	"bookshop/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	orders    []Order
	createErr error
	updateErr error
}

func (f *fakeRepo) Create(ctx context.Context, o *Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeRepo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	var out []Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]Order, error) {
	return f.orders, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func testShipping() ShippingInfo {
	return ShippingInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Address:   "1 Main St",
		City:      "Springfield",
		State:     "IL",
		Zip:       "62701",
	}
}

func filledCart(prices ...float64) *cart.Store {
	s := cart.NewStore()
	for i, p := range prices {
		s.Add(catalog.Book{ID: string(rune('a' + i)), Title: "Book", Price: p})
	}
	return s
}

func TestCheckout(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	store := filledCart(20.00, 15.00)
	o, err := svc.Checkout(context.Background(), store, testShipping(), "user-1")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ORD-[0-9A-F]{10}$`), o.ID)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "user-1", o.UserID)
	assert.Len(t, o.Items, 2)
	assert.Equal(t, 35.00, o.Subtotal)
	assert.Equal(t, 4.99, o.ShippingCost)
	assert.Equal(t, 39.99, o.Total)

	// The cart is emptied once the order is stored.
	assert.Equal(t, 0, store.ItemCount())
	require.Len(t, repo.orders, 1)
	assert.Equal(t, o.ID, repo.orders[0].ID)
}

func TestCheckout_FreeShippingAtThreshold(t *testing.T) {
	svc := NewService(&fakeRepo{})

	o, err := svc.Checkout(context.Background(), filledCart(50.00), testShipping(), "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, o.ShippingCost)
	assert.Equal(t, 50.00, o.Total)
}

func TestCheckout_EmptyCart(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Checkout(context.Background(), cart.NewStore(), testShipping(), "user-1")
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, repo.orders)
}

func TestCheckout_RepoFailureKeepsCart(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("db down")}
	svc := NewService(repo)

	store := filledCart(20.00)
	_, err := svc.Checkout(context.Background(), store, testShipping(), "user-1")

	assert.Error(t, err)
	assert.Equal(t, 1, store.ItemCount())
}

func TestCheckout_GuestOrder(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	o, err := svc.Checkout(context.Background(), filledCart(10.00), testShipping(), "")
	require.NoError(t, err)
	assert.Empty(t, o.UserID)
}

func TestCheckout_UniqueOrderIDs(t *testing.T) {
	svc := NewService(&fakeRepo{})

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		o, err := svc.Checkout(context.Background(), filledCart(10.00), testShipping(), "user-1")
		require.NoError(t, err)
		assert.False(t, seen[o.ID], "duplicate order id %s", o.ID)
		seen[o.ID] = true
	}
}

func TestHistory(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Checkout(context.Background(), filledCart(10.00), testShipping(), "user-1")
	require.NoError(t, err)
	_, err = svc.Checkout(context.Background(), filledCart(20.00), testShipping(), "user-2")
	require.NoError(t, err)

	orders, err := svc.History(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "user-1", orders[0].UserID)
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	o, err := svc.Checkout(context.Background(), filledCart(10.00), testShipping(), "user-1")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), o.ID, StatusShipped))
	assert.Equal(t, StatusShipped, repo.orders[0].Status)

	t.Run("rejects unknown status", func(t *testing.T) {
		assert.Error(t, svc.UpdateStatus(context.Background(), o.ID, "LOST"))
	})

	t.Run("unknown order", func(t *testing.T) {
		assert.ErrorIs(t, svc.UpdateStatus(context.Background(), "ORD-MISSING", StatusShipped), ErrNotFound)
	})
}

func TestValidateStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.NoError(t, ValidateStatus(s))
	}
	assert.Error(t, ValidateStatus("shipped"))
	assert.Error(t, ValidateStatus(""))
}
