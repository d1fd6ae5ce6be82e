package order

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookshop/internal/auth"
	"bookshop/internal/cart"
	"bookshop/internal/catalog"
	"bookshop/internal/httpx"
	"bookshop/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shippingBody() map[string]string {
	return map[string]string{
		"first_name": "Jane",
		"last_name":  "Doe",
		"email":      "jane@example.com",
		"address":    "1 Main St",
		"city":       "Springfield",
		"state":      "IL",
		"zip":        "62701",
	}
}

func TestHTTPHandler_Checkout(t *testing.T) {
	repo := &fakeRepo{}
	carts := cart.NewManager()
	handler := NewHTTPHandler(NewService(repo), carts)

	carts.Get("tok").Add(catalog.Book{ID: "b1", Title: "Dune", Price: 18.99})

	t.Run("places the order and clears the cart", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/checkout", shippingBody())
		r.Header.Set(cart.CartTokenHeader, "tok")

		handler.Checkout(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, repo.orders, 1)
		assert.Equal(t, 0, carts.Get("tok").ItemCount())

		data := testutil.DecodeBody(w)["data"].(map[string]interface{})
		assert.Equal(t, "PENDING", data["status"])
		assert.Equal(t, 18.99, data["subtotal"])
	})

	t.Run("second attempt hits an empty cart", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/checkout", shippingBody())
		r.Header.Set(cart.CartTokenHeader, "tok")

		handler.Checkout(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		errBody := testutil.DecodeBody(w)["error"].(map[string]interface{})
		assert.Equal(t, "EMPTY_CART", errBody["code"])
	})

	t.Run("missing cart token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/checkout", shippingBody())

		handler.Checkout(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("incomplete shipping info", func(t *testing.T) {
		body := shippingBody()
		delete(body, "zip")

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/checkout", body)
		r.Header.Set(cart.CartTokenHeader, "tok")

		handler.Checkout(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		errBody := testutil.DecodeBody(w)["error"].(map[string]interface{})
		assert.Equal(t, "Please fill in all shipping information", errBody["message"])
	})
}

func TestHTTPHandler_Checkout_AttachesUser(t *testing.T) {
	repo := &fakeRepo{}
	carts := cart.NewManager()
	handler := NewHTTPHandler(NewService(repo), carts)

	carts.Get("tok").Add(catalog.Book{ID: "b1", Price: 10})

	w := httptest.NewRecorder()
	r := testutil.NewRequest(http.MethodPost, "/checkout", shippingBody())
	r.Header.Set(cart.CartTokenHeader, "tok")
	r = r.WithContext(httpx.ContextWithUser(r.Context(), "user-1", auth.RoleUser))

	handler.Checkout(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.orders, 1)
	assert.Equal(t, "user-1", repo.orders[0].UserID)
}

func TestHTTPHandler_History(t *testing.T) {
	repo := &fakeRepo{orders: []Order{
		{ID: "ORD-1", UserID: "user-1"},
		{ID: "ORD-2", UserID: "user-2"},
	}}
	handler := NewHTTPHandler(NewService(repo), cart.NewManager())

	t.Run("requires auth", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.History(w, httptest.NewRequest(http.MethodGet, "/orders", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("lists own orders", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/orders", nil)
		r = r.WithContext(httpx.ContextWithUser(r.Context(), "user-1", auth.RoleUser))

		handler.History(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		meta := testutil.DecodeBody(w)["meta"].(map[string]interface{})
		assert.Equal(t, float64(1), meta["count"])
	})
}

func TestHTTPHandler_AdminUpdateStatus(t *testing.T) {
	repo := &fakeRepo{orders: []Order{{ID: "ORD-1", Status: StatusPending}}}
	handler := NewHTTPHandler(NewService(repo), cart.NewManager())

	t.Run("updates status", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPatch, "/admin/orders/ORD-1", map[string]string{"status": StatusShipped})
		r.SetPathValue("id", "ORD-1")

		handler.AdminUpdateStatus(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, StatusShipped, repo.orders[0].Status)
	})

	t.Run("unknown order", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPatch, "/admin/orders/ORD-MISSING", map[string]string{"status": StatusShipped})
		r.SetPathValue("id", "ORD-MISSING")

		handler.AdminUpdateStatus(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPatch, "/admin/orders/ORD-1", map[string]string{"status": "LOST"})
		r.SetPathValue("id", "ORD-1")

		handler.AdminUpdateStatus(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
