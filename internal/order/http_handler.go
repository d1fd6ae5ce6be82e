package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookshop/internal/cart"
	"bookshop/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	carts   *cart.Manager
}

func NewHTTPHandler(service *Service, carts *cart.Manager) *HTTPHandler {
	return &HTTPHandler{service: service, carts: carts}
}

// Checkout handles POST /checkout. The cart is identified by the cart token
// header; the order is attached to the user when the request is
// authenticated.
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(cart.CartTokenHeader)
	if token == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Missing cart token", nil)
		return
	}

	var info ShippingInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(info); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Please fill in all shipping information", details)
		return
	}

	store := h.carts.Get(token)
	o, err := h.service.Checkout(r.Context(), store, info, httpx.UserIDFrom(r))
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			httpx.JSONError(w, r, http.StatusBadRequest, "EMPTY_CART", "Your cart is empty", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, o)
}

// History handles GET /orders
func (h *HTTPHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	orders, err := h.service.History(r.Context(), userID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, orders, map[string]any{
		"count": len(orders),
	})
}

// AdminList handles GET /admin/orders
func (h *HTTPHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListAll(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, orders, map[string]any{
		"count": len(orders),
	})
}

type updateStatusReq struct {
	Status string `json:"status" validate:"required"`
}

// AdminUpdateStatus handles PATCH /admin/orders/{id}
func (h *HTTPHandler) AdminUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid order id", nil)
		return
	}

	var req updateStatusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Order not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}

	httpx.JSONSuccessNoContent(w)
}
