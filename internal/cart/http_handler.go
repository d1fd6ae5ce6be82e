package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookshop/internal/catalog"
	"bookshop/internal/httpx"

	"github.com/google/uuid"
)

// CartTokenHeader identifies the caller's cart. The first cart request
// without one gets a fresh token back in the same header.
const CartTokenHeader = "X-Cart-Token"

type HTTPHandler struct {
	manager *Manager
	books   *catalog.Service
}

func NewHTTPHandler(manager *Manager, books *catalog.Service) *HTTPHandler {
	return &HTTPHandler{manager: manager, books: books}
}

func (h *HTTPHandler) store(w http.ResponseWriter, r *http.Request) *Store {
	token := r.Header.Get(CartTokenHeader)
	if token == "" {
		token = uuid.New().String()
	}
	w.Header().Set(CartTokenHeader, token)
	return h.manager.Get(token)
}

// Get handles GET /cart
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, Summarize(h.store(w, r)), nil)
}

type addItemReq struct {
	BookID string `json:"book_id" validate:"required"`
}

// AddItem handles POST /cart/items
func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	book, err := h.books.GetByID(r.Context(), req.BookID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	store := h.store(w, r)
	message := "Added to cart"
	if store.Add(book) == OutcomeQuantityUpdated {
		message = "Quantity updated"
	}

	httpx.JSONSuccess(w, r, Summarize(store), map[string]any{
		"message": message,
	})
}

type updateItemReq struct {
	Quantity int `json:"quantity"`
}

// UpdateItem handles PATCH /cart/items/{id}
func (h *HTTPHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")
	if bookID == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return
	}

	var req updateItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	store := h.store(w, r)
	store.SetQuantity(bookID, req.Quantity)
	httpx.JSONSuccess(w, r, Summarize(store), nil)
}

// RemoveItem handles DELETE /cart/items/{id}
func (h *HTTPHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")
	if bookID == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return
	}

	store := h.store(w, r)
	store.Remove(bookID)
	httpx.JSONSuccess(w, r, Summarize(store), map[string]any{
		"message": "Item removed from cart",
	})
}

// Clear handles DELETE /cart
func (h *HTTPHandler) Clear(w http.ResponseWriter, r *http.Request) {
	store := h.store(w, r)
	store.Clear()
	httpx.JSONSuccessNoContent(w)
}
