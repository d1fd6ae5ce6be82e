package wishlist

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookshop/internal/catalog"
	"bookshop/internal/httpx"
)

type HTTPHandler struct {
	manager *Manager
	books   *catalog.Service
	share   *ShareService
}

func NewHTTPHandler(manager *Manager, books *catalog.Service, share *ShareService) *HTTPHandler {
	return &HTTPHandler{manager: manager, books: books, share: share}
}

func (h *HTTPHandler) ownerStore(w http.ResponseWriter, r *http.Request) (*Store, bool) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return nil, false
	}
	return h.manager.Get(userID), true
}

// List handles GET /wishlist
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	store, ok := h.ownerStore(w, r)
	if !ok {
		return
	}

	httpx.JSONSuccess(w, r, store.Items(), map[string]any{
		"count": store.Count(),
	})
}

type addItemReq struct {
	BookID string `json:"book_id" validate:"required"`
}

// AddItem handles POST /wishlist/items
func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	store, ok := h.ownerStore(w, r)
	if !ok {
		return
	}

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

	message := "Added to wishlist"
	if store.Add(book) == OutcomeAlreadyPresent {
		message = "Already in wishlist"
	}

	httpx.JSONSuccess(w, r, store.Items(), map[string]any{
		"count":   store.Count(),
		"message": message,
	})
}

// RemoveItem handles DELETE /wishlist/items/{id}
func (h *HTTPHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	store, ok := h.ownerStore(w, r)
	if !ok {
		return
	}

	bookID := r.PathValue("id")
	if bookID == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return
	}

	store.Remove(bookID)
	httpx.JSONSuccess(w, r, store.Items(), map[string]any{
		"count":   store.Count(),
		"message": "Removed from wishlist",
	})
}

// Share handles POST /wishlist/share
func (h *HTTPHandler) Share(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}
	store := h.manager.Get(userID)

	code, url, err := h.share.Share(r.Context(), userID, store)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "SHARE_FAILED", "Failed to share wishlist", nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, map[string]any{
		"share_code": code,
		"url":        url,
	})
}

// Resolve handles GET /shared-wishlist/{code}. No authentication: share
// links are readable by anyone holding the code.
func (h *HTTPHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid share code", nil)
		return
	}

	snap, err := h.share.Resolve(r.Context(), code)
	if err != nil {
		if errors.Is(err, ErrShareNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Shared wishlist not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, snap, nil)
}
