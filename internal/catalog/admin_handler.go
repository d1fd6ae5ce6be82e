package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookshop/internal/httpx"
)

// AdminHandler exposes the book CRUD surface of the admin console. Routes
// using it must be wrapped in the auth and admin-only middleware.
type AdminHandler struct {
	service *Service
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

type bookReq struct {
	Title           string  `json:"title" validate:"required"`
	Author          string  `json:"author" validate:"required"`
	Price           float64 `json:"price" validate:"gte=0"`
	Rating          float64 `json:"rating" validate:"gte=0,lte=5"`
	Format          string  `json:"format" validate:"required,oneof=Hardcover Paperback eBook"`
	Genre           string  `json:"genre" validate:"required"`
	Cover           *string `json:"cover,omitempty" validate:"omitempty,url"`
	Description     string  `json:"description"`
	ISBN            string  `json:"isbn" validate:"omitempty,isbn"`
	PublicationDate string  `json:"publication_date"`
	InStock         int     `json:"in_stock" validate:"gte=0"`
}

func (req *bookReq) toBook(id string) Book {
	return Book{
		ID:              id,
		Title:           req.Title,
		Author:          req.Author,
		Price:           req.Price,
		Rating:          req.Rating,
		Format:          req.Format,
		Genre:           req.Genre,
		Cover:           req.Cover,
		Description:     req.Description,
		ISBN:            req.ISBN,
		PublicationDate: req.PublicationDate,
		InStock:         req.InStock,
	}
}

// Create handles POST /admin/books
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	b := req.toBook("")
	if err := h.service.Create(r.Context(), &b); err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, b)
}

// Update handles PUT /admin/books/{id}
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return
	}

	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	b := req.toBook(id)
	if err := h.service.Update(r.Context(), &b); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, b, nil)
}

// Delete handles DELETE /admin/books/{id}
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessNoContent(w)
}
