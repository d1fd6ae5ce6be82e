package newsletter

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookshop/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type subscribeReq struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe handles POST /newsletter
func (h *HTTPHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	if err := h.service.Subscribe(r.Context(), req.Email); err != nil {
		if errors.Is(err, ErrAlreadySubscribed) {
			httpx.JSONSuccess(w, r, nil, map[string]any{
				"message": "You're already subscribed!",
			})
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, map[string]any{
		"message": "Thanks for subscribing!",
	})
}
