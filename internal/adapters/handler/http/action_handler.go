package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vncsmyrnk/versus/internal/core/domain"
	"github.com/vncsmyrnk/versus/internal/core/ports"
)

// ActionHandler serves the two store verbs on a single endpoint:
// GET ?action=list returns the whole collection as a JSON array, and
// POST {"action":"update","data":[...]} overwrites it.
type ActionHandler struct {
	service ports.StoreService
}

func NewActionHandler(service ports.StoreService) *ActionHandler {
	return &ActionHandler{
		service: service,
	}
}

type updateRequest struct {
	Action string              `json:"action"`
	Data   []domain.Comparison `json:"data"`
}

func (h *ActionHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("action") != "list" {
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	items, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(items); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *ActionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Action != "update" {
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	if err := h.service.Replace(r.Context(), req.Data); err != nil {
		if errors.Is(err, domain.ErrDuplicateID) ||
			errors.Is(err, domain.ErrMissingID) ||
			errors.Is(err, domain.ErrMissingItemName) ||
			errors.Is(err, domain.ErrNegativeVotes) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
