package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/nadavsagiv/beachrental2/internal/domain"
	"github.com/nadavsagiv/beachrental2/internal/repository"
	"github.com/nadavsagiv/beachrental2/internal/service"

	"github.com/gorilla/mux"
)

// RentalHandler exposes the rental lifecycle over HTTP JSON.
type RentalHandler struct {
	svc service.RentalService
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

// List handles GET /api/rentals with optional ?type= and ?status=active|completed.
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter repository.RentalFilter

	if v := r.URL.Query().Get("type"); v != "" {
		t := domain.RentalType(v)
		if !t.Valid() {
			writeError(w, domain.NewValidationError("type", "must be BED, SUP or SNORKEL"))
			return
		}
		filter.Type = &t
	}
	switch r.URL.Query().Get("status") {
	case "":
	case "active":
		active := true
		filter.Active = &active
	case "completed":
		active := false
		filter.Active = &active
	default:
		writeError(w, domain.NewValidationError("status", "must be active or completed"))
		return
	}

	rentals, err := h.svc.ListRentals(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, rentals)
}

// Create handles POST /api/rentals.
func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("body", "malformed JSON"))
		return
	}

	rental, err := h.svc.CreateRental(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

// Get handles GET /api/rentals/{id}.
func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := rentalID(w, r)
	if !ok {
		return
	}

	rental, err := h.svc.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// Update handles PATCH /api/rentals/{id}.
func (h *RentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := rentalID(w, r)
	if !ok {
		return
	}

	var patch service.UpdateRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, domain.NewValidationError("body", "malformed JSON"))
		return
	}

	rental, err := h.svc.UpdateRental(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// End handles POST /api/rentals/{id}/end.
func (h *RentalHandler) End(w http.ResponseWriter, r *http.Request) {
	id, ok := rentalID(w, r)
	if !ok {
		return
	}

	rental, err := h.svc.EndRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func rentalID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeError(w, domain.NewValidationError("id", "must be an integer"))
		return 0, false
	}
	return int32(id), true
}
