package http

import (
	"fmt"
	"net/http"

	"github.com/nadavsagiv/beachrental2/internal/domain"
	"github.com/nadavsagiv/beachrental2/internal/service"
)

// SummaryHandler exposes the daily aggregates and the day reset.
type SummaryHandler struct {
	svc service.SummaryService
}

func NewSummaryHandler(svc service.SummaryService) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

type resetDetails struct {
	RentalsDeleted int32 `json:"rentalsDeleted"`
}

type resetResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Summary *domain.DailySummary `json:"summary,omitempty"`
	Error   string               `json:"error,omitempty"`
	Details *resetDetails        `json:"details,omitempty"`
}

// Get handles GET /api/daily-summary. The summary is recomputed from the
// live record set on every call.
func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetDailySummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Reset handles POST /api/daily-summary/reset.
func (h *SummaryHandler) Reset(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ResetDay(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, resetResponse{
			Success: false,
			Error:   "day reset failed, no rentals were deleted",
		})
		return
	}

	writeJSON(w, http.StatusOK, resetResponse{
		Success: true,
		Message: fmt.Sprintf("day reset, %d rentals deleted", res.RentalsDeleted),
		Summary: &res.Summary,
		Details: &resetDetails{RentalsDeleted: res.RentalsDeleted},
	})
}
