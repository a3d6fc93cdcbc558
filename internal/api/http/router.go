package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the rental and summary endpoints under /api.
func NewRouter(rentals *RentalHandler, summary *SummaryHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, Logging)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/rentals", rentals.List).Methods("GET")
	api.HandleFunc("/rentals", rentals.Create).Methods("POST")
	api.HandleFunc("/rentals/{id}", rentals.Get).Methods("GET")
	api.HandleFunc("/rentals/{id}", rentals.Update).Methods("PATCH")
	api.HandleFunc("/rentals/{id}/end", rentals.End).Methods("POST")
	api.HandleFunc("/daily-summary", summary.Get).Methods("GET")
	api.HandleFunc("/daily-summary/reset", summary.Reset).Methods("POST")
	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	return r
}
