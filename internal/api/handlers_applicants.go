package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleGetApplicant returns the stored record for an applicant ID.
func (s *Server) handleGetApplicant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "applicantID")

	rec, err := s.records.GetApplicant(r.Context(), id)
	if err != nil {
		jsonError(w, "failed to fetch applicant: "+err.Error(), http.StatusBadGateway)
		return
	}
	if rec == nil {
		jsonError(w, "applicant not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}
