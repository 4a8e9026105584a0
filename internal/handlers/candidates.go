package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"transparency/internal/apierror"
	"transparency/internal/catalog"
	"transparency/models"
)

type candidateResponse struct {
	Candidate   models.Candidate    `json:"candidate"`
	StatusTone  models.StatusTone   `json:"statusTone"`
	Commission  *models.Commission  `json:"commission,omitempty"`
	Institution *models.Institution `json:"institution,omitempty"`
}

// GetCandidatesHandler lists candidates: GET /api/candidates
func (h *Handler) GetCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	listHandler(h, catalog.CandidateSchema, h.Catalog.Candidates)(w, r)
}

// GetCandidateFacetsHandler: GET /api/candidates/facets?field=
func (h *Handler) GetCandidateFacetsHandler(w http.ResponseWriter, r *http.Request) {
	facetsHandler(h, catalog.CandidateSchema, h.Catalog.Candidates)(w, r)
}

// GetCandidateHandler returns one profile with its commission and institution resolved.
func (h *Handler) GetCandidateHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "candidateId")
	cand, ok := h.Catalog.Candidate(id)
	if !ok {
		apierror.Write(w, apierror.NotFound("candidate", id))
		return
	}

	resp := candidateResponse{Candidate: cand, StatusTone: models.CandidateTone(cand.Status)}
	if com, ok := h.Catalog.CandidateCommission(cand); ok {
		resp.Commission = &com
	}
	if inst, ok := h.Catalog.InstitutionByName(cand.Institution); ok {
		resp.Institution = &inst
	}
	writeJSON(w, http.StatusOK, resp)
}
