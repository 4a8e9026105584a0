package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"transparency/internal/apierror"
	"transparency/internal/catalog"
	"transparency/models"
)

type institutionResponse struct {
	Institution  models.Institution  `json:"institution"`
	LatestBudget *models.BudgetEntry `json:"latestBudget,omitempty"`
	Candidates   []models.Candidate  `json:"candidates"`
}

func (h *Handler) GetInstitutionsHandler(w http.ResponseWriter, r *http.Request) {
	listHandler(h, catalog.InstitutionSchema, h.Catalog.Institutions)(w, r)
}

func (h *Handler) GetInstitutionFacetsHandler(w http.ResponseWriter, r *http.Request) {
	facetsHandler(h, catalog.InstitutionSchema, h.Catalog.Institutions)(w, r)
}

func (h *Handler) GetInstitutionHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "institutionId")
	inst, ok := h.Catalog.Institution(id)
	if !ok {
		apierror.Write(w, apierror.NotFound("institution", id))
		return
	}

	resp := institutionResponse{Institution: inst, Candidates: h.Catalog.InstitutionCandidates(inst.Name)}
	if b, ok := inst.LatestBudget(); ok {
		resp.LatestBudget = &b
	}
	writeJSON(w, http.StatusOK, resp)
}
