package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"transparency/internal/apierror"
	"transparency/internal/catalog"
	"transparency/models"
)

type commissionResponse struct {
	Commission      models.Commission  `json:"commission"`
	StatusTone      models.StatusTone  `json:"statusTone"`
	Progress        int                `json:"progress"`
	CompletedPhases int                `json:"completedPhases"`
	CurrentPhase    *models.Phase      `json:"currentPhase,omitempty"`
	Candidates      []models.Candidate `json:"candidates"`
}

func (h *Handler) GetCommissionsHandler(w http.ResponseWriter, r *http.Request) {
	listHandler(h, catalog.CommissionSchema, h.Catalog.Commissions)(w, r)
}

func (h *Handler) GetCommissionFacetsHandler(w http.ResponseWriter, r *http.Request) {
	facetsHandler(h, catalog.CommissionSchema, h.Catalog.Commissions)(w, r)
}

// GetCommissionHandler returns a commission with its progress and participating candidates.
func (h *Handler) GetCommissionHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "commissionId")
	com, ok := h.Catalog.Commission(id)
	if !ok {
		apierror.Write(w, apierror.NotFound("commission", id))
		return
	}

	resp := commissionResponse{
		Commission:      com,
		StatusTone:      models.CommissionTone(com.Status),
		Progress:        com.Progress(),
		CompletedPhases: com.CompletedPhases(),
		Candidates:      h.Catalog.CommissionCandidates(com.ID),
	}
	if phase, ok := com.CurrentPhase(); ok {
		resp.CurrentPhase = &phase
	}
	writeJSON(w, http.StatusOK, resp)
}
