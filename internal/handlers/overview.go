package handlers

import "net/http"

// GetStatsHandler: GET /api/stats
func (h *Handler) GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Stats())
}

// GetGraphHandler serves the relationship graph: GET /api/graph
func (h *Handler) GetGraphHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Graph())
}
