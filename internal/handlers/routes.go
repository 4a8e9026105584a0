package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"transparency/internal/apierror"
	"transparency/internal/nav"
)

// Routes mounts the public API behind the given middlewares. Read endpoints go through the
// response cache.
func (h *Handler) Routes(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.PingHandler)
		r.Post("/search", h.SubmitSearchHandler)

		r.Group(func(r chi.Router) {
			r.Use(h.Cached)

			// candidates
			r.Get("/candidates", h.GetCandidatesHandler)
			r.Get("/candidates/facets", h.GetCandidateFacetsHandler)
			r.Get("/candidates/{candidateId}", h.GetCandidateHandler)
			// commissions
			r.Get("/commissions", h.GetCommissionsHandler)
			r.Get("/commissions/facets", h.GetCommissionFacetsHandler)
			r.Get("/commissions/{commissionId}", h.GetCommissionHandler)
			// institutions
			r.Get("/institutions", h.GetInstitutionsHandler)
			r.Get("/institutions/facets", h.GetInstitutionFacetsHandler)
			r.Get("/institutions/{institutionId}", h.GetInstitutionHandler)
			// news
			r.Get("/news", h.GetNewsHandler)
			r.Get("/news/facets", h.GetNewsFacetsHandler)
			r.Get("/news/{articleId}", h.GetArticleHandler)

			r.Get("/search", h.SearchHandler)
			r.Get("/stats", h.GetStatsHandler)
			r.Get("/graph", h.GetGraphHandler)
		})
	})

	r.With(h.Cached).Get(nav.SearchResultsPath, h.SearchHandler)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apierror.Write(w, apierror.New(http.StatusNotFound, apierror.ErrCodeNotFound, "route not found"))
	})
	return r
}
