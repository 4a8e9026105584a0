package handlers

import (
	"net/http"
	"strings"

	"transparency/internal/apierror"
	"transparency/internal/nav"
)

// SearchHandler runs the site-wide search: GET /api/search?q= and GET /buscar?q=
func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, h.Catalog.Search(q, searchLimit(r, h.opts.SearchLimit)))
}

// SubmitSearchHandler handles the search bar form: POST /api/search redirects to the results page.
func (h *Handler) SubmitSearchHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	if err := r.ParseForm(); err != nil {
		apierror.Write(w, apierror.New(http.StatusBadRequest, apierror.ErrCodeInvalidParam, "invalid form body"))
		return
	}

	if !nav.SubmitSearch(nav.NewHTTPNavigator(w, r), r.FormValue("q")) {
		apierror.Write(w, apierror.New(http.StatusBadRequest, apierror.ErrCodeInvalidParam, "q is required"))
	}
}
