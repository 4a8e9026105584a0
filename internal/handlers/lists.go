package handlers

import (
	"net/http"
	"strings"

	"transparency/internal/apierror"
	"transparency/internal/metrics"
	"transparency/internal/query"
)

// listHandler runs the collection's pipeline with the request's parameters.
func listHandler[T any](h *Handler, schema *query.Schema[T], records func() []T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := h.parseListParams(r.URL.Query(), schema.RangeNames())

		var res query.Result[T]
		if h.opts.Strict {
			var err error
			res, err = schema.Run(records(), p)
			if err != nil {
				metrics.QueryRejected(schema.Name)
				apierror.Write(w, apierror.FromQuery(err))
				return
			}
		} else {
			res = schema.RunLenient(records(), p)
			for _, warning := range res.Warnings {
				h.Log.Warn("ignoring list parameter", map[string]interface{}{
					"collection": schema.Name,
					"reason":     warning,
				})
			}
		}
		metrics.ObserveQuery(schema.Name, res.Matched, len(res.Warnings))

		writeJSON(w, http.StatusOK, res)
	}
}

type facetsResponse struct {
	Field  string        `json:"field"`
	Total  int           `json:"total"`
	Facets []query.Facet `json:"facets"`
}

// facetsHandler reports the value distribution of one filterable or list field over the
// whole collection. sort=count orders by frequency instead of first occurrence.
func facetsHandler[T any](h *Handler, schema *query.Schema[T], records func() []T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		field := strings.TrimSpace(r.URL.Query().Get("field"))
		if field == "" {
			apierror.Write(w, apierror.New(http.StatusBadRequest, apierror.ErrCodeInvalidParam, "field parameter is required"))
			return
		}

		all := records()
		facets, ok := schema.FacetsFor(all, field)
		if !ok {
			e := apierror.New(http.StatusBadRequest, apierror.ErrCodeUnknownFacet, "unknown facet field "+field)
			e.Details = strings.Join(append(schema.FilterNames(), schema.ListNames()...), ",")
			apierror.Write(w, e)
			return
		}
		if r.URL.Query().Get("sort") == "count" {
			facets = query.SortFacetsByCount(facets)
		}

		writeJSON(w, http.StatusOK, facetsResponse{Field: field, Total: len(all), Facets: facets})
	}
}
