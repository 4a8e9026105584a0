package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"transparency/internal/query"
)

// Reserved list parameters. Every other parameter names a filter or a range.
const (
	paramSearch   = "q"
	paramSort     = "sort"
	paramPage     = "page"
	paramPageSize = "pageSize"
)

func isReserved(name string) bool {
	switch name {
	case paramSearch, paramSort, paramPage, paramPageSize:
		return true
	}
	return false
}

// parseListParams maps the query string onto pipeline parameters. Pagination only applies
// when page is present; malformed numbers fall back to defaults.
func (h *Handler) parseListParams(values url.Values, ranges []string) query.Params {
	p := query.Params{
		Search:  strings.TrimSpace(values.Get(paramSearch)),
		Sort:    query.SortKey(strings.TrimSpace(values.Get(paramSort))),
		Filters: map[string]string{},
		Ranges:  map[string]string{},
	}

	isRange := make(map[string]bool, len(ranges))
	for _, name := range ranges {
		isRange[name] = true
	}
	for name := range values {
		if isReserved(name) {
			continue
		}
		if isRange[name] {
			p.Ranges[name] = values.Get(name)
		} else {
			p.Filters[name] = values.Get(name)
		}
	}

	if values.Has(paramPage) {
		p.Page = &query.Page{
			Number: atoiDefault(values.Get(paramPage), 1),
			Size:   atoiDefault(values.Get(paramPageSize), h.opts.DefaultPageSize),
		}
		if p.Page.Size > h.opts.MaxPageSize {
			p.Page.Size = h.opts.MaxPageSize
		}
	}
	return p
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}

func searchLimit(r *http.Request, def int) int {
	if s := r.URL.Query().Get("limit"); s != "" {
		return atoiDefault(s, def)
	}
	return def
}
