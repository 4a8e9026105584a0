package catalog

import (
	"transparency/internal/query"
	"transparency/models"
)

// Stats summarizes the whole catalog for the home page panels.
type Stats struct {
	Candidates             int           `json:"candidates"`
	Commissions            int           `json:"commissions"`
	Institutions           int           `json:"institutions"`
	News                   int           `json:"news"`
	CandidateStatuses      []query.Facet `json:"candidateStatuses"`
	Specializations        []query.Facet `json:"specializations"`
	CommissionStatuses     []query.Facet `json:"commissionStatuses"`
	ActiveCommissions      int           `json:"activeCommissions"`
	AverageProgress        int           `json:"averageProgress"`
	PositionsAvailable     int           `json:"positionsAvailable"`
	NewsCategories         []query.Facet `json:"newsCategories"`
	AverageYearsExperience int           `json:"averageYearsExperience"`
}

// Stats computes facet panels over the full, unfiltered collections.
func (c *Catalog) Stats() Stats {
	s := Stats{
		Candidates:         len(c.doc.Candidates),
		Commissions:        len(c.doc.Commissions),
		Institutions:       len(c.doc.Institutions),
		News:               len(c.doc.News),
		CandidateStatuses:  query.Facets(c.doc.Candidates, CandidateSchema.Filters["status"]),
		Specializations:    query.SortFacetsByCount(query.Facets(c.doc.Candidates, CandidateSchema.Filters["specialization"])),
		CommissionStatuses: query.Facets(c.doc.Commissions, CommissionSchema.Filters["status"]),
		NewsCategories:     query.Facets(c.doc.News, NewsSchema.Filters["category"]),
	}

	progress := 0
	for _, com := range c.doc.Commissions {
		if com.Status == models.CommissionInProgress {
			s.ActiveCommissions++
		}
		s.PositionsAvailable += com.PositionsAvailable
		progress += com.Progress()
	}
	if n := len(c.doc.Commissions); n > 0 {
		s.AverageProgress = roundDiv(progress, n)
	}

	years := 0
	for _, cand := range c.doc.Candidates {
		years += cand.YearsOfExperience
	}
	if n := len(c.doc.Candidates); n > 0 {
		s.AverageYearsExperience = roundDiv(years, n)
	}
	return s
}

func roundDiv(sum, n int) int {
	return (2*sum + n) / (2 * n)
}

// SearchResults groups the site-wide search hits per collection.
type SearchResults struct {
	Query        string                           `json:"query"`
	Total        int                              `json:"total"`
	Candidates   query.Result[models.Candidate]   `json:"candidates"`
	Commissions  query.Result[models.Commission]  `json:"commissions"`
	Institutions query.Result[models.Institution] `json:"institutions"`
	News         query.Result[models.NewsArticle] `json:"news"`
}

// Search runs the same free-text query against every collection in its default order.
// A positive limit caps the hits returned per collection; counts are unaffected.
func (c *Catalog) Search(text string, limit int) SearchResults {
	var page *query.Page
	if limit > 0 {
		page = &query.Page{Size: limit, Number: 1}
	}
	p := query.Params{Search: text, Page: page}

	res := SearchResults{
		Query:        text,
		Candidates:   CandidateSchema.RunLenient(c.doc.Candidates, p),
		Commissions:  CommissionSchema.RunLenient(c.doc.Commissions, p),
		Institutions: InstitutionSchema.RunLenient(c.doc.Institutions, p),
		News:         NewsSchema.RunLenient(c.doc.News, p),
	}
	res.Total = res.Candidates.Matched + res.Commissions.Matched + res.Institutions.Matched + res.News.Matched
	return res
}
