package handlers

import (
	"transparency/internal/catalog"
	"transparency/models"
)

// CatalogReader is the read-only record store the handlers serve from. *catalog.Catalog
// implements it.
type CatalogReader interface {
	Candidates() []models.Candidate
	Commissions() []models.Commission
	Institutions() []models.Institution
	News() []models.NewsArticle

	Candidate(id string) (models.Candidate, bool)
	Commission(id string) (models.Commission, bool)
	Institution(id string) (models.Institution, bool)
	InstitutionByName(name string) (models.Institution, bool)
	Article(id string) (models.NewsArticle, bool)

	CommissionCandidates(commissionID string) []models.Candidate
	InstitutionCandidates(name string) []models.Candidate
	CandidateCommission(cand models.Candidate) (models.Commission, bool)

	Stats() catalog.Stats
	Graph() catalog.Graph
	Search(text string, limit int) catalog.SearchResults
}
