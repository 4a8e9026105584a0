// Package catalog is the read-only record store: the four collections published by the site,
// their id indexes, the per-collection query schemas and the views derived from them.
package catalog

import (
	"errors"
	"fmt"

	"transparency/models"
)

var ErrDuplicateID = errors.New("duplicate record id")

// Document is the serialized form of a whole catalog.
type Document struct {
	Candidates   []models.Candidate   `json:"candidates"`
	Commissions  []models.Commission  `json:"commissions"`
	Institutions []models.Institution `json:"institutions"`
	News         []models.NewsArticle `json:"news"`
}

// Catalog holds immutable record collections. It is safe for concurrent readers;
// the slices it hands out must not be modified.
type Catalog struct {
	doc Document

	candidateIdx   map[string]int
	commissionIdx  map[string]int
	institutionIdx map[string]int
	institutionByN map[string]int
	newsIdx        map[string]int
}

// New indexes the collections, rejecting empty or repeated ids.
func New(doc Document) (*Catalog, error) {
	c := &Catalog{doc: doc}
	var err error
	if c.candidateIdx, err = index("candidates", doc.Candidates, func(r models.Candidate) string { return r.ID }); err != nil {
		return nil, err
	}
	if c.commissionIdx, err = index("commissions", doc.Commissions, func(r models.Commission) string { return r.ID }); err != nil {
		return nil, err
	}
	if c.institutionIdx, err = index("institutions", doc.Institutions, func(r models.Institution) string { return r.ID }); err != nil {
		return nil, err
	}
	if c.newsIdx, err = index("news", doc.News, func(r models.NewsArticle) string { return r.ID }); err != nil {
		return nil, err
	}
	c.institutionByN = make(map[string]int, len(doc.Institutions))
	for i, inst := range doc.Institutions {
		if _, ok := c.institutionByN[inst.Name]; !ok {
			c.institutionByN[inst.Name] = i
		}
	}
	return c, nil
}

func index[T any](collection string, records []T, id func(T) string) (map[string]int, error) {
	idx := make(map[string]int, len(records))
	for i, r := range records {
		key := id(r)
		if key == "" {
			return nil, fmt.Errorf("%s: record #%d has no id", collection, i)
		}
		if _, ok := idx[key]; ok {
			return nil, fmt.Errorf("%w: %s: %q", ErrDuplicateID, collection, key)
		}
		idx[key] = i
	}
	return idx, nil
}

func (c *Catalog) Candidates() []models.Candidate     { return c.doc.Candidates }
func (c *Catalog) Commissions() []models.Commission   { return c.doc.Commissions }
func (c *Catalog) Institutions() []models.Institution { return c.doc.Institutions }
func (c *Catalog) News() []models.NewsArticle         { return c.doc.News }

// Document returns the collections in their serialized form.
func (c *Catalog) Document() Document { return c.doc }

// Candidate looks a candidate up by id. A miss is a normal outcome.
func (c *Catalog) Candidate(id string) (models.Candidate, bool) {
	return lookup(c.doc.Candidates, c.candidateIdx, id)
}

func (c *Catalog) Commission(id string) (models.Commission, bool) {
	return lookup(c.doc.Commissions, c.commissionIdx, id)
}

func (c *Catalog) Institution(id string) (models.Institution, bool) {
	return lookup(c.doc.Institutions, c.institutionIdx, id)
}

// InstitutionByName resolves the free-text institution reference carried by candidates.
func (c *Catalog) InstitutionByName(name string) (models.Institution, bool) {
	return lookup(c.doc.Institutions, c.institutionByN, name)
}

func (c *Catalog) Article(id string) (models.NewsArticle, bool) {
	return lookup(c.doc.News, c.newsIdx, id)
}

func lookup[T any](records []T, idx map[string]int, key string) (T, bool) {
	i, ok := idx[key]
	if !ok {
		var zero T
		return zero, false
	}
	return records[i], true
}

// CommissionCandidates lists the candidates taking part in a commission's process.
func (c *Catalog) CommissionCandidates(commissionID string) []models.Candidate {
	out := []models.Candidate{}
	if commissionID == "" {
		return out
	}
	for _, cand := range c.doc.Candidates {
		if models.Deref(cand.CommissionID) == commissionID {
			out = append(out, cand)
		}
	}
	return out
}

// InstitutionCandidates lists the candidates whose institution matches by name.
func (c *Catalog) InstitutionCandidates(name string) []models.Candidate {
	out := []models.Candidate{}
	for _, cand := range c.doc.Candidates {
		if cand.Institution == name {
			out = append(out, cand)
		}
	}
	return out
}

// CandidateCommission returns the commission a candidate applies through, if any.
func (c *Catalog) CandidateCommission(cand models.Candidate) (models.Commission, bool) {
	if cand.CommissionID == nil {
		return models.Commission{}, false
	}
	return c.Commission(*cand.CommissionID)
}
