package query

import (
	"sort"

	"transparency/models"
)

// Facet is one distinct value of a categorical field with its share of the collection.
type Facet struct {
	Value      string `json:"value"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// Facets counts the distinct values of field in first-occurrence order.
// Empty values are not a bucket.
func Facets[T any](records []T, field Field[T]) []Facet {
	return FacetsMulti(records, func(r T) []string { return []string{field(r)} })
}

// FacetsMulti counts the values of a list field. A value repeated within one record counts once
// for that record; percentages are relative to the number of records.
func FacetsMulti[T any](records []T, field ListField[T]) []Facet {
	index := make(map[string]int)
	facets := []Facet{}
	for _, r := range records {
		seen := make(map[string]bool)
		for _, v := range field(r) {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			i, ok := index[v]
			if !ok {
				i = len(facets)
				index[v] = i
				facets = append(facets, Facet{Value: v})
			}
			facets[i].Count++
		}
	}
	for i := range facets {
		facets[i].Percentage = models.Percent(facets[i].Count, len(records))
	}
	return facets
}

// Distinct lists the distinct non-empty values of field in first-occurrence order.
func Distinct[T any](records []T, field Field[T]) []string {
	facets := Facets(records, field)
	values := make([]string, len(facets))
	for i, f := range facets {
		values[i] = f.Value
	}
	return values
}

// SortFacetsByCount orders facets by descending count, then alphabetically. The input is not modified.
func SortFacetsByCount(facets []Facet) []Facet {
	out := append([]Facet(nil), facets...)
	c := acquireCollator()
	defer releaseCollator(c)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return c.CompareString(out[i].Value, out[j].Value) < 0
	})
	return out
}

// FacetsFor computes facets for a named filter or list field of the schema.
func (s *Schema[T]) FacetsFor(records []T, name string) ([]Facet, bool) {
	if f, ok := s.Filters[name]; ok {
		return Facets(records, f), true
	}
	if f, ok := s.Lists[name]; ok {
		return FacetsMulti(records, f), true
	}
	return nil, false
}
