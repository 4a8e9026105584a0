// Package query implements the list pipeline shared by every record collection:
// free-text search, equality and range filters, ordering and pagination, plus the
// facet counts used to populate filter menus.
//
// Everything here is a pure function of its inputs. Record slices are never modified.
package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// All is the filter value meaning "no constraint on this field".
const All = "all"

var (
	ErrUnknownSortKey = errors.New("unknown sort key")
	ErrUnknownFilter  = errors.New("unknown filter field")
	ErrUnknownBucket  = errors.New("unknown range bucket")
)

// Page selects a 1-indexed window of Size records.
type Page struct {
	Size   int
	Number int
}

// Params are the user-selected options of one query.
type Params struct {
	Search  string
	Filters map[string]string
	Ranges  map[string]string
	Sort    SortKey
	Page    *Page
}

// Result is the ordered window plus the counts needed for "showing X of Y" summaries.
type Result[T any] struct {
	Items      []T     `json:"items"`
	Total      int     `json:"total"`
	Matched    int     `json:"matched"`
	Sort       SortKey `json:"sort,omitempty"`
	Page       int     `json:"page,omitempty"`
	PageSize   int     `json:"pageSize,omitempty"`
	TotalPages int     `json:"totalPages,omitempty"`

	// Warnings lists the parameters a lenient run had to ignore.
	Warnings []string `json:"-"`
}

type predicate[T any] func(T) bool

// Run executes the pipeline and fails on any parameter the schema does not declare.
func (s *Schema[T]) Run(records []T, p Params) (Result[T], error) {
	return s.run(records, p, true)
}

// RunLenient executes the pipeline, ignoring undeclared filters and keeping collection
// order for an undeclared sort key. Every ignored parameter is reported in Result.Warnings.
func (s *Schema[T]) RunLenient(records []T, p Params) Result[T] {
	res, _ := s.run(records, p, false)
	return res
}

func (s *Schema[T]) run(records []T, p Params, strict bool) (Result[T], error) {
	var warnings []string
	reject := func(err error) error {
		if strict {
			return err
		}
		warnings = append(warnings, err.Error())
		return nil
	}

	key := p.Sort
	if key == "" {
		key = s.DefaultSort
	}
	var order Comparator[T]
	if key != "" {
		c, ok := s.Sorts[key]
		if !ok {
			if err := reject(fmt.Errorf("%w: %s: %q", ErrUnknownSortKey, s.Name, key)); err != nil {
				return Result[T]{}, err
			}
			key = ""
		}
		order = c
	}

	preds, err := s.predicates(p, reject)
	if err != nil {
		return Result[T]{}, err
	}

	matched := make([]T, 0, len(records))
	for _, r := range records {
		if matchesAll(r, preds) {
			matched = append(matched, r)
		}
	}

	if order != nil {
		c := acquireCollator()
		sort.SliceStable(matched, func(i, j int) bool {
			return order(c, matched[i], matched[j]) < 0
		})
		releaseCollator(c)
	}

	res := Result[T]{
		Items:    matched,
		Total:    len(records),
		Matched:  len(matched),
		Sort:     key,
		Warnings: warnings,
	}
	if p.Page != nil {
		res.Items, res.Page, res.PageSize, res.TotalPages = paginate(matched, *p.Page)
	}
	return res, nil
}

func (s *Schema[T]) predicates(p Params, reject func(error) error) ([]predicate[T], error) {
	var preds []predicate[T]

	if p.Search != "" {
		needle := strings.ToLower(p.Search)
		fields, lists := s.Searchable, s.SearchableLists
		preds = append(preds, func(r T) bool {
			for _, f := range fields {
				if strings.Contains(strings.ToLower(f(r)), needle) {
					return true
				}
			}
			for _, l := range lists {
				for _, v := range l(r) {
					if strings.Contains(strings.ToLower(v), needle) {
						return true
					}
				}
			}
			return false
		})
	}

	for _, name := range sortedKeys(p.Filters) {
		f, ok := s.Filters[name]
		if !ok {
			if err := reject(fmt.Errorf("%w: %s: %q", ErrUnknownFilter, s.Name, name)); err != nil {
				return nil, err
			}
			continue
		}
		want := p.Filters[name]
		if want == "" || want == All {
			continue
		}
		preds = append(preds, func(r T) bool { return f(r) == want })
	}

	for _, name := range sortedKeys(p.Ranges) {
		rng, ok := s.Ranges[name]
		if !ok {
			if err := reject(fmt.Errorf("%w: %s: %q", ErrUnknownFilter, s.Name, name)); err != nil {
				return nil, err
			}
			continue
		}
		bucketName := p.Ranges[name]
		if bucketName == "" || bucketName == All {
			continue
		}
		b, ok := rng.bucket(bucketName)
		if !ok {
			if err := reject(fmt.Errorf("%w: %s: %s=%q", ErrUnknownBucket, s.Name, name, bucketName)); err != nil {
				return nil, err
			}
			continue
		}
		value := rng.Value
		preds = append(preds, func(r T) bool { return b.Contains(value(r)) })
	}

	return preds, nil
}

func matchesAll[T any](r T, preds []predicate[T]) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

// paginate clamps malformed parameters and returns an empty window past the last page.
func paginate[T any](items []T, pg Page) (window []T, number, size, totalPages int) {
	size = pg.Size
	if size < 1 {
		size = 1
	}
	number = pg.Number
	if number < 1 {
		number = 1
	}
	if len(items) > 0 {
		totalPages = (len(items)-1)/size + 1
	}

	if number > totalPages {
		return []T{}, number, size, totalPages
	}
	start := (number - 1) * size
	end := len(items)
	if size < end-start {
		end = start + size
	}
	return items[start:end], number, size, totalPages
}
