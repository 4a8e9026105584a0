package query

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Field reads a string attribute of a record.
type Field[T any] func(T) string

// ListField reads a list-valued attribute of a record.
type ListField[T any] func(T) []string

// SortKey names one of the orderings a schema declares.
type SortKey string

// Bucket is a named inclusive numeric interval.
type Bucket struct {
	Name string
	Min  int
	Max  int
}

// Between builds the bucket [min, max].
func Between(name string, min, max int) Bucket {
	return Bucket{Name: name, Min: min, Max: max}
}

// AtLeast builds the open-ended bucket [min, +inf).
func AtLeast(name string, min int) Bucket {
	return Bucket{Name: name, Min: min, Max: math.MaxInt}
}

// Contains reports whether v lies within the bucket.
func (b Bucket) Contains(v int) bool {
	return v >= b.Min && v <= b.Max
}

// Range is a numeric field filtered through named buckets.
type Range[T any] struct {
	Value   func(T) int
	Buckets []Bucket
}

func (r Range[T]) bucket(name string) (Bucket, bool) {
	for _, b := range r.Buckets {
		if b.Name == name {
			return b, true
		}
	}
	return Bucket{}, false
}

// Schema declares which fields of a record collection are searchable, filterable and sortable.
// It is the only per-collection customization point of the pipeline.
type Schema[T any] struct {
	Name       string
	Searchable []Field[T]
	// SearchableLists are matched element by element, so a query never spans two values.
	SearchableLists []ListField[T]
	Filters         map[string]Field[T]
	Lists           map[string]ListField[T]
	Ranges          map[string]Range[T]
	Sorts           map[SortKey]Comparator[T]
	DefaultSort     SortKey
}

var ErrInvalidSchema = errors.New("invalid schema")

// Validate checks that every declared role is backed by an accessor or comparator.
func (s *Schema[T]) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidSchema)
	}
	for i, f := range s.Searchable {
		if f == nil {
			return fmt.Errorf("%w: %s: searchable field #%d is nil", ErrInvalidSchema, s.Name, i)
		}
	}
	for i, f := range s.SearchableLists {
		if f == nil {
			return fmt.Errorf("%w: %s: searchable list #%d is nil", ErrInvalidSchema, s.Name, i)
		}
	}
	for name, f := range s.Filters {
		if f == nil {
			return fmt.Errorf("%w: %s: filter %q has no accessor", ErrInvalidSchema, s.Name, name)
		}
	}
	for name, f := range s.Lists {
		if f == nil {
			return fmt.Errorf("%w: %s: list %q has no accessor", ErrInvalidSchema, s.Name, name)
		}
	}
	for name, r := range s.Ranges {
		if r.Value == nil {
			return fmt.Errorf("%w: %s: range %q has no accessor", ErrInvalidSchema, s.Name, name)
		}
		seen := make(map[string]bool, len(r.Buckets))
		for _, b := range r.Buckets {
			if b.Name == "" || b.Name == All {
				return fmt.Errorf("%w: %s: range %q has a reserved bucket name %q", ErrInvalidSchema, s.Name, name, b.Name)
			}
			if seen[b.Name] {
				return fmt.Errorf("%w: %s: range %q repeats bucket %q", ErrInvalidSchema, s.Name, name, b.Name)
			}
			if b.Min > b.Max {
				return fmt.Errorf("%w: %s: bucket %q is empty", ErrInvalidSchema, s.Name, b.Name)
			}
			seen[b.Name] = true
		}
	}
	for key, cmp := range s.Sorts {
		if cmp == nil {
			return fmt.Errorf("%w: %s: sort %q has no comparator", ErrInvalidSchema, s.Name, key)
		}
	}
	if s.DefaultSort != "" {
		if _, ok := s.Sorts[s.DefaultSort]; !ok {
			return fmt.Errorf("%w: %s: default sort %q is not declared", ErrInvalidSchema, s.Name, s.DefaultSort)
		}
	}
	return nil
}

// MustValidate panics on a misconfigured schema. Meant for package-level schema declarations.
func (s *Schema[T]) MustValidate() *Schema[T] {
	if err := s.Validate(); err != nil {
		panic(err)
	}
	return s
}

// SortKeys lists the declared sort keys in alphabetical order.
func (s *Schema[T]) SortKeys() []SortKey {
	keys := make([]SortKey, 0, len(s.Sorts))
	for k := range s.Sorts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// FilterNames lists the equality-filterable fields in alphabetical order.
func (s *Schema[T]) FilterNames() []string {
	return sortedKeys(s.Filters)
}

// RangeNames lists the range-filterable fields in alphabetical order.
func (s *Schema[T]) RangeNames() []string {
	return sortedKeys(s.Ranges)
}

// ListNames lists the list-valued fields in alphabetical order.
func (s *Schema[T]) ListNames() []string {
	return sortedKeys(s.Lists)
}

// BucketNames lists the buckets of a range in declaration order.
func (s *Schema[T]) BucketNames(rangeName string) []string {
	r, ok := s.Ranges[rangeName]
	if !ok {
		return nil
	}
	names := make([]string, len(r.Buckets))
	for i, b := range r.Buckets {
		names[i] = b.Name
	}
	return names
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
