package query

import (
	"cmp"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"transparency/models"
)

// Direction of an ordering.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Comparator orders two records. Strings are compared through the supplied collator.
type Comparator[T any] func(c *collate.Collator, a, b T) int

// Collators keep internal buffers and must not be shared between goroutines.
var collators = sync.Pool{
	New: func() any { return collate.New(language.Spanish) },
}

func acquireCollator() *collate.Collator {
	return collators.Get().(*collate.Collator)
}

func releaseCollator(c *collate.Collator) {
	collators.Put(c)
}

func apply(dir Direction, n int) int {
	if dir == Desc {
		return -n
	}
	return n
}

// ByString orders by a text field using Spanish collation.
func ByString[T any](f Field[T], dir Direction) Comparator[T] {
	return func(c *collate.Collator, a, b T) int {
		return apply(dir, c.CompareString(f(a), f(b)))
	}
}

// ByInt orders by a numeric field.
func ByInt[T any](f func(T) int, dir Direction) Comparator[T] {
	return func(_ *collate.Collator, a, b T) int {
		return apply(dir, cmp.Compare(f(a), f(b)))
	}
}

// ByDate orders by an ISO date field. Unparsable dates always sort last.
func ByDate[T any](f Field[T], dir Direction) Comparator[T] {
	return func(_ *collate.Collator, a, b T) int {
		da, okA := models.ParseDate(f(a))
		db, okB := models.ParseDate(f(b))
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		return apply(dir, da.Compare(db))
	}
}

// Then chains comparators; later ones break ties left by earlier ones.
func Then[T any](cmps ...Comparator[T]) Comparator[T] {
	return func(c *collate.Collator, a, b T) int {
		for _, f := range cmps {
			if n := f(c, a, b); n != 0 {
				return n
			}
		}
		return 0
	}
}

// CompareStrings compares two strings with Spanish collation.
func CompareStrings(a, b string) int {
	c := acquireCollator()
	defer releaseCollator(c)
	return c.CompareString(a, b)
}
