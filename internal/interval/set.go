package interval

import (
	"cmp"
	"slices"
	"strings"
)

// Set is a union of ranges kept in normal form: sorted by lower bound, non-empty, and pairwise
// neither overlapping nor adjacent. A value belongs to the set if any of its ranges contains it.
// The zero value is the empty set.
type Set[T cmp.Ordered] struct {
	ranges []Range[T]
}

// NewSet returns the union of ranges.
func NewSet[T cmp.Ordered](ranges ...Range[T]) Set[T] {
	var s Set[T]
	for _, r := range ranges {
		s = s.Add(r)
	}
	return s
}

// Add returns a set holding the values of s and r. s is left untouched.
func (s Set[T]) Add(r Range[T]) Set[T] {
	if r.IsEmpty() {
		return s
	}
	all := make([]Range[T], 0, len(s.ranges)+1)
	all = append(all, s.ranges...)
	all = append(all, r)
	slices.SortFunc(all, compareLower[T])

	merged := all[:1]
	for _, next := range all[1:] {
		last := &merged[len(merged)-1]
		if last.Overlaps(next) || adjacent(*last, next) {
			*last = last.Join(next)
			continue
		}
		merged = append(merged, next)
	}
	return Set[T]{ranges: merged}
}

// Contains reports whether v is in one of the ranges of s.
func (s Set[T]) Contains(v T) bool {
	i, found := slices.BinarySearchFunc(s.ranges, v, func(r Range[T], v T) int {
		switch {
		case !r.upper.MoreThan(v):
			return -1
		case !r.lower.LessThan(v):
			return 1
		default:
			return 0
		}
	})
	return found && s.ranges[i].Contains(v)
}

// Ranges returns a copy of the normalized ranges of s.
func (s Set[T]) Ranges() []Range[T] {
	return slices.Clone(s.ranges)
}

func (s Set[T]) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Span returns the smallest range covering every value of s.
func (s Set[T]) Span() Range[T] {
	if s.IsEmpty() {
		return Empty[T]()
	}
	return s.ranges[0].Join(s.ranges[len(s.ranges)-1])
}

// String joins the ranges with " ∪ ". The empty set renders as "∅".
func (s Set[T]) String() string {
	if s.IsEmpty() {
		return "∅"
	}
	parts := make([]string, len(s.ranges))
	for i, r := range s.ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ∪ ")
}

// compareLower orders ranges by lower bound value; at equal values the closed bound comes first.
func compareLower[T cmp.Ordered](a, b Range[T]) int {
	if c := cmp.Compare(a.lower.value, b.lower.value); c != 0 {
		return c
	}
	return cmp.Compare(b.lower.typ, a.lower.typ)
}

// adjacent reports whether a ends exactly where b starts with no gap, as in [1..2) and [2..3].
func adjacent[T cmp.Ordered](a, b Range[T]) bool {
	return a.upper.value == b.lower.value && (a.upper.IsClosed() || b.lower.IsClosed())
}
