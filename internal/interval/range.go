package interval

import (
	"cmp"
)

// Range is an immutable interval over an ordered type.
//
// The zero value is the empty range. Any other Range is built by New, FromBounds or one of the
// convenience constructors, all of which refuse a lower bound that does not precede the upper one.
// Ranges are comparable with ==; the empty range equals only itself.
type Range[T cmp.Ordered] struct {
	lower    Bound[T]
	upper    Bound[T]
	nonEmpty bool
}

// New returns the closed range [lo..hi].
func New[T cmp.Ordered](lo, hi T) (Range[T], error) {
	return FromBounds(ClosedBound(lo), ClosedBound(hi))
}

// FromBounds returns the range between lower and upper, or an *OutOfRangeError if lower does not
// precede upper.
func FromBounds[T cmp.Ordered](lower, upper Bound[T]) (Range[T], error) {
	if err := ValidateBounds(lower, upper); err != nil {
		return Range[T]{}, err
	}
	return Range[T]{lower: lower, upper: upper, nonEmpty: true}, nil
}

// Closed returns [a..b].
func Closed[T cmp.Ordered](a, b T) (Range[T], error) {
	return FromBounds(ClosedBound(a), ClosedBound(b))
}

// Open returns (a..b).
func Open[T cmp.Ordered](a, b T) (Range[T], error) {
	return FromBounds(OpenBound(a), OpenBound(b))
}

// HalfOpen returns [a..b).
func HalfOpen[T cmp.Ordered](a, b T) (Range[T], error) {
	return FromBounds(ClosedBound(a), OpenBound(b))
}

// HalfClosed returns (a..b].
func HalfClosed[T cmp.Ordered](a, b T) (Range[T], error) {
	return FromBounds(OpenBound(a), ClosedBound(b))
}

// Degenerate returns [v..v], the range holding v only. A value that does not compare equal to
// itself, such as NaN, yields the empty range.
func Degenerate[T cmp.Ordered](v T) Range[T] {
	if !AreValuesValid(v, v) {
		return Empty[T]()
	}
	return Range[T]{lower: ClosedBound(v), upper: ClosedBound(v), nonEmpty: true}
}

// Empty returns the range holding no value.
func Empty[T cmp.Ordered]() Range[T] {
	return Range[T]{}
}

// Must panics if err is not nil and returns r otherwise.
func Must[T cmp.Ordered](r Range[T], err error) Range[T] {
	if err != nil {
		panic(err)
	}
	return r
}

// AreValuesValid reports whether [lo..hi] can be built.
func AreValuesValid[T cmp.Ordered](lo, hi T) bool {
	return lo <= hi
}

// AreBoundsValid reports whether lower precedes upper. Two closed bounds may share a value; as
// soon as one of them is open the values must differ.
func AreBoundsValid[T cmp.Ordered](lower, upper Bound[T]) bool {
	return lower.LessThan(upper.value) && upper.MoreThan(lower.value)
}

// ValidateBounds is the asserting form of AreBoundsValid.
func ValidateBounds[T cmp.Ordered](lower, upper Bound[T]) error {
	if !AreBoundsValid(lower, upper) {
		return &OutOfRangeError[T]{Lower: lower, Upper: upper}
	}
	return nil
}

// Lower returns the lower bound. It is the zero Bound for the empty range.
func (r Range[T]) Lower() Bound[T] {
	return r.lower
}

// Upper returns the upper bound. It is the zero Bound for the empty range.
func (r Range[T]) Upper() Bound[T] {
	return r.upper
}

func (r Range[T]) IsEmpty() bool {
	return !r.nonEmpty
}

// IsDegenerate reports whether r holds exactly one value.
func (r Range[T]) IsDegenerate() bool {
	return r.nonEmpty && r.lower.Touches(r.upper)
}

func (r Range[T]) Equal(other Range[T]) bool {
	return r == other
}

// String renders r in the canonical notation, e.g. "[1..5)". The empty range renders as "∅".
func (r Range[T]) String() string {
	if r.IsEmpty() {
		return "∅"
	}
	return r.lower.LowerNotation() + ".." + r.upper.UpperNotation()
}

// AssertionText describes r for error messages.
func (r Range[T]) AssertionText() string {
	if r.IsEmpty() {
		return "in an empty range"
	}
	return "between " + r.lower.AssertionText() + " and " + r.upper.AssertionText()
}
