//go:generate go run github.com/dmarkham/enumer -type=BoundType -trimprefix=BoundType -transform=kebab -text
package interval

import (
	"cmp"
	"fmt"

	"github.com/cockroachdb/errors"
)

// BoundType tells whether the value of a Bound belongs to the range ("closed") or not ("open").
type BoundType uint8

const (
	// BoundTypeOpen excludes the bound value from the range.
	BoundTypeOpen BoundType = iota
	// BoundTypeClosed includes the bound value in the range.
	BoundTypeClosed
)

// Bound is one end of a Range. It is a plain value: two bounds are equal (==) when they have the
// same type and the same value.
type Bound[T cmp.Ordered] struct {
	value T
	typ   BoundType
}

// OpenBound returns a bound that excludes v.
func OpenBound[T cmp.Ordered](v T) Bound[T] {
	return Bound[T]{value: v, typ: BoundTypeOpen}
}

// ClosedBound returns a bound that includes v.
func ClosedBound[T cmp.Ordered](v T) Bound[T] {
	return Bound[T]{value: v, typ: BoundTypeClosed}
}

func (b Bound[T]) Value() T {
	return b.value
}

func (b Bound[T]) Type() BoundType {
	return b.typ
}

func (b Bound[T]) IsClosed() bool {
	return b.typ == BoundTypeClosed
}

func (b Bound[T]) IsOpen() bool {
	return b.typ == BoundTypeOpen
}

// LowerNotation renders b as the left end of a range: "[v" or "(v".
func (b Bound[T]) LowerNotation() string {
	if b.IsClosed() {
		return "[" + formatValue(b.value)
	}
	return "(" + formatValue(b.value)
}

// UpperNotation renders b as the right end of a range: "v]" or "v)".
func (b Bound[T]) UpperNotation() string {
	if b.IsClosed() {
		return formatValue(b.value) + "]"
	}
	return formatValue(b.value) + ")"
}

// LessThan reports whether b, used as a lower bound, admits x.
func (b Bound[T]) LessThan(x T) bool {
	if b.IsClosed() {
		return b.value <= x
	}
	return b.value < x
}

// MoreThan reports whether b, used as an upper bound, admits x.
func (b Bound[T]) MoreThan(x T) bool {
	if b.IsClosed() {
		return b.value >= x
	}
	return b.value > x
}

// Generate returns the first value a sequence starting at b may produce.
// An open bound skips its own value by applying next once.
func (b Bound[T]) Generate(next func(T) T) T {
	if b.IsClosed() {
		return b.value
	}
	return next(b.value)
}

// Touches reports whether b and other are both closed at the same value. An open bound never
// touches anything, not even another open bound at the same value.
func (b Bound[T]) Touches(other Bound[T]) bool {
	return b.IsClosed() && other.IsClosed() && b.value == other.value
}

// LessRestrictive returns whichever of b and other includes the shared value.
// It panics if the two bounds do not share a value.
func (b Bound[T]) LessRestrictive(other Bound[T]) Bound[T] {
	b.mustShareValue(other)
	if b.IsClosed() {
		return b
	}
	return other
}

// MoreRestrictive returns whichever of b and other excludes the shared value.
// It panics if the two bounds do not share a value.
func (b Bound[T]) MoreRestrictive(other Bound[T]) Bound[T] {
	b.mustShareValue(other)
	if b.IsOpen() {
		return b
	}
	return other
}

func (b Bound[T]) mustShareValue(other Bound[T]) {
	if b.value != other.value {
		panic(errors.WithAssertionFailure(errors.Wrapf(ErrBoundValueMismatch,
			"cannot compare restrictiveness of %s and %s", b.AssertionText(), other.AssertionText())))
	}
}

// AssertionText describes b for error messages, e.g. "5 (inclusive)".
func (b Bound[T]) AssertionText() string {
	if b.IsClosed() {
		return formatValue(b.value) + " (inclusive)"
	}
	return formatValue(b.value) + " (not inclusive)"
}

func formatValue[T cmp.Ordered](v T) string {
	return fmt.Sprint(v)
}
