package interval

// Contains reports whether x lies in r. The open/closed distinction is entirely handled by the
// bounds, so the same expression serves all four kinds of range.
func (r Range[T]) Contains(x T) bool {
	if r.IsEmpty() {
		return false
	}
	return r.lower.LessThan(x) && r.upper.MoreThan(x)
}

// Intersect returns the values held by both r and other.
//
// When a closed end of one range sits exactly on a closed end of the other the result is the
// degenerate range at that point. When the bounds coincide in value but differ in type, the open
// one wins, so the result never claims a point that one of the operands excludes.
func (r Range[T]) Intersect(other Range[T]) Range[T] {
	if r.IsEmpty() || other.IsEmpty() {
		return Empty[T]()
	}
	if r.lower.Touches(other.upper) {
		return Degenerate(r.lower.value)
	}
	if r.upper.Touches(other.lower) {
		return Degenerate(r.upper.value)
	}
	if !r.strictlyOverlaps(other) {
		return Empty[T]()
	}

	var lower, upper Bound[T]
	switch {
	case r.lower.value > other.lower.value:
		lower = r.lower
	case r.lower.value < other.lower.value:
		lower = other.lower
	default:
		lower = r.lower.MoreRestrictive(other.lower)
	}
	switch {
	case r.upper.value < other.upper.value:
		upper = r.upper
	case r.upper.value > other.upper.value:
		upper = other.upper
	default:
		upper = r.upper.MoreRestrictive(other.upper)
	}

	result, err := FromBounds(lower, upper)
	if err != nil {
		return Empty[T]()
	}
	return result
}

// Join returns the smallest range spanning both r and other, gap included. It is not a set union:
// Join([1..2], [5..6]) is [1..6]. Use Set for unions.
func (r Range[T]) Join(other Range[T]) Range[T] {
	if other.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return other
	}

	var lower, upper Bound[T]
	switch {
	case r.lower.value < other.lower.value:
		lower = r.lower
	case r.lower.value > other.lower.value:
		lower = other.lower
	default:
		lower = r.lower.LessRestrictive(other.lower)
	}
	switch {
	case r.upper.value > other.upper.value:
		upper = r.upper
	case r.upper.value < other.upper.value:
		upper = other.upper
	default:
		upper = r.upper.LessRestrictive(other.upper)
	}
	return Range[T]{lower: lower, upper: upper, nonEmpty: true}
}

// Overlaps reports whether r and other share at least one value.
func (r Range[T]) Overlaps(other Range[T]) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.lower.Touches(other.upper) || r.upper.Touches(other.lower) || r.strictlyOverlaps(other)
}

func (r Range[T]) strictlyOverlaps(other Range[T]) bool {
	return r.lower.value < other.upper.value && r.upper.value > other.lower.value
}
