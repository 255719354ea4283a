package interval

// LimitLower pulls v up to the lower bound value if it lies below it. The bound type is ignored:
// clamping to an open bound still yields the bound value.
func (r Range[T]) LimitLower(v T) T {
	if r.IsEmpty() {
		return v
	}
	if v < r.lower.value {
		return r.lower.value
	}
	return v
}

// LimitUpper pulls v down to the upper bound value if it lies above it.
func (r Range[T]) LimitUpper(v T) T {
	if r.IsEmpty() {
		return v
	}
	if v > r.upper.value {
		return r.upper.value
	}
	return v
}

// Limit clamps v into [lower.Value()..upper.Value()]. The empty range leaves v unchanged.
func (r Range[T]) Limit(v T) T {
	return r.LimitUpper(r.LimitLower(v))
}
