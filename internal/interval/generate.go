package interval

import (
	"cmp"
	"iter"
)

// Generate returns the values of r produced by repeatedly applying next, starting from the lower
// bound (or next(lower) when the lower bound is open) and stopping before the first value the upper
// bound does not admit.
//
// The sequence is lazy and restartable. next must strictly increase its input; the first time it
// does not, the sequence yields a zero value with a *GeneratorOrderError and ends.
func (r Range[T]) Generate(next func(T) T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if r.IsEmpty() {
			return
		}
		current := r.lower.Generate(next)
		if r.lower.IsOpen() && current <= r.lower.value {
			var zero T
			yield(zero, &GeneratorOrderError[T]{Current: r.lower.value, Next: current})
			return
		}
		for r.upper.MoreThan(current) {
			if !yield(current, nil) {
				return
			}
			n := next(current)
			if n <= current {
				var zero T
				yield(zero, &GeneratorOrderError[T]{Current: current, Next: n})
				return
			}
			current = n
		}
	}
}

// GenerateStep is Generate with next(x) = x + step.
func GenerateStep[T Number](r Range[T], step T) iter.Seq2[T, error] {
	return r.Generate(StepBy(step))
}

// StepBy returns a step function adding step to its input.
func StepBy[T Number](step T) func(T) T {
	return func(x T) T {
		return x + step
	}
}

// Collect drains seq into a slice. It stops at the first error and returns the values gathered
// so far together with that error.
func Collect[T cmp.Ordered](seq iter.Seq2[T, error]) ([]T, error) {
	var values []T
	for v, err := range seq {
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
	return values, nil
}
