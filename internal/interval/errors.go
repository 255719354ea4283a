package interval

import (
	"cmp"
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidRange is matched by every error returned from a failed range construction.
	ErrInvalidRange = errors.New("invalid range")
	// ErrGeneratorOrder is matched when a step function does not strictly increase its input.
	ErrGeneratorOrder = errors.New("generator is not strictly increasing")
	// ErrArgumentOutOfRange is matched by CheckArgument and CheckArguments failures.
	ErrArgumentOutOfRange = errors.New("argument out of range")
	// ErrBoundValueMismatch is the cause of the panic raised when restrictiveness is compared
	// between bounds that do not share a value.
	ErrBoundValueMismatch = errors.New("bounds do not share a value")
)

// OutOfRangeError is returned when a lower bound does not precede its upper bound.
type OutOfRangeError[T cmp.Ordered] struct {
	Lower Bound[T]
	Upper Bound[T]
}

func (e *OutOfRangeError[T]) Error() string {
	return fmt.Sprintf("invalid range: lower bound %s must precede upper bound %s",
		e.Lower.AssertionText(), e.Upper.AssertionText())
}

func (e *OutOfRangeError[T]) Unwrap() error {
	return ErrInvalidRange
}

// GeneratorOrderError is yielded by a generated sequence when next(Current) <= Current.
type GeneratorOrderError[T cmp.Ordered] struct {
	Current T
	Next    T
}

func (e *GeneratorOrderError[T]) Error() string {
	return fmt.Sprintf("generator must be strictly increasing: next(%s) = %s",
		formatValue(e.Current), formatValue(e.Next))
}

func (e *GeneratorOrderError[T]) Unwrap() error {
	return ErrGeneratorOrder
}

// ArgumentOutOfRangeError names an argument whose value falls outside a range.
type ArgumentOutOfRangeError[T cmp.Ordered] struct {
	Name  string
	Value T
	Range Range[T]
}

func (e *ArgumentOutOfRangeError[T]) Error() string {
	return fmt.Sprintf("%s = %s is out of range, expected a value %s",
		e.Name, formatValue(e.Value), e.Range.AssertionText())
}

func (e *ArgumentOutOfRangeError[T]) Unwrap() error {
	return ErrArgumentOutOfRange
}
