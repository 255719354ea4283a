package interval

import (
	"fmt"
)

// CheckArgument returns an *ArgumentOutOfRangeError naming the argument when value is not in r.
func (r Range[T]) CheckArgument(name string, value T) error {
	if r.Contains(value) {
		return nil
	}
	return &ArgumentOutOfRangeError[T]{Name: name, Value: value, Range: r}
}

// CheckArguments checks every value and reports the first one outside r as name[i].
func (r Range[T]) CheckArguments(name string, values ...T) error {
	for i, v := range values {
		if err := r.CheckArgument(fmt.Sprintf("%s[%d]", name, i), v); err != nil {
			return err
		}
	}
	return nil
}
