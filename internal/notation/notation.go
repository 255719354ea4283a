//go:generate go run github.com/dmarkham/enumer -type=ValueKind -linecomment -trimprefix=ValueKind -transform=kebab -text
package notation

import (
	"cmp"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vipcxj/rangealg/internal/interval"
)

// ValueKind selects the element type ranges are parsed into.
type ValueKind int

const (
	ValueKindInt   ValueKind = iota // int
	ValueKindFloat                  // float
	ValueKindText                   // string
)

// ErrSyntax is matched by every error caused by malformed text, as opposed to well formed text
// describing an invalid range (interval.ErrInvalidRange).
var ErrSyntax = errors.New("syntax error")

// Parse reads a range written in the canonical notation:
//
//   - [a..b], (a..b), [a..b), (a..b]
//   - a            the degenerate range [a..a]
//   - ∅ or empty   the empty range
//
// Spaces around the text, the values and the separator are ignored. The text is split at the first
// "..", so a lower bound value must not contain "..". Values are read by parseValue.
// A well formed range whose lower bound does not precede its upper bound yields the
// *interval.OutOfRangeError returned by interval.FromBounds.
func Parse[T cmp.Ordered](text string, parseValue func(string) (T, error)) (interval.Range[T], error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return interval.Range[T]{}, errors.Wrap(ErrSyntax, "empty range text")
	}
	if s == "∅" || strings.EqualFold(s, "empty") {
		return interval.Empty[T](), nil
	}

	if s[0] != '[' && s[0] != '(' {
		v, err := parseValue(s)
		if err != nil {
			return interval.Range[T]{}, err
		}
		return interval.Degenerate(v), nil
	}

	last := s[len(s)-1]
	if len(s) < 2 || (last != ']' && last != ')') {
		return interval.Range[T]{}, errors.Wrapf(ErrSyntax, "range %q: missing closing ']' or ')'", text)
	}
	inner := s[1 : len(s)-1]
	sep := strings.Index(inner, "..")
	if sep < 0 {
		return interval.Range[T]{}, errors.Wrapf(ErrSyntax, "range %q: missing \"..\"", text)
	}
	left := strings.TrimSpace(inner[:sep])
	right := strings.TrimSpace(inner[sep+2:])
	if left == "" || right == "" {
		return interval.Range[T]{}, errors.Wrapf(ErrSyntax, "range %q: both bounds need a value", text)
	}

	lo, err := parseValue(left)
	if err != nil {
		return interval.Range[T]{}, err
	}
	hi, err := parseValue(right)
	if err != nil {
		return interval.Range[T]{}, err
	}

	lower, upper := interval.OpenBound(lo), interval.OpenBound(hi)
	if s[0] == '[' {
		lower = interval.ClosedBound(lo)
	}
	if last == ']' {
		upper = interval.ClosedBound(hi)
	}
	return interval.FromBounds(lower, upper)
}

// ParseInt reads a base 10 integer.
func ParseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.Mark(errors.Newf("invalid int value %q", s), ErrSyntax)
	}
	return n, nil
}

// ParseFloat reads a float. NaN is refused because it is not ordered.
func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Mark(errors.Newf("invalid float value %q", s), ErrSyntax)
	}
	if math.IsNaN(f) {
		return 0, errors.Mark(errors.Newf("invalid float value %q: NaN is not ordered", s), ErrSyntax)
	}
	return f, nil
}

// ParseString accepts any text. A value wrapped in double quotes is unquoted, which allows
// leading brackets and surrounding spaces.
func ParseString(s string) (string, error) {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		u, err := strconv.Unquote(s)
		if err != nil {
			return "", errors.Mark(errors.Newf("invalid string value %s", s), ErrSyntax)
		}
		return u, nil
	}
	return s, nil
}
