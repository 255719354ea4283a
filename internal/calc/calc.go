//go:generate go run github.com/dmarkham/enumer -type=Op -trimprefix=Op -transform=kebab -text
package calc

import (
	"cmp"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vipcxj/rangealg/internal/interval"
	"github.com/vipcxj/rangealg/internal/logging"
	"github.com/vipcxj/rangealg/internal/notation"
)

// Op is an operation of the range algebra that can be requested by name.
type Op int

const (
	OpContains Op = iota
	OpIntersect
	OpJoin
	OpOverlaps
	OpLimit
	OpLimitLower
	OpLimitUpper
	OpGenerate
	OpValidate
	OpAssert
	OpUnion
	OpSucc
)

// DefaultMax caps the number of values a generate request produces when Request.Max is not set.
const DefaultMax = 1000

// ErrArity is matched when a request carries the wrong number of arguments for its operation.
var ErrArity = errors.New("wrong number of arguments")

// Request describes one operation over ranges written in the canonical notation.
//
// Args depend on Op:
//
//	contains, limit, limit-lower, limit-upper   RANGE VALUE...
//	intersect, join                             RANGE RANGE...
//	overlaps                                    RANGE RANGE
//	generate, validate                          RANGE
//	assert                                      RANGE NAME VALUE...
//	union                                       RANGE...
//	succ                                        STRING...
type Request struct {
	Kind notation.ValueKind `json:"kind" yaml:"kind"`
	Op   Op                 `json:"op" yaml:"op"`
	Args []string           `json:"args" yaml:"args"`
	// Step is the increment used by generate. It defaults to 1 for numbers and must be empty for
	// strings, which advance with interval.StringSuccessor.
	Step string `json:"step,omitempty" yaml:"step,omitempty"`
	Max  int    `json:"max,omitempty" yaml:"max,omitempty"`
}

// Result holds the textual output of a request, one entry per produced value.
type Result struct {
	Values    []string `json:"values"`
	Truncated bool     `json:"truncated,omitempty"`
}

type codec[T cmp.Ordered] struct {
	parse func(string) (T, error)
	next  func(step string) (func(T) T, error)
}

var (
	intCodec = codec[int64]{
		parse: notation.ParseInt,
		next:  numericNext(notation.ParseInt, 1),
	}
	floatCodec = codec[float64]{
		parse: notation.ParseFloat,
		next:  numericNext(notation.ParseFloat, 1),
	}
	stringCodec = codec[string]{
		parse: notation.ParseString,
		next: func(step string) (func(string) string, error) {
			if step != "" {
				return nil, errors.Newf("step %q is not supported for string ranges", step)
			}
			return interval.StringSuccessor, nil
		},
	}
)

func numericNext[T interval.Number](parse func(string) (T, error), def T) func(string) (func(T) T, error) {
	return func(step string) (func(T) T, error) {
		if step == "" {
			return interval.StepBy(def), nil
		}
		s, err := parse(step)
		if err != nil {
			return nil, errors.Wrap(err, "step")
		}
		return interval.StepBy(s), nil
	}
}

// Eval runs req and returns its output.
func Eval(req Request) (Result, error) {
	log := logging.GetLogger("calc")
	log.Debugw("evaluate", "op", req.Op, "kind", req.Kind, "args", req.Args, "step", req.Step)

	var (
		res Result
		err error
	)
	switch req.Kind {
	case notation.ValueKindInt:
		res, err = eval(req, intCodec)
	case notation.ValueKindFloat:
		res, err = eval(req, floatCodec)
	case notation.ValueKindText:
		res, err = eval(req, stringCodec)
	default:
		err = errors.Newf("unsupported value kind %s", req.Kind)
	}
	if err != nil {
		log.Debugw("evaluation failed", "op", req.Op, "error", err)
		return Result{}, err
	}
	if res.Truncated {
		log.Warnw("generated values truncated", "op", req.Op, "max", maxOf(req))
	}
	return res, nil
}

func eval[T cmp.Ordered](req Request, c codec[T]) (Result, error) {
	args := req.Args
	switch req.Op {
	case OpContains:
		return mapValues(req, c, func(r interval.Range[T], v T) string {
			return fmt.Sprint(r.Contains(v))
		})
	case OpLimit:
		return mapValues(req, c, func(r interval.Range[T], v T) string {
			return fmt.Sprint(r.Limit(v))
		})
	case OpLimitLower:
		return mapValues(req, c, func(r interval.Range[T], v T) string {
			return fmt.Sprint(r.LimitLower(v))
		})
	case OpLimitUpper:
		return mapValues(req, c, func(r interval.Range[T], v T) string {
			return fmt.Sprint(r.LimitUpper(v))
		})
	case OpIntersect, OpJoin:
		if len(args) < 2 {
			return Result{}, arityError(req.Op, "at least 2 ranges", len(args))
		}
		ranges, err := parseRanges(args, c)
		if err != nil {
			return Result{}, err
		}
		acc := ranges[0]
		for _, r := range ranges[1:] {
			if req.Op == OpIntersect {
				acc = acc.Intersect(r)
			} else {
				acc = acc.Join(r)
			}
		}
		return single(acc.String()), nil
	case OpOverlaps:
		if len(args) != 2 {
			return Result{}, arityError(req.Op, "2 ranges", len(args))
		}
		ranges, err := parseRanges(args, c)
		if err != nil {
			return Result{}, err
		}
		return single(fmt.Sprint(ranges[0].Overlaps(ranges[1]))), nil
	case OpUnion:
		if len(args) < 1 {
			return Result{}, arityError(req.Op, "at least 1 range", len(args))
		}
		ranges, err := parseRanges(args, c)
		if err != nil {
			return Result{}, err
		}
		return single(interval.NewSet(ranges...).String()), nil
	case OpValidate:
		if len(args) != 1 {
			return Result{}, arityError(req.Op, "1 range", len(args))
		}
		if _, err := notation.Parse(args[0], c.parse); err != nil {
			return Result{}, err
		}
		return single("valid"), nil
	case OpAssert:
		if len(args) < 3 {
			return Result{}, arityError(req.Op, "a range, a name and at least 1 value", len(args))
		}
		r, err := notation.Parse(args[0], c.parse)
		if err != nil {
			return Result{}, err
		}
		values, err := parseValues(args[2:], c)
		if err != nil {
			return Result{}, err
		}
		if len(values) == 1 {
			err = r.CheckArgument(args[1], values[0])
		} else {
			err = r.CheckArguments(args[1], values...)
		}
		if err != nil {
			return Result{}, err
		}
		return single("ok"), nil
	case OpGenerate:
		if len(args) != 1 {
			return Result{}, arityError(req.Op, "1 range", len(args))
		}
		return generate(req, c)
	case OpSucc:
		if len(args) < 1 {
			return Result{}, arityError(req.Op, "at least 1 string", len(args))
		}
		res := Result{Values: make([]string, len(args))}
		for i, s := range args {
			res.Values[i] = interval.StringSuccessor(s)
		}
		return res, nil
	default:
		return Result{}, errors.Newf("unsupported operation %s", req.Op)
	}
}

func generate[T cmp.Ordered](req Request, c codec[T]) (Result, error) {
	r, err := notation.Parse(req.Args[0], c.parse)
	if err != nil {
		return Result{}, err
	}
	next, err := c.next(req.Step)
	if err != nil {
		return Result{}, err
	}
	limit := maxOf(req)
	res := Result{Values: []string{}}
	for v, err := range r.Generate(next) {
		if err != nil {
			return Result{}, err
		}
		if len(res.Values) == limit {
			res.Truncated = true
			break
		}
		res.Values = append(res.Values, fmt.Sprint(v))
	}
	return res, nil
}

func mapValues[T cmp.Ordered](req Request, c codec[T], f func(interval.Range[T], T) string) (Result, error) {
	if len(req.Args) < 2 {
		return Result{}, arityError(req.Op, "a range and at least 1 value", len(req.Args))
	}
	r, err := notation.Parse(req.Args[0], c.parse)
	if err != nil {
		return Result{}, err
	}
	values, err := parseValues(req.Args[1:], c)
	if err != nil {
		return Result{}, err
	}
	res := Result{Values: make([]string, len(values))}
	for i, v := range values {
		res.Values[i] = f(r, v)
	}
	return res, nil
}

func parseRanges[T cmp.Ordered](args []string, c codec[T]) ([]interval.Range[T], error) {
	ranges := make([]interval.Range[T], len(args))
	for i, a := range args {
		r, err := notation.Parse(a, c.parse)
		if err != nil {
			return nil, err
		}
		ranges[i] = r
	}
	return ranges, nil
}

func parseValues[T cmp.Ordered](args []string, c codec[T]) ([]T, error) {
	values := make([]T, len(args))
	for i, a := range args {
		v, err := c.parse(a)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func arityError(op Op, want string, got int) error {
	return errors.Wrapf(ErrArity, "%s needs %s, got %d", op, want, got)
}

func single(s string) Result {
	return Result{Values: []string{s}}
}

func maxOf(req Request) int {
	if req.Max > 0 {
		return req.Max
	}
	return DefaultMax
}
