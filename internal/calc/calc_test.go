package calc

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vipcxj/rangealg/internal/interval"
	"github.com/vipcxj/rangealg/internal/notation"
)

func evalOK(t *testing.T, req Request) []string {
	t.Helper()
	res, err := Eval(req)
	require.NoError(t, err, "request %+v", req)
	return res.Values
}

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		want []string
	}{
		{"contains", Request{Op: OpContains, Args: []string{"[1..5]", "5", "6"}}, []string{"true", "false"}},
		{"contains_open", Request{Op: OpContains, Args: []string{"(1..5)", "5"}}, []string{"false"}},
		{"intersect_touching", Request{Op: OpIntersect, Args: []string{"[2..4)", "(1..2]"}}, []string{"[2..2]"}},
		{"intersect_many", Request{Op: OpIntersect, Args: []string{"[0..10]", "(2..8]", "[5..9)"}}, []string{"[5..8]"}},
		{"intersect_empty", Request{Op: OpIntersect, Args: []string{"[0..1]", "[3..4]"}}, []string{"∅"}},
		{"join", Request{Op: OpJoin, Args: []string{"[2..4]", "[1..3]"}}, []string{"[1..4]"}},
		{"join_empty", Request{Op: OpJoin, Args: []string{"empty", "5"}}, []string{"[5..5]"}},
		{"overlaps", Request{Op: OpOverlaps, Args: []string{"[1..2]", "[2..3]"}}, []string{"true"}},
		{"overlaps_open", Request{Op: OpOverlaps, Args: []string{"[1..2)", "[2..3]"}}, []string{"false"}},
		{"limit", Request{Op: OpLimit, Args: []string{"(1..5)", "0", "3", "9"}}, []string{"1", "3", "5"}},
		{"limit_lower", Request{Op: OpLimitLower, Args: []string{"[1..5]", "0", "9"}}, []string{"1", "9"}},
		{"limit_upper", Request{Op: OpLimitUpper, Args: []string{"[1..5]", "0", "9"}}, []string{"0", "5"}},
		{"generate", Request{Op: OpGenerate, Args: []string{"[1..5]"}}, []string{"1", "2", "3", "4", "5"}},
		{"generate_open_step", Request{Op: OpGenerate, Args: []string{"(1..5)"}, Step: "2"}, []string{"3"}},
		{"generate_empty", Request{Op: OpGenerate, Args: []string{"∅"}}, []string{}},
		{"generate_float", Request{Kind: notation.ValueKindFloat, Op: OpGenerate, Args: []string{"[0..1]"}, Step: "0.5"}, []string{"0", "0.5", "1"}},
		{"generate_string", Request{Kind: notation.ValueKindText, Op: OpGenerate, Args: []string{"[koala..koale]"}}, []string{"koala", "koalb", "koalc", "koald", "koale"}},
		{"validate", Request{Op: OpValidate, Args: []string{"[5..5]"}}, []string{"valid"}},
		{"assert", Request{Op: OpAssert, Args: []string{"[0..120]", "age", "42"}}, []string{"ok"}},
		{"union", Request{Op: OpUnion, Args: []string{"[5..7]", "[1..2)", "[2..3]"}}, []string{"[1..3] ∪ [5..7]"}},
		{"succ", Request{Op: OpSucc, Args: []string{"az", "a9", "zz"}}, []string{"ba", "b0", "aaa"}},
		{"string_contains", Request{Kind: notation.ValueKindText, Op: OpContains, Args: []string{"[d..h]", "e", "i"}}, []string{"true", "false"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, evalOK(t, tc.req))
		})
	}
}

func TestEval_Truncates(t *testing.T) {
	res, err := Eval(Request{Op: OpGenerate, Args: []string{"[1..100]"}, Max: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, res.Values)
	assert.True(t, res.Truncated)

	res, err = Eval(Request{Op: OpGenerate, Args: []string{"[1..3]"}, Max: 3})
	require.NoError(t, err)
	assert.False(t, res.Truncated)
}

func TestEval_Errors(t *testing.T) {
	cases := []struct {
		name   string
		req    Request
		target error
		msg    string
	}{
		{"arity_intersect", Request{Op: OpIntersect, Args: []string{"[1..2]"}}, ErrArity, "intersect needs at least 2 ranges, got 1: wrong number of arguments"},
		{"arity_overlaps", Request{Op: OpOverlaps, Args: []string{"[1..2]", "[1..2]", "[1..2]"}}, ErrArity, ""},
		{"arity_contains", Request{Op: OpContains, Args: []string{"[1..2]"}}, ErrArity, ""},
		{"arity_assert", Request{Op: OpAssert, Args: []string{"[1..2]", "x"}}, ErrArity, ""},
		{"invalid_range", Request{Op: OpValidate, Args: []string{"(5..5)"}}, interval.ErrInvalidRange,
			"invalid range: lower bound 5 (not inclusive) must precede upper bound 5 (not inclusive)"},
		{"syntax", Request{Op: OpContains, Args: []string{"[1..2]", "x"}}, notation.ErrSyntax, `invalid int value "x"`},
		{"assert_out_of_range", Request{Op: OpAssert, Args: []string{"[0..120]", "age", "130"}}, interval.ErrArgumentOutOfRange,
			"age = 130 is out of range, expected a value between 0 (inclusive) and 120 (inclusive)"},
		{"assert_many", Request{Op: OpAssert, Args: []string{"[0..10)", "xs", "1", "10"}}, interval.ErrArgumentOutOfRange,
			"xs[1] = 10 is out of range, expected a value between 0 (inclusive) and 10 (not inclusive)"},
		{"zero_step", Request{Op: OpGenerate, Args: []string{"[1..3]"}, Step: "0"}, interval.ErrGeneratorOrder,
			"generator must be strictly increasing: next(1) = 1"},
		{"bad_step", Request{Op: OpGenerate, Args: []string{"[1..3]"}, Step: "one"}, notation.ErrSyntax, ""},
		{"string_step", Request{Kind: notation.ValueKindText, Op: OpGenerate, Args: []string{"[a..c]"}, Step: "2"}, nil,
			`step "2" is not supported for string ranges`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Eval(tc.req)
			require.Error(t, err)
			if tc.target != nil {
				assert.True(t, errors.Is(err, tc.target), "%v should match %v", err, tc.target)
			}
			if tc.msg != "" {
				assert.EqualError(t, err, tc.msg)
			}
		})
	}
}

func TestEval_UnknownKind(t *testing.T) {
	_, err := Eval(Request{Kind: notation.ValueKind(42), Op: OpContains, Args: []string{"1", "1"}})
	assert.EqualError(t, err, "unsupported value kind ValueKind(42)")
}

func TestOpString(t *testing.T) {
	op, err := OpString("limit-lower")
	require.NoError(t, err)
	assert.Equal(t, OpLimitLower, op)
	assert.Len(t, OpValues(), 12)
}
