package batch

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vipcxj/rangealg/internal/calc"
	"github.com/vipcxj/rangealg/internal/notation"
)

func TestRead_Scenarios(t *testing.T) {
	f, err := Read(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "scenarios.yaml", f.Name)
	require.NotNil(t, f.Kind)
	assert.Equal(t, notation.ValueKindInt, *f.Kind)
	require.Len(t, f.Steps, 9)
	assert.Equal(t, calc.OpGenerate, f.Steps[4].Op)
	assert.Equal(t, Values{"[1..5]"}, f.Steps[4].Args)
	require.NotNil(t, f.Steps[8].Kind)
	assert.Equal(t, notation.ValueKindText, *f.Steps[8].Kind)

	report := f.Run(Defaults{})
	for _, r := range report.Results {
		assert.True(t, r.Passed, "%s: %s (values %v, error %q)", r.Name, r.Reason, r.Values, r.Error)
	}
	assert.Equal(t, 9, report.Total)
	assert.Equal(t, 0, report.Failed)
}

func TestParse_Sequence(t *testing.T) {
	f, err := Parse([]byte(`
- op: overlaps
  args: ["[1..2]", "[2..3]"]
- op: succ
  args: zz
`))
	require.NoError(t, err)
	report := f.Run(Defaults{})
	require.Len(t, report.Results, 2)
	assert.Equal(t, "step-0", report.Results[0].Name)
	assert.Equal(t, []string{"true"}, report.Results[0].Values)
	assert.Equal(t, []string{"aaa"}, report.Results[1].Values)
}

func TestRun_Defaults(t *testing.T) {
	f, err := Parse([]byte(`
- name: fallback
  op: generate
  args: "[0..1]"
  step: "0.5"
- name: own kind
  op: generate
  kind: int
  args: "[1..9]"
  max: 3
`))
	require.NoError(t, err)
	report := f.Run(Defaults{Kind: notation.ValueKindFloat, Max: 2})
	require.Len(t, report.Results, 2)
	assert.Equal(t, notation.ValueKindFloat, report.Results[0].Kind)
	assert.Equal(t, []string{"0", "0.5"}, report.Results[0].Values)
	assert.True(t, report.Results[0].Truncated)
	assert.Equal(t, notation.ValueKindInt, report.Results[1].Kind)
	assert.Equal(t, []string{"1", "2", "3"}, report.Results[1].Values)

	f, err = Parse([]byte(`
kind: string
max: 2
steps:
  - op: generate
    args: "[a..z]"
`))
	require.NoError(t, err)
	report = f.Run(Defaults{Kind: notation.ValueKindFloat, Max: 10})
	assert.Equal(t, notation.ValueKindText, report.Results[0].Kind)
	assert.Equal(t, calc.OpGenerate, report.Results[0].Op)
	assert.Equal(t, []string{"a", "b"}, report.Results[0].Values)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no_steps", "kind: int\nsteps: []\n"},
		{"scalar", "hello"},
		{"bad_op", "steps:\n  - op: divide\n    args: [\"1\"]\n"},
		{"bad_kind", "kind: decimal\nsteps:\n  - op: contains\n"},
		{"bad_args", "steps:\n  - op: contains\n    args: {a: b}\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.in))
			assert.Error(t, err)
		})
	}
}

func TestRun_ReportsFailures(t *testing.T) {
	f, err := Parse([]byte(`
kind: int
steps:
  - name: wrong
    op: contains
    args: ["[1..5]", "6"]
    expect: "true"
  - name: unexpected error
    op: contains
    args: ["[5..1]", "1"]
  - name: missing error
    op: contains
    args: ["[1..5]", "1"]
    expectError: boom
  - name: truncated
    op: generate
    args: "[1..10]"
    max: 2
`))
	require.NoError(t, err)
	report := f.Run(Defaults{})
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 3, report.Failed)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf))
	assert.Equal(t, `wrong: false
  FAIL: expected true
unexpected error: error: invalid range: lower bound 5 (inclusive) must precede upper bound 1 (inclusive)
  FAIL: unexpected error
missing error: true
  FAIL: expected error containing "boom"
truncated: 1, 2, ...
4 steps, 3 failed
`, buf.String())
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
