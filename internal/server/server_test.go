package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vipcxj/rangealg/internal/batch"
	"github.com/vipcxj/rangealg/internal/calc"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(t *testing.T, s *Server, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthz(t *testing.T) {
	w := do(t, New(), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestOp(t *testing.T) {
	tests := []struct {
		name   string
		op     string
		query  url.Values
		status int
		values []string
		errSub string
	}{
		{
			name:   "contains",
			op:     "contains",
			query:  url.Values{"arg": {"[1..5)", "1", "5"}},
			status: http.StatusOK,
			values: []string{"true", "false"},
		},
		{
			name:   "intersect touching",
			op:     "intersect",
			query:  url.Values{"arg": {"[2..4)", "(1..2]"}},
			status: http.StatusOK,
			values: []string{"[2..2]"},
		},
		{
			name:   "generate float",
			op:     "generate",
			query:  url.Values{"kind": {"float"}, "arg": {"[0..1]"}, "step": {"0.5"}},
			status: http.StatusOK,
			values: []string{"0", "0.5", "1"},
		},
		{
			name:   "succ string",
			op:     "succ",
			query:  url.Values{"kind": {"string"}, "arg": {"az"}},
			status: http.StatusOK,
			values: []string{"ba"},
		},
		{
			name:   "invalid range",
			op:     "validate",
			query:  url.Values{"arg": {"[5..1]"}},
			status: http.StatusUnprocessableEntity,
			errSub: "lower bound 5 (inclusive) must precede upper bound 1 (inclusive)",
		},
		{
			name:   "argument out of range",
			op:     "assert",
			query:  url.Values{"arg": {"[0..120]", "age", "130"}},
			status: http.StatusUnprocessableEntity,
			errSub: "age = 130 is out of range",
		},
		{
			name:   "syntax",
			op:     "validate",
			query:  url.Values{"arg": {"[1..5"}},
			status: http.StatusBadRequest,
			errSub: "missing closing",
		},
		{
			name:   "arity",
			op:     "overlaps",
			query:  url.Values{"arg": {"[1..5]"}},
			status: http.StatusBadRequest,
			errSub: "wrong number of arguments",
		},
		{
			name:   "unknown kind",
			op:     "contains",
			query:  url.Values{"kind": {"complex"}, "arg": {"[1..5]", "1"}},
			status: http.StatusBadRequest,
			errSub: "complex",
		},
		{
			name:   "bad max",
			op:     "generate",
			query:  url.Values{"arg": {"[1..5]"}, "max": {"lots"}},
			status: http.StatusBadRequest,
			errSub: "invalid max",
		},
		{
			name:   "unknown op",
			op:     "divide",
			query:  url.Values{"arg": {"[1..5]"}},
			status: http.StatusNotFound,
			errSub: "divide",
		},
	}
	s := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodGet, "/v1/ops/"+tt.op+"?"+tt.query.Encode(), nil)
			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.errSub != "" {
				res := decode[errorResponse](t, w)
				assert.Contains(t, res.Error, tt.errSub)
				return
			}
			res := decode[calc.Result](t, w)
			assert.Equal(t, tt.values, res.Values)
		})
	}
}

func TestOp_Truncated(t *testing.T) {
	w := do(t, New(), http.MethodGet, "/v1/ops/generate?"+url.Values{"arg": {"[1..100]"}, "max": {"3"}}.Encode(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[calc.Result](t, w)
	assert.Equal(t, []string{"1", "2", "3"}, res.Values)
	assert.True(t, res.Truncated)
}

func TestEval(t *testing.T) {
	s := New()

	body := `{"kind":"int","op":"join","args":["[2..4]","[1..3]"]}`
	w := do(t, s, http.MethodPost, "/v1/eval", strings.NewReader(body))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{"[1..4]"}, decode[calc.Result](t, w).Values)

	w = do(t, s, http.MethodPost, "/v1/eval", strings.NewReader(`{"op":"explode"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPost, "/v1/eval", strings.NewReader(`not json`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBatch(t *testing.T) {
	s := New()
	doc := `
kind: int
steps:
  - op: contains
    args: ["[1..5]", "5"]
    expect: "true"
  - op: overlaps
    args: ["[1..2]", "(2..3]"]
    expect: "true"
`
	w := do(t, s, http.MethodPost, "/v1/batch", strings.NewReader(doc))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	report := decode[batch.Report](t, w)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Failed)
	assert.True(t, report.Results[0].Passed)
	assert.False(t, report.Results[1].Passed)
	assert.Equal(t, []string{"false"}, report.Results[1].Values)

	w = do(t, s, http.MethodPost, "/v1/batch", strings.NewReader(""))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBatch_QueryDefaults(t *testing.T) {
	doc := `
- op: generate
  args: "[0..1]"
  step: "0.5"
`
	w := do(t, New(), http.MethodPost, "/v1/batch?"+url.Values{"kind": {"float"}, "max": {"2"}}.Encode(), strings.NewReader(doc))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	report := decode[batch.Report](t, w)
	require.Len(t, report.Results, 1)
	assert.Equal(t, []string{"0", "0.5"}, report.Results[0].Values)
	assert.True(t, report.Results[0].Truncated)
}

func TestBodyLimit(t *testing.T) {
	s := New()
	s.maxBody = 16

	doc := "- op: succ\n  args: [" + strings.Repeat("a, ", 20) + "a]\n"
	w := do(t, s, http.MethodPost, "/v1/batch", strings.NewReader(doc))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code, w.Body.String())

	body := `{"op":"succ","args":["` + strings.Repeat("a", 64) + `"]}`
	w = do(t, s, http.MethodPost, "/v1/eval", strings.NewReader(body))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code, w.Body.String())

	w = do(t, s, http.MethodPost, "/v1/eval", strings.NewReader(`{"op":"succ","args":["a"]}`))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	s.maxBody = DefaultMaxBodyBytes
	w = do(t, s, http.MethodPost, "/v1/eval", strings.NewReader(`{"op":"succ","args":["a"]}`))
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestMetrics(t *testing.T) {
	s := New()
	do(t, s, http.MethodGet, "/v1/ops/contains?"+url.Values{"arg": {"[1..5]", "3"}}.Encode(), nil)
	do(t, s, http.MethodGet, "/v1/ops/validate?"+url.Values{"arg": {"[5..1]"}}.Encode(), nil)

	w := do(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	text := w.Body.String()
	assert.Contains(t, text, `rangealg_operations_total{kind="int",op="contains",status="ok"} 1`)
	assert.Contains(t, text, `rangealg_operations_total{kind="int",op="validate",status="error"} 1`)
	assert.Contains(t, text, `rangealg_operation_duration_seconds_count{op="contains"} 1`)
}
