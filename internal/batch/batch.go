package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vipcxj/rangealg/internal/calc"
	"github.com/vipcxj/rangealg/internal/logging"
	"github.com/vipcxj/rangealg/internal/notation"
	"gopkg.in/yaml.v3"
)

// Values is a list of strings that may be written in YAML as a single scalar.
type Values []string

func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*v = Values{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*v = list
		return nil
	default:
		return errors.Newf("line %d: expected a string or a list of strings", node.Line)
	}
}

// Step is one operation of a batch file.
type Step struct {
	Name string              `yaml:"name"`
	Op   calc.Op             `yaml:"op"`
	Kind *notation.ValueKind `yaml:"kind"`
	Args Values              `yaml:"args"`
	Step string              `yaml:"step"`
	Max  int                 `yaml:"max"`
	// Expect, when set, must equal the produced values.
	Expect Values `yaml:"expect"`
	// ExpectError, when set, must be contained in the error message of the step.
	ExpectError string `yaml:"expectError"`
}

// File is a parsed batch file. Kind and Max apply to steps that do not set their own.
type File struct {
	Name  string              `yaml:"-"`
	Kind  *notation.ValueKind `yaml:"kind"`
	Max   int                 `yaml:"max"`
	Steps []Step              `yaml:"steps"`
}

// Defaults fill in the kind and max of steps when neither the step nor its file sets them.
type Defaults struct {
	Kind notation.ValueKind
	Max  int
}

// StepResult is the outcome of one step.
type StepResult struct {
	Name      string             `json:"name"`
	Op        calc.Op            `json:"op"`
	Kind      notation.ValueKind `json:"kind"`
	Values    []string `json:"values,omitempty"`
	Truncated bool     `json:"truncated,omitempty"`
	Error     string   `json:"error,omitempty"`
	Passed    bool     `json:"passed"`
	Reason    string   `json:"reason,omitempty"`
}

// Report gathers the results of a run.
type Report struct {
	Name    string       `json:"name,omitempty"`
	Total   int          `json:"total"`
	Failed  int          `json:"failed"`
	Results []StepResult `json:"results"`
}

// Read loads the batch file at path.
func Read(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	f, err := Parse(content)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	f.Name = filepath.Base(path)
	return f, nil
}

// Parse decodes a batch document. Either a mapping with "kind" and "steps" keys or a bare sequence
// of steps is accepted.
func Parse(content []byte) (*File, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, errors.New("empty yaml")
	}
	doc := root.Content[0]

	var f File
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&f.Steps); err != nil {
			return nil, errors.Wrap(err, "decode steps")
		}
	case yaml.MappingNode:
		if err := doc.Decode(&f); err != nil {
			return nil, errors.Wrap(err, "decode batch")
		}
	default:
		return nil, errors.Newf("unsupported top-level yaml kind %d", doc.Kind)
	}
	if len(f.Steps) == 0 {
		return nil, errors.New("no steps")
	}
	return &f, nil
}

// Run evaluates every step in order. A failing step does not stop the run.
func (f *File) Run(d Defaults) Report {
	log := logging.GetLogger("batch")
	report := Report{Name: f.Name, Total: len(f.Steps), Results: make([]StepResult, 0, len(f.Steps))}
	for i, s := range f.Steps {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("step-%d", i)
		}
		req := f.request(s, d)

		res, err := calc.Eval(req)
		sr := StepResult{Name: name, Op: req.Op, Kind: req.Kind, Values: res.Values, Truncated: res.Truncated}
		if err != nil {
			sr.Error = err.Error()
		}
		sr.Passed, sr.Reason = s.check(sr)
		if !sr.Passed {
			report.Failed++
			log.Debugw("step failed", "file", f.Name, "step", name, "reason", sr.Reason)
		}
		report.Results = append(report.Results, sr)
	}
	return report
}

// request resolves the kind and max of s: the step wins over the file, the file over d.
func (f *File) request(s Step, d Defaults) calc.Request {
	req := calc.Request{Kind: d.Kind, Op: s.Op, Args: s.Args, Step: s.Step, Max: d.Max}
	switch {
	case s.Kind != nil:
		req.Kind = *s.Kind
	case f.Kind != nil:
		req.Kind = *f.Kind
	}
	switch {
	case s.Max > 0:
		req.Max = s.Max
	case f.Max > 0:
		req.Max = f.Max
	}
	return req
}

func (s Step) check(sr StepResult) (bool, string) {
	switch {
	case s.ExpectError != "":
		if sr.Error == "" || !strings.Contains(sr.Error, s.ExpectError) {
			return false, fmt.Sprintf("expected error containing %q", s.ExpectError)
		}
		return true, ""
	case sr.Error != "":
		return false, "unexpected error"
	case s.Expect != nil && !slices.Equal([]string(s.Expect), sr.Values):
		return false, fmt.Sprintf("expected %s", strings.Join(s.Expect, ", "))
	default:
		return true, ""
	}
}

// Write prints one line per step, followed by the reason of a failed expectation, and a summary.
func (r Report) Write(w io.Writer) error {
	for _, sr := range r.Results {
		result := strings.Join(sr.Values, ", ")
		if sr.Truncated {
			result += ", ..."
		}
		if sr.Error != "" {
			result = "error: " + sr.Error
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", sr.Name, result); err != nil {
			return err
		}
		if !sr.Passed {
			if _, err := fmt.Fprintf(w, "  FAIL: %s\n", sr.Reason); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "%d steps, %d failed\n", r.Total, r.Failed)
	return err
}
