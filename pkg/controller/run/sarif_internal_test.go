package run

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/suzuki-shunsuke/lintdiff/pkg/checker"
	"github.com/suzuki-shunsuke/lintdiff/pkg/sarif"
)

func TestController_outputSARIF(t *testing.T) { //nolint:funlen
	t.Parallel()
	tests := []struct {
		name    string
		outcome *Outcome
	}{
		{
			name:    "empty outcome",
			outcome: &Outcome{},
		},
		{
			name: "single added issue",
			outcome: &Outcome{
				Added: []*Finding{
					{File: "foo.py", Checker: "pyflakes", Text: "undefined name 'x'"},
				},
			},
		},
		{
			name: "removed issues don't appear",
			outcome: &Outcome{
				Removed: []*Finding{
					{File: "foo.py", Checker: "pyflakes", Text: "undefined name 'x'"},
				},
			},
		},
		{
			name: "multiple added issues",
			outcome: &Outcome{
				Added: []*Finding{
					{File: "foo.py", Checker: "pycodestyle", Text: "E302 expected 2 blank lines"},
					{File: "bar.py", Checker: "pyflakes", Text: "undefined name 'y'"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			c := &Controller{
				param: &ParamRun{
					Stdout: buf,
					Stderr: &bytes.Buffer{},
				},
				logger: NewLogger(&bytes.Buffer{}, &bytes.Buffer{}),
			}

			if err := c.outputSARIF(checker.Defaults(), tt.outcome); err != nil {
				t.Fatalf("outputSARIF() error = %v", err)
			}

			var log sarif.Log
			if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
				t.Fatalf("outputSARIF() produced invalid JSON: %v", err)
			}
			if log.Schema != "https://json.schemastore.org/sarif-2.1.0.json" {
				t.Errorf("outputSARIF() schema = %v", log.Schema)
			}
			if log.Version != "2.1.0" {
				t.Errorf("outputSARIF() version = %v, want 2.1.0", log.Version)
			}
			if len(log.Runs) != 1 {
				t.Fatalf("outputSARIF() runs count = %v, want 1", len(log.Runs))
			}
			if log.Runs[0].Tool.Driver.Name != "lintdiff" {
				t.Errorf("outputSARIF() tool name = %v, want lintdiff", log.Runs[0].Tool.Driver.Name)
			}
			// One rule per checker of the battery.
			if len(log.Runs[0].Tool.Driver.Rules) != len(checker.Defaults()) {
				t.Errorf("outputSARIF() rules count = %v, want %v", len(log.Runs[0].Tool.Driver.Rules), len(checker.Defaults()))
			}
			if len(log.Runs[0].Results) != len(tt.outcome.Added) {
				t.Errorf("outputSARIF() results count = %v, want %v", len(log.Runs[0].Results), len(tt.outcome.Added))
			}
		})
	}
}

func Test_buildSARIFResults(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		outcome   *Outcome
		wantCount int
		validate  func(t *testing.T, results []sarif.Result)
	}{
		{
			name:      "empty outcome",
			outcome:   &Outcome{},
			wantCount: 0,
			validate:  nil,
		},
		{
			name: "added issue",
			outcome: &Outcome{
				Added: []*Finding{
					{File: "pkg/foo.py", Checker: "pyflakes", Text: "undefined name 'x'"},
				},
			},
			wantCount: 1,
			validate: func(t *testing.T, results []sarif.Result) {
				t.Helper()
				r := results[0]
				if r.RuleID != "pyflakes" {
					t.Errorf("RuleID = %v, want pyflakes", r.RuleID)
				}
				if r.Level != "warning" {
					t.Errorf("Level = %v, want warning", r.Level)
				}
				if r.Message.Text != "undefined name 'x'" {
					t.Errorf("Message = %v", r.Message.Text)
				}
				if r.Locations[0].PhysicalLocation.ArtifactLocation.URI != "pkg/foo.py" {
					t.Errorf("URI = %v, want pkg/foo.py", r.Locations[0].PhysicalLocation.ArtifactLocation.URI)
				}
			},
		},
		{
			name: "order is kept",
			outcome: &Outcome{
				Added: []*Finding{
					{File: "a.py", Checker: "pycodestyle", Text: "E302 expected 2 blank lines"},
					{File: "b.py", Checker: "pydocstyle", Text: "D100 Missing docstring in public module"},
				},
			},
			wantCount: 2,
			validate: func(t *testing.T, results []sarif.Result) {
				t.Helper()
				if results[0].RuleID != "pycodestyle" {
					t.Errorf("first result RuleID = %v, want pycodestyle", results[0].RuleID)
				}
				if results[1].RuleID != "pydocstyle" {
					t.Errorf("second result RuleID = %v, want pydocstyle", results[1].RuleID)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			results := buildSARIFResults(tt.outcome)

			if len(results) != tt.wantCount {
				t.Errorf("buildSARIFResults() count = %v, want %v", len(results), tt.wantCount)
				return
			}

			if tt.validate != nil {
				tt.validate(t, results)
			}
		})
	}
}
