package run

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/lintdiff/pkg/checker"
)

func Test_normalizeLine(t *testing.T) {
	t.Parallel()
	data := []struct {
		name string
		line string
		exp  string
	}{
		{
			name: "position marker is dropped",
			line: "foo.py:10:1: E302 expected 2 blank lines, got 1",
			exp:  "E302 expected 2 blank lines, got 1",
		},
		{
			name: "only the first space counts",
			line: "foo.py:1:1: undefined name 'bar'",
			exp:  "undefined name 'bar'",
		},
		{
			name: "no space",
			line: "foo.py:10:1:E302",
			exp:  "foo.py:10:1:E302",
		},
		{
			name: "empty line",
			line: "",
			exp:  "",
		},
		{
			name: "leading space",
			line: " D100 Missing docstring",
			exp:  "D100 Missing docstring",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeLine(d.line); got != d.exp {
				t.Errorf("wanted %q, got %q", d.exp, got)
			}
		})
	}
}

func Test_normalizeLine_spaceFree(t *testing.T) {
	t.Parallel()
	// A line without a space must survive normalization unchanged, no matter
	// how often it is applied.
	line := "E501"
	if got := normalizeLine(line); got != line {
		t.Errorf("wanted %q, got %q", line, got)
	}
	if got := normalizeLine(normalizeLine(line)); got != line {
		t.Errorf("wanted %q, got %q", line, got)
	}
}

func Test_splitLines(t *testing.T) {
	t.Parallel()
	data := []struct {
		name string
		out  string
		exp  []string
	}{
		{
			name: "empty output",
			out:  "",
			exp:  nil,
		},
		{
			name: "single line",
			out:  "foo.py:1:1: E302\n",
			exp:  []string{"foo.py:1:1: E302"},
		},
		{
			name: "multiple lines",
			out:  "a\nb\n",
			exp:  []string{"a", "b"},
		},
		{
			name: "interior empty line is kept",
			out:  "a\n\nb\n",
			exp:  []string{"a", "", "b"},
		},
		{
			name: "no trailing newline",
			out:  "a\nb",
			exp:  []string{"a", "b"},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(d.exp, splitLines(d.out)); diff != "" {
				t.Errorf("splitLines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReport_Lines(t *testing.T) {
	t.Parallel()
	report := &Report{
		Findings: []*Finding{
			{File: "a.py", Checker: "pyflakes", Text: "undefined name 'x'"},
			{File: "b.py", Checker: "pycodestyle", Text: "E501 line too long"},
		},
	}
	exp := []string{"undefined name 'x'", "E501 line too long"}
	if diff := cmp.Diff(exp, report.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestController_generateReport(t *testing.T) {
	t.Parallel()
	g := newFakeGit()
	g.changedFiles = []string{"/repo/a.py", "/repo/b.py"}
	inv := &fakeInvoker{
		git: g,
		outputs: map[string]string{
			"main pycodestyle --max-line-length=79 /repo/a.py": "a.py:1:1: E302 expected 2 blank lines\na.py:9:80: E501 line too long\n",
			"main pyflakes /repo/b.py":                         "b.py:3:1: undefined name 'x'\n",
		},
	}
	stderr := &bytes.Buffer{}
	c := &Controller{
		git:     g,
		invoker: inv,
		logger:  NewLogger(&bytes.Buffer{}, stderr),
	}
	battery := []*checker.Checker{
		{Name: "pycodestyle", Args: []string{"--max-line-length=79"}},
		{Name: "pyflakes"},
	}

	report, err := c.generateReport(t.Context(), "main", "/repo", g.changedFiles, battery)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"main"}, g.checkouts); diff != "" {
		t.Errorf("checkouts mismatch (-want +got):\n%s", diff)
	}
	// Every checker runs against every file, file major, battery order minor.
	expCalls := []string{
		"main pycodestyle --max-line-length=79 /repo/a.py",
		"main pyflakes /repo/a.py",
		"main pycodestyle --max-line-length=79 /repo/b.py",
		"main pyflakes /repo/b.py",
	}
	if diff := cmp.Diff(expCalls, inv.calls); diff != "" {
		t.Errorf("invocations mismatch (-want +got):\n%s", diff)
	}
	expFindings := []*Finding{
		{File: "a.py", Checker: "pycodestyle", Text: "E302 expected 2 blank lines"},
		{File: "a.py", Checker: "pycodestyle", Text: "E501 line too long"},
		{File: "b.py", Checker: "pyflakes", Text: "undefined name 'x'"},
	}
	if diff := cmp.Diff(expFindings, report.Findings); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
	// Command lines are echoed before each invocation.
	echoed := stderr.String()
	for _, cmdLine := range []string{
		"pycodestyle --max-line-length=79 /repo/a.py",
		"pyflakes /repo/b.py",
	} {
		if !strings.Contains(echoed, cmdLine) {
			t.Errorf("stderr doesn't contain %q:\n%s", cmdLine, echoed)
		}
	}
}

func TestController_generateReport_invokerError(t *testing.T) {
	t.Parallel()
	g := newFakeGit()
	inv := &fakeInvoker{
		git: g,
		err: errors.New("fork/exec: permission denied"),
	}
	c := &Controller{
		git:     g,
		invoker: inv,
		logger:  NewLogger(&bytes.Buffer{}, &bytes.Buffer{}),
	}

	_, err := c.generateReport(t.Context(), "main", "/repo", g.changedFiles, checker.Defaults())
	if err == nil {
		t.Fatal("an error must be returned")
	}
}

func TestController_generateReport_checkoutError(t *testing.T) {
	t.Parallel()
	g := newFakeGit()
	g.checkoutErrAt = map[int]error{0: errors.New("pathspec 'feature' did not match")}
	inv := &fakeInvoker{git: g}
	c := &Controller{
		git:     g,
		invoker: inv,
		logger:  NewLogger(&bytes.Buffer{}, &bytes.Buffer{}),
	}

	_, err := c.generateReport(t.Context(), "feature", "/repo", g.changedFiles, checker.Defaults())
	if err == nil {
		t.Fatal("an error must be returned")
	}
	if len(inv.calls) != 0 {
		t.Errorf("no checker must run when the checkout fails: %v", inv.calls)
	}
}
