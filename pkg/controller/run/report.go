package run

import (
	"context"
	"fmt"
	"strings"

	"github.com/suzuki-shunsuke/lintdiff/pkg/checker"
)

// Report is the ordered log of normalized diagnostic lines one revision
// produces: for each changed file, for each checker of the battery, the
// checker's output lines in emission order.
type Report struct {
	Findings []*Finding
}

// Lines returns the report as a plain line sequence for diffing.
func (r *Report) Lines() []string {
	lines := make([]string, len(r.Findings))
	for i, f := range r.Findings {
		lines[i] = f.Text
	}
	return lines
}

// generateReport checks ref out and runs every checker of the battery
// against every changed file, collecting normalized output lines. Checkers
// routinely exit nonzero when they report issues; their output is part of
// the report, not a failure. Restoring the previous revision is the caller's
// responsibility.
func (c *Controller) generateReport(ctx context.Context, ref, root string, files []string, battery []*checker.Checker) (*Report, error) {
	if err := c.git.Checkout(ctx, ref); err != nil {
		return nil, err
	}
	report := &Report{}
	for _, file := range files {
		rel := relpath(root, file)
		for _, chk := range battery {
			c.logger.Echo(chk.CommandLine(file))
			args := make([]string, 0, len(chk.Args)+1)
			args = append(args, chk.Args...)
			args = append(args, file)
			out, err := c.invoker.CombinedOutput(ctx, chk.Name, args...)
			if err != nil {
				return nil, fmt.Errorf("invoke a checker: %w", err)
			}
			for _, line := range splitLines(out) {
				report.Findings = append(report.Findings, &Finding{
					File:    rel,
					Checker: chk.Name,
					Text:    normalizeLine(line),
				})
			}
		}
	}
	return report, nil
}

// normalizeLine drops everything up to and including the first space of a
// diagnostic line. Checkers prefix each line with a position marker such as
// "foo.py:10:1:", and an edit shifts the line numbers of every diagnostic
// after it, which would make unchanged diagnostics look changed. A line
// without a space is kept as is.
func normalizeLine(line string) string {
	if _, after, ok := strings.Cut(line, " "); ok {
		return after
	}
	return line
}

func splitLines(out string) []string {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
