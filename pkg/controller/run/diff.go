package run

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// outputDiff prints the unified diff of the two reports to stderr so users
// can see which diagnostics changed, not only how many.
func (c *Controller) outputDiff(baseline, candidate *Report) error {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        terminateLines(baseline.Lines()),
		B:        terminateLines(candidate.Lines()),
		FromFile: "baseline",
		ToFile:   "candidate",
		Context:  3, //nolint:mnd
	})
	if err != nil {
		return fmt.Errorf("render the diff of reports: %w", err)
	}
	fmt.Fprint(c.param.Stderr, text)
	return nil
}

// terminateLines appends the trailing newline difflib expects each line to
// carry.
func terminateLines(lines []string) []string {
	arr := make([]string, len(lines))
	for i, line := range lines {
		arr[i] = line + "\n"
	}
	return arr
}
