package run

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Outcome is the classification of the two reports: the diagnostics the
// current revision adds over the baseline and the ones it removes.
type Outcome struct {
	Added   []*Finding
	Removed []*Finding
}

// classify computes a line sequence diff between the baseline report and the
// candidate report. Lines only in the candidate are added, lines only in the
// baseline are removed. This is an order sensitive diff, not a set
// difference: a diagnostic that merely moved within the report counts as
// removed at its old position and added at its new one.
func classify(baseline, candidate *Report) *Outcome {
	matcher := difflib.NewMatcher(baseline.Lines(), candidate.Lines())
	outcome := &Outcome{}
	for _, op := range matcher.GetOpCodes() {
		if op.Tag == 'd' || op.Tag == 'r' {
			outcome.Removed = append(outcome.Removed, baseline.Findings[op.I1:op.I2]...)
		}
		if op.Tag == 'i' || op.Tag == 'r' {
			outcome.Added = append(outcome.Added, candidate.Findings[op.J1:op.J2]...)
		}
	}
	return outcome
}
