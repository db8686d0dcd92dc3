package run

import (
	"encoding/json"
	"fmt"

	"github.com/suzuki-shunsuke/lintdiff/pkg/checker"
	"github.com/suzuki-shunsuke/lintdiff/pkg/sarif"
)

// outputSARIF outputs the added issues in SARIF format to stdout. The rules
// are the checkers of the battery. Results carry only the file they were
// reported against: normalization strips position markers, so line numbers
// are unknown.
func (c *Controller) outputSARIF(battery []*checker.Checker, outcome *Outcome) error {
	rules := make([]sarif.Rule, 0, len(battery))
	for _, chk := range battery {
		rules = append(rules, sarif.Rule{
			ID: chk.Name,
			ShortDescription: sarif.Message{
				Text: "Issue reported by " + chk.Name,
			},
		})
	}
	log := sarif.Log{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarif.Run{
			{
				Tool: sarif.Tool{
					Driver: sarif.Driver{
						Name:           "lintdiff",
						InformationURI: "https://github.com/suzuki-shunsuke/lintdiff",
						Rules:          rules,
					},
				},
				Results: buildSARIFResults(outcome),
			},
		},
	}

	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func buildSARIFResults(outcome *Outcome) []sarif.Result {
	results := make([]sarif.Result, 0, len(outcome.Added))
	for _, f := range outcome.Added {
		results = append(results, sarif.Result{
			RuleID:  f.Checker,
			Level:   "warning",
			Message: sarif.Message{Text: f.Text},
			Locations: []sarif.Location{
				{
					PhysicalLocation: sarif.PhysicalLocation{
						ArtifactLocation: sarif.ArtifactLocation{
							URI: f.File,
						},
					},
				},
			},
		})
	}
	return results
}
