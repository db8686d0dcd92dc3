package run

import (
	"context"
	"fmt"
	"strings"

	"github.com/suzuki-shunsuke/lintdiff/pkg/github"
)

type IssuesService interface {
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
}

// Review identifies the pull request that receives added issues as a
// comment.
type Review struct {
	RepoOwner   string
	RepoName    string
	PullRequest int
}

func (r *Review) Valid() bool {
	return r != nil && r.RepoOwner != "" && r.RepoName != "" && r.PullRequest > 0
}

const commentHeader = "Reported by [lintdiff](https://github.com/suzuki-shunsuke/lintdiff)"

// review posts the added issues to the pull request as a single comment. A
// failure here must not change the gate result, so the caller only logs it.
func (c *Controller) review(ctx context.Context, outcome *Outcome) error {
	cmt := &github.IssueComment{
		Body: github.Ptr(commentBody(outcome)),
	}
	if _, _, err := c.issuesService.CreateComment(ctx, c.param.Review.RepoOwner, c.param.Review.RepoName, c.param.Review.PullRequest, cmt); err != nil {
		return fmt.Errorf("create a pull request comment: %w", err)
	}
	return nil
}

func commentBody(outcome *Outcome) string {
	b := &strings.Builder{}
	fmt.Fprintln(b, commentHeader)
	fmt.Fprintln(b)
	fmt.Fprintf(b, "This change adds %d issues.\n", len(outcome.Added))
	fmt.Fprintln(b)
	for _, f := range outcome.Added {
		fmt.Fprintf(b, "- `%s` (%s) %s\n", f.File, f.Checker, f.Text)
	}
	return b.String()
}
