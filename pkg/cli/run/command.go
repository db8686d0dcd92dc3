// Package run implements the 'lintdiff run' command, the gate itself.
package run

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/lintdiff/pkg/checker"
	"github.com/suzuki-shunsuke/lintdiff/pkg/cli/flag"
	"github.com/suzuki-shunsuke/lintdiff/pkg/config"
	"github.com/suzuki-shunsuke/lintdiff/pkg/controller/run"
	"github.com/suzuki-shunsuke/lintdiff/pkg/git"
	"github.com/suzuki-shunsuke/lintdiff/pkg/github"
	"github.com/suzuki-shunsuke/lintdiff/pkg/log"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, gFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE:   logE,
		gFlags: gFlags,
	}
	return r.Command()
}

type runner struct {
	logE   *logrus.Entry
	gFlags *flag.GlobalFlags
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Compare issues between the current revision and the base revision",
		Description: `Run checkers against the files the current revision changes, at both the
current revision and the base revision, and compare the two reports.

$ lintdiff run

The command exits with a non-zero status code if the change adds issues.
Removing issues is fine. By default the base revision is the upstream branch
of the current branch.

$ lintdiff run -base origin/main
`,
		Action: r.action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "base",
				Usage: "Base revision to compare against. By default, the upstream branch of the current branch",
			},
			&cli.BoolFlag{
				Name:  "diff",
				Usage: "Output the diff of the two reports. By default, this is false",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format. Either empty or 'sarif'",
			},
			&cli.BoolFlag{
				Name:  "review",
				Usage: "Create a pull request comment if issues are added",
			},
			&cli.StringFlag{
				Name:    "repo-owner",
				Usage:   "GitHub repository owner",
				Sources: cli.EnvVars("GITHUB_REPOSITORY_OWNER"),
			},
			&cli.StringFlag{
				Name:  "repo-name",
				Usage: "GitHub repository name",
			},
			&cli.IntFlag{
				Name:  "pr",
				Usage: "GitHub pull request number",
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	log.SetLevel(r.gFlags.LogLevel, r.logE)
	log.SetColor(r.gFlags.LogColor, r.logE)

	isGitHubActions := os.Getenv("GITHUB_ACTIONS") == "true"

	fs := afero.NewOsFs()
	var review *run.Review
	if c.Bool("review") {
		review = &run.Review{
			RepoOwner:   c.String("repo-owner"),
			RepoName:    c.String("repo-name"),
			PullRequest: c.Int("pr"),
		}
		if isGitHubActions {
			if err := r.setReview(fs, review); err != nil {
				logerr.WithError(r.logE, err).Error("set review information")
			}
		}
		if !review.Valid() {
			r.logE.Warn("skip creating a pull request comment because the review information is invalid")
			review = nil
		}
	}
	param := &run.ParamRun{
		ConfigFilePath:  r.gFlags.Config,
		Base:            c.String("base"),
		Diff:            c.Bool("diff"),
		Format:          c.String("format"),
		IsGitHubActions: isGitHubActions,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		Review:          review,
	}
	gh := github.New(ctx)
	ctrl := run.New(git.New(""), checker.NewInvoker(), gh.Issues, config.NewFinder(fs), config.NewReader(fs), param)
	return ctrl.Run(ctx, r.logE) //nolint:wrapcheck
}

// setReview fills missing review fields from the GitHub Actions environment:
// the repository from GITHUB_REPOSITORY and the pull request number from the
// event payload.
func (r *runner) setReview(fs afero.Fs, review *run.Review) error {
	ev := &Event{}
	if eventPath := os.Getenv("GITHUB_EVENT_PATH"); eventPath != "" {
		if err := readEvent(fs, ev, eventPath); err != nil {
			return err
		}
	}
	if review.RepoName == "" {
		if _, name, ok := strings.Cut(os.Getenv("GITHUB_REPOSITORY"), "/"); ok {
			review.RepoName = name
		} else {
			review.RepoName = ev.RepoName()
		}
	}
	if review.PullRequest == 0 {
		review.PullRequest = ev.PRNumber()
	}
	return nil
}
