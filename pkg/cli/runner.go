package cli

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/lintdiff/pkg/cli/flag"
	"github.com/suzuki-shunsuke/lintdiff/pkg/cli/initcmd"
	"github.com/suzuki-shunsuke/lintdiff/pkg/cli/list"
	"github.com/suzuki-shunsuke/lintdiff/pkg/cli/run"
	"github.com/urfave/cli/v3"
)

type Runner struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	LDFlags *LDFlags
	LogE    *logrus.Entry
}

type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	gFlags := &flag.GlobalFlags{}
	cmd := &cli.Command{
		Name:                  "lintdiff",
		Usage:                 "Report issues added by a change. https://github.com/suzuki-shunsuke/lintdiff",
		Version:               r.LDFlags.Version + " (" + r.LDFlags.Commit + ")",
		Flags:                 gFlags.Flags(),
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			run.New(r.LogE, gFlags),
			initcmd.New(r.LogE, gFlags),
			list.New(r.LogE, gFlags),
			r.newVersionCommand(),
		},
	}

	return cmd.Run(ctx, args) //nolint:wrapcheck
}
