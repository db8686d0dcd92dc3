// Package initcmd implements the 'lintdiff init' command.
// This package is responsible for generating lintdiff configuration files
// (.lintdiff.yaml) with commented out examples to help users quickly set up
// lintdiff in their repositories.
package initcmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/lintdiff/pkg/cli/flag"
	"github.com/suzuki-shunsuke/lintdiff/pkg/controller/initcmd"
	"github.com/suzuki-shunsuke/lintdiff/pkg/log"
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
		Name:  "init",
		Usage: "Create .lintdiff.yaml if it doesn't exist",
		Description: `Create .lintdiff.yaml if it doesn't exist

$ lintdiff init

You can also pass a configuration file path.

e.g.

$ lintdiff init .github/lintdiff.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	log.SetLevel(r.gFlags.LogLevel, r.logE)
	log.SetColor(r.gFlags.LogColor, r.logE)
	ctrl := initcmd.New(afero.NewOsFs())
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = r.gFlags.Config
	}
	if configFilePath == "" {
		configFilePath = ".lintdiff.yaml"
	}
	return ctrl.Init(configFilePath) //nolint:wrapcheck
}
