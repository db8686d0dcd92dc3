// Package list implements the 'lintdiff list' command.
// This package prints the effective checker battery with support for custom
// output formatting.
package list

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/lintdiff/pkg/checker"
	"github.com/suzuki-shunsuke/lintdiff/pkg/cli/flag"
	"github.com/suzuki-shunsuke/lintdiff/pkg/config"
	"github.com/suzuki-shunsuke/lintdiff/pkg/controller/list"
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
		Name:  "list",
		Usage: "List the checkers lintdiff runs",
		Description: `List the effective checker battery.

$ lintdiff list

Output format (default CSV):
<Name>,<Args>,<Path>

Path is empty when the checker isn't installed.

Custom output format using Go template:
$ lintdiff list --line-template "{{.Name}}"

Available template fields:
  Name - Executable name of the checker
  Args - Fixed arguments, space joined
  Path - Install location, empty when the checker isn't installed
`,
		Action: r.action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "line-template",
				Usage: "Go text/template format for each line",
			},
		},
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	log.SetLevel(r.gFlags.LogLevel, r.logE)
	log.SetColor(r.gFlags.LogColor, r.logE)

	fs := afero.NewOsFs()
	cfg, err := readConfig(fs, r.gFlags.Config)
	if err != nil {
		return err
	}

	param := &list.Param{
		LineTemplate: c.String("line-template"),
	}
	ctrl := list.New(cfg, param, checker.NewInvoker(), os.Stdout)
	return ctrl.List() //nolint:wrapcheck
}

func readConfig(fs afero.Fs, configFilePath string) (*config.Config, error) {
	cfgFinder := config.NewFinder(fs)
	cfgReader := config.NewReader(fs)
	cfgPath, err := cfgFinder.Find(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("find a configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := cfgReader.Read(cfg, cfgPath); err != nil {
		return nil, fmt.Errorf("read a configuration file: %w", err)
	}
	return cfg, nil
}
