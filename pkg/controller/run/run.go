package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/lintdiff/pkg/checker"
	"github.com/suzuki-shunsuke/lintdiff/pkg/config"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

type ParamRun struct {
	ConfigFilePath  string
	Base            string
	Format          string
	Diff            bool
	IsGitHubActions bool
	Stdout          io.Writer
	Stderr          io.Writer
	Review          *Review
}

// ErrIssuesAdded is returned when the current revision adds issues the base
// revision doesn't have.
var ErrIssuesAdded = errors.New("issues are added")

const formatSARIF = "sarif"

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	if c.param.IsGitHubActions {
		// GitHub Actions logs render ANSI colors but no TTY is attached, so
		// color autodetection would strip them.
		color.NoColor = false
	}
	if err := validateFormat(c.param.Format); err != nil {
		return err
	}
	if err := c.readConfig(); err != nil {
		return err
	}
	battery := c.battery()
	if err := c.checkBattery(battery); err != nil {
		return err
	}
	if err := c.checkWorkingTree(ctx); err != nil {
		return err
	}
	headRef, err := c.git.CurrentRef(ctx)
	if err != nil {
		return err
	}
	baseRef, err := c.baseRef(ctx)
	if err != nil {
		return err
	}
	root, err := c.git.Root(ctx)
	if err != nil {
		return err
	}
	// The changed file set is computed exactly once. Both reports must cover
	// the identical files, differing only in revision content.
	files, err := c.changedFiles(ctx, logE, root, baseRef, headRef)
	if err != nil {
		return err
	}
	candidate, baseline, err := c.generateReports(ctx, logE, headRef, baseRef, root, files, battery)
	if err != nil {
		return err
	}
	outcome := classify(baseline, candidate)
	if err := c.output(battery, baseline, candidate, outcome); err != nil {
		return err
	}
	if len(outcome.Added) == 0 {
		return nil
	}
	if c.param.Review.Valid() {
		if err := c.review(ctx, outcome); err != nil {
			logerr.WithError(logE, err).Warn("create a pull request comment")
		}
	}
	return ErrIssuesAdded
}

func validateFormat(format string) error {
	switch format {
	case "", formatSARIF:
		return nil
	default:
		return fmt.Errorf("format must be either empty or %s: %s", formatSARIF, format)
	}
}

func (c *Controller) readConfig() error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	c.param.ConfigFilePath = p
	cfg := &config.Config{}
	if err := c.cfgReader.Read(cfg, c.param.ConfigFilePath); err != nil {
		return fmt.Errorf("read a config file: %w", err)
	}
	c.cfg = cfg
	return nil
}

// battery returns the ordered list of checkers to run. The order is part of
// the contract: both report generations must run the same checkers in the
// same order, otherwise the line diff would compare unrelated lines.
func (c *Controller) battery() []*checker.Checker {
	if len(c.cfg.Checkers) == 0 {
		return checker.Defaults()
	}
	battery := make([]*checker.Checker, 0, len(c.cfg.Checkers))
	for _, chk := range c.cfg.Checkers {
		battery = append(battery, &checker.Checker{
			Name: chk.Name,
			Args: chk.Args,
		})
	}
	return battery
}

// checkBattery fails if any checker of the battery isn't installed. Running
// a partial battery would produce asymmetric reports, so the gate refuses to
// start instead.
func (c *Controller) checkBattery(battery []*checker.Checker) error {
	for _, chk := range battery {
		if _, err := c.invoker.LookPath(chk.Name); err != nil {
			return fmt.Errorf("a checker isn't installed: %w", logerr.WithFields(err, logrus.Fields{
				"checker": chk.Name,
			}))
		}
	}
	return nil
}

// checkWorkingTree fails if the working tree has uncommitted changes.
// Checking revisions out would clobber them.
func (c *Controller) checkWorkingTree(ctx context.Context) error {
	dirty, err := c.git.IsDirty(ctx)
	if err != nil {
		return err
	}
	if dirty {
		return errors.New("the working tree has uncommitted changes. Commit or stash them")
	}
	return nil
}

// baseRef resolves the revision the current revision is compared against. An
// explicit revision from the command line or the configuration file takes
// precedence over the upstream branch of the current branch.
func (c *Controller) baseRef(ctx context.Context) (string, error) {
	if c.param.Base != "" {
		return c.param.Base, nil
	}
	if c.cfg.Base != "" {
		return c.cfg.Base, nil
	}
	return c.git.UpstreamRef(ctx) //nolint:wrapcheck
}

func (c *Controller) changedFiles(ctx context.Context, logE *logrus.Entry, root, baseRef, headRef string) ([]string, error) {
	files, err := c.git.ChangedFiles(ctx, baseRef, headRef)
	if err != nil {
		return nil, err
	}
	if len(c.cfg.ExcludeFiles) == 0 {
		return files, nil
	}
	arr := make([]string, 0, len(files))
	for _, file := range files {
		rel := relpath(root, file)
		excluded, err := c.excludeFile(rel)
		if err != nil {
			return nil, err
		}
		if excluded {
			logE.WithField("file", rel).Debug("exclude a file")
			continue
		}
		arr = append(arr, file)
	}
	return arr, nil
}

func (c *Controller) excludeFile(rel string) (bool, error) {
	for _, e := range c.cfg.ExcludeFiles {
		f, err := e.Match(rel)
		if err != nil {
			return false, fmt.Errorf("match a changed file against exclude_files: %w", err)
		}
		if f {
			return true, nil
		}
	}
	return false, nil
}

// generateReports produces the candidate report at headRef and the baseline
// report at baseRef. The original revision is restored on every exit path,
// including failures and cancellation, so the gate never leaves the
// repository checked out at the wrong revision.
func (c *Controller) generateReports(ctx context.Context, logE *logrus.Entry, headRef, baseRef, root string, files []string, battery []*checker.Checker) (candidate, baseline *Report, err error) {
	defer func() {
		// The restore must happen even when ctx was canceled, so it doesn't
		// inherit the cancellation.
		rerr := c.git.Checkout(context.WithoutCancel(ctx), headRef)
		if rerr == nil {
			return
		}
		if err == nil {
			err = fmt.Errorf("restore the original revision: %w", rerr)
			return
		}
		logerr.WithError(logE, rerr).Error("restore the original revision")
	}()
	candidate, err = c.generateReport(ctx, headRef, root, files, battery)
	if err != nil {
		return nil, nil, err
	}
	baseline, err = c.generateReport(ctx, baseRef, root, files, battery)
	if err != nil {
		return nil, nil, err
	}
	return candidate, baseline, nil
}

func (c *Controller) output(battery []*checker.Checker, baseline, candidate *Report, outcome *Outcome) error {
	if c.param.Diff {
		if err := c.outputDiff(baseline, candidate); err != nil {
			return err
		}
	}
	if c.param.Format == formatSARIF {
		return c.outputSARIF(battery, outcome)
	}
	if n := len(outcome.Added); n > 0 {
		c.logger.Added(n)
	}
	if n := len(outcome.Removed); n > 0 {
		c.logger.Removed(n)
	}
	return nil
}

// relpath returns file relative to root. It falls back to the absolute path
// when file is outside root.
func relpath(root, file string) string {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return file
	}
	return rel
}
