package list

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/suzuki-shunsuke/lintdiff/pkg/checker"
)

// List outputs the effective checker battery: the configured checkers, or
// the default battery if the configuration file doesn't define any. Checkers
// that aren't installed are still listed, with an empty install location.
func (c *Controller) List() error {
	tmpl, err := c.parseTemplate()
	if err != nil {
		return err
	}
	for _, chk := range c.battery() {
		info := &CheckerInfo{
			Name: chk.Name,
			Args: strings.Join(chk.Args, " "),
		}
		if p, err := c.invoker.LookPath(chk.Name); err == nil {
			info.Path = p
		}
		if err := c.output(info, tmpl); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) battery() []*checker.Checker {
	if c.cfg == nil || len(c.cfg.Checkers) == 0 {
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

func (c *Controller) parseTemplate() (*template.Template, error) {
	if c.param.LineTemplate == "" {
		return nil, nil //nolint:nilnil
	}
	tmpl, err := template.New("line").Parse(c.param.LineTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse line template: %w", err)
	}
	return tmpl, nil
}

func (c *Controller) output(info *CheckerInfo, tmpl *template.Template) error {
	if tmpl != nil {
		if err := tmpl.Execute(c.stdout, info); err != nil {
			return fmt.Errorf("execute template: %w", err)
		}
		fmt.Fprintln(c.stdout)
		return nil
	}
	// Default CSV format: <Name>,<Args>,<Path>
	fmt.Fprintf(c.stdout, "%s,%s,%s\n", info.Name, info.Args, info.Path)
	return nil
}
