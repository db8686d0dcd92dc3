// Package list implements the 'lintdiff list' command.
// This package prints the effective checker battery, resolving the
// configuration file override and the install location of each checker, with
// support for custom output formatting.
package list

import (
	"io"

	"github.com/suzuki-shunsuke/lintdiff/pkg/config"
)

// Controller handles the list command operations.
type Controller struct {
	cfg     *config.Config
	param   *Param
	invoker Invoker
	stdout  io.Writer
}

// Invoker resolves checker binaries on PATH.
type Invoker interface {
	LookPath(name string) (string, error)
}

// Param contains parameters for the list command.
type Param struct {
	LineTemplate string
}

// New creates a new Controller for running list operations.
func New(cfg *config.Config, param *Param, invoker Invoker, stdout io.Writer) *Controller {
	return &Controller{
		cfg:     cfg,
		param:   param,
		invoker: invoker,
		stdout:  stdout,
	}
}
