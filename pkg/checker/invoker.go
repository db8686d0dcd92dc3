package checker

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Invoker runs checker processes and resolves their binaries on PATH.
type Invoker struct{}

func NewInvoker() *Invoker {
	return &Invoker{}
}

// LookPath reports whether name resolves to an executable.
func (inv *Invoker) LookPath(name string) (string, error) {
	p, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("look up %s in PATH: %w", name, err)
	}
	return p, nil
}

// CombinedOutput invokes a command and captures its combined stdout and
// stderr. Checkers routinely exit nonzero when they report diagnostics, so an
// exit error is not a failure: the captured output is returned as is. Only
// infrastructure errors (the process can't be started, the context was
// canceled) are returned as errors.
func (inv *Invoker) CombinedOutput(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if ctx.Err() != nil {
		return "", fmt.Errorf("run %s: %w", name, ctx.Err())
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(out), nil
		}
		return "", fmt.Errorf("run %s: %w", name, err)
	}
	return string(out), nil
}
