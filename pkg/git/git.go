// Package git wraps the git command line. The gate needs six primitives from
// the version control system: resolve the current ref, resolve the upstream
// ref, list files differing between two revisions, check a revision out,
// report whether the working tree is dirty, and report the repository root.
// Everything is implemented by shelling out to git; output and chatter are
// captured so they never leak into checker output.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// Runner executes a single git command and returns its stdout with the
// trailing newline removed. Tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecRunner runs the git binary. Stdout and stderr are both captured;
// stderr only surfaces inside error messages so the VCS's progress chatter
// can't pollute the streams the gate owns.
type ExecRunner struct {
	Dir string
}

func (e *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	if e.Dir != "" {
		cmd.Dir = e.Dir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", args[0], msg)
	}
	return strings.TrimRight(stdout.String(), "\n"), nil
}

// Client answers the version control queries the gate depends on.
type Client struct {
	runner Runner
}

func New(dir string) *Client {
	return &Client{runner: &ExecRunner{Dir: dir}}
}

// CurrentRef resolves the active revision, preferring a branch name over a
// hash. A detached HEAD has no branch name, so the resolved hash is returned
// instead.
func (c *Client) CurrentRef(ctx context.Context) (string, error) {
	if out, err := c.runner.Run(ctx, "symbolic-ref", "--short", "-q", "HEAD"); err == nil && out != "" {
		return out, nil
	}
	out, err := c.runner.Run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("resolve the current revision: %w", err)
	}
	return out, nil
}

// UpstreamRef resolves the branch the current branch is tracking.
func (c *Client) UpstreamRef(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}")
	if err != nil {
		return "", fmt.Errorf("resolve the upstream revision: %w", err)
	}
	return out, nil
}

// Root returns the absolute path of the repository's top level directory.
func (c *Client) Root(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("locate the repository root: %w", err)
	}
	return out, nil
}

// IsDirty reports whether the working tree has uncommitted changes,
// including untracked files.
func (c *Client) IsDirty(ctx context.Context) (bool, error) {
	out, err := c.runner.Run(ctx, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("check the working tree state: %w", err)
	}
	return out != "", nil
}

// Checkout makes the working tree match ref. Destructive.
func (c *Client) Checkout(ctx context.Context, ref string) error {
	if _, err := c.runner.Run(ctx, "checkout", "--quiet", ref); err != nil {
		return fmt.Errorf("check out %s: %w", ref, err)
	}
	return nil
}

// ChangedFiles lists the files whose content differs between two revisions,
// as sorted absolute paths rooted at the repository root. The absolute paths
// stay valid no matter which revision is checked out or what the current
// working directory is. Read only.
func (c *Client) ChangedFiles(ctx context.Context, baseRef, headRef string) ([]string, error) {
	root, err := c.Root(ctx)
	if err != nil {
		return nil, err
	}
	out, err := c.runner.Run(ctx, "diff", "--name-only", baseRef, headRef)
	if err != nil {
		return nil, fmt.Errorf("list files changed between %s and %s: %w", baseRef, headRef, err)
	}
	if out == "" {
		return nil, nil
	}
	lines := strings.Split(out, "\n")
	files := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		files = append(files, filepath.Join(root, line))
	}
	sort.Strings(files)
	return files, nil
}
