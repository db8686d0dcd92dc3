// Package run implements the core business logic of the lintdiff gate.
// This package contains the main controller that orchestrates the entire
// differential analysis, including verifying the checker battery and the
// working tree, resolving the two revisions being compared, computing the
// changed file set, generating a normalized diagnostic report per revision,
// classifying the two reports into added and removed issues, and reporting
// the result. The original revision is restored on every exit path, even
// when a report generation fails or the context is canceled. The version
// control system, the checker processes, and the GitHub API are injected as
// narrow interfaces so the logic can be tested without git, installed
// linters, or network access.
package run

import (
	"context"

	"github.com/suzuki-shunsuke/lintdiff/pkg/config"
)

type Controller struct {
	git           GitClient
	invoker       Invoker
	issuesService IssuesService
	cfg           *config.Config
	param         *ParamRun
	cfgFinder     ConfigFinder
	cfgReader     ConfigReader
	logger        *Logger
}

// GitClient is the version control capability the gate depends on.
type GitClient interface {
	CurrentRef(ctx context.Context) (string, error)
	UpstreamRef(ctx context.Context) (string, error)
	Root(ctx context.Context) (string, error)
	IsDirty(ctx context.Context) (bool, error)
	Checkout(ctx context.Context, ref string) error
	ChangedFiles(ctx context.Context, baseRef, headRef string) ([]string, error)
}

// Invoker resolves checker binaries and runs checker processes.
type Invoker interface {
	LookPath(name string) (string, error)
	CombinedOutput(ctx context.Context, name string, args ...string) (string, error)
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

func New(gitClient GitClient, invoker Invoker, issuesService IssuesService, cfgFinder ConfigFinder, cfgReader ConfigReader, param *ParamRun) *Controller {
	return &Controller{
		git:           gitClient,
		invoker:       invoker,
		issuesService: issuesService,
		param:         param,
		cfgFinder:     cfgFinder,
		cfgReader:     cfgReader,
		cfg:           &config.Config{},
		logger:        NewLogger(param.Stdout, param.Stderr),
	}
}
