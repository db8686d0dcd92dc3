package config

import (
	"errors"
	"fmt"
	"path"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Checkers     []*Checker     `json:"checkers,omitempty" jsonschema:"description=Checkers run against each changed file. If empty, the default battery (pycodestyle, pydocstyle, pyflakes) is used"`
	Base         string         `json:"base,omitempty" jsonschema:"description=The revision the current revision is compared against. If empty, the upstream branch of the current branch is used"`
	ExcludeFiles []*ExcludeFile `json:"exclude_files,omitempty" yaml:"exclude_files" jsonschema:"description=Changed files that checkers skip"`
}

type Checker struct {
	Name string   `json:"name" jsonschema:"description=The executable name of the checker"`
	Args []string `json:"args,omitempty" jsonschema:"description=Command line arguments inserted before the file path"`
}

func (c *Checker) Init() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

type ExcludeFile struct {
	Pattern string `json:"pattern" jsonschema:"description=A glob pattern matched against file paths relative to the repository root"`
}

func (e *ExcludeFile) Init() error {
	if e.Pattern == "" {
		return errors.New("pattern is required")
	}
	if _, err := path.Match(e.Pattern, "a"); err != nil {
		return fmt.Errorf("parse pattern as a glob: %w", err)
	}
	return nil
}

func (e *ExcludeFile) Match(file string) (bool, error) {
	f, err := path.Match(e.Pattern, file)
	if err != nil {
		return false, fmt.Errorf("match as a glob: %w", err)
	}
	return f, nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".lintdiff.yaml", ".github/lintdiff.yaml", ".lintdiff.yml", ".github/lintdiff.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p, err := getConfigPath(f.fs)
	if err != nil {
		return "", err
	}
	return p, nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	for _, c := range cfg.Checkers {
		if err := c.Init(); err != nil {
			return fmt.Errorf("initialize checker: %w", err)
		}
	}
	for _, e := range cfg.ExcludeFiles {
		if err := e.Init(); err != nil {
			return fmt.Errorf("initialize exclude_file: %w", err)
		}
	}
	return nil
}
