package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/suzuki-shunsuke/lintdiff/refs/heads/main/json-schema/lintdiff.json
# lintdiff - https://github.com/suzuki-shunsuke/lintdiff
# base: origin/main
# checkers:
#   - name: pycodestyle
#     args:
#       - --max-line-length=100
#   - name: pydocstyle
#   - name: pyflakes
# exclude_files:
#   - pattern: "*_pb2.py"
#   - pattern: vendor/*
`
	filePermission os.FileMode = 0o644
)

// Init creates a new lintdiff configuration file if it doesn't exist.
// The generated file only contains commented out examples because the gate
// works without any configuration.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
