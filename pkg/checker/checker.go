// Package checker defines the battery of external analysis tools and how a
// single tool is invoked against a single file. The battery is a declarative
// table; adding a checker is a data change, not a control-flow change.
package checker

import (
	"strings"
)

// Checker is one external analysis tool. Identity is the Name; Args are the
// fixed arguments prepended to every invocation. The target file path is
// always appended last.
type Checker struct {
	Name string
	Args []string
}

// CommandLine renders the full command line for invoking the checker against
// a file, for echoing to the diagnostic stream.
func (c *Checker) CommandLine(file string) string {
	elems := make([]string, 0, len(c.Args)+2)
	elems = append(elems, c.Name)
	elems = append(elems, c.Args...)
	elems = append(elems, file)
	return strings.Join(elems, " ")
}

// Defaults returns the built-in battery. The order is fixed: it determines
// report line order and must be identical for both report generations.
func Defaults() []*Checker {
	return []*Checker{
		{Name: "pycodestyle"},
		{Name: "pydocstyle"},
		{Name: "pyflakes"},
	}
}
