package run

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type colorFunc func(a ...interface{}) string

// Logger writes the gate's terminal output. The result summary goes to
// stdout; progress such as echoed checker command lines goes to stderr.
type Logger struct {
	stdout io.Writer
	stderr io.Writer
	red    colorFunc
	green  colorFunc
}

func NewLogger(stdout, stderr io.Writer) *Logger {
	return &Logger{
		red:    color.New(color.FgRed).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		stdout: stdout,
		stderr: stderr,
	}
}

// Echo prints a checker command line before it runs so users can follow the
// progress and reproduce an invocation by hand.
func (l *Logger) Echo(cmdLine string) {
	fmt.Fprintln(l.stderr, cmdLine)
}

// Added reports the number of added issues. Added issues fail the gate, so
// they are red.
func (l *Logger) Added(count int) {
	fmt.Fprintln(l.stdout, l.red(fmt.Sprintf("added %d issues", count)))
}

// Removed reports the number of removed issues in green.
func (l *Logger) Removed(count int) {
	fmt.Fprintln(l.stdout, l.green(fmt.Sprintf("removed %d issues!", count)))
}
