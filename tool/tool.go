// Package tool runs external build tools.
package tool

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// Command is a single invocation of an external tool.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// String renders the command line for logging.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Outcome is what an external tool left behind once it exited.
// Output is only populated when the runner captures it.
type Outcome struct {
	ExitCode int
	Output   []byte
}

// Runner runs one external command to completion. A non-nil error means the
// command could not be started; a started command always reports its exit code.
type Runner interface {
	Run(cmd Command) (Outcome, error)
}

// ParseExecutable splits a configured tool string such as "fvm flutter" into
// the executable and the arguments to place before the task's own arguments.
func ParseExecutable(s string) (string, []string, error) {
	if strings.ContainsAny(s, "\r\n") {
		return "", nil, fmt.Errorf("tool %q must not contain newlines", s)
	}
	parts, err := shlex.Split(s)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse tool %q: %w", s, err)
	}
	if len(parts) == 0 {
		return "", nil, fmt.Errorf("tool must not be empty")
	}
	if strings.HasPrefix(parts[0], "-") {
		return "", nil, fmt.Errorf("tool %q must not start with a dash", s)
	}
	return parts[0], parts[1:], nil
}
