package task

import (
	"fmt"

	"github.com/daedaleanai/holbuild/project"
)

// ConfigurationError is shared with the project package so callers match a
// single type.
type ConfigurationError = project.ConfigurationError

// ExternalToolError reports that an external tool exited with a non-zero
// status. ExitCode is -1 when the tool could not be started at all, in which
// case Err holds the reason.
type ExternalToolError struct {
	Tool     string
	ExitCode int
	Output   []byte
	Err      error
}

func (e *ExternalToolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to run %s: %s", e.Tool, e.Err)
	}
	return fmt.Sprintf("%s exited with status %d", e.Tool, e.ExitCode)
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}

// FilesystemError reports a failure to prepare or read a directory.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s '%s': %s", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
