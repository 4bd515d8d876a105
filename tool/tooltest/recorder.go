// Package tooltest provides a tool.Runner that records invocations instead
// of spawning processes.
package tooltest

import (
	"github.com/daedaleanai/holbuild/tool"
)

// Recorder records every command it is asked to run and answers with a
// scripted outcome. Outcomes are keyed by executable name; commands without
// an entry succeed with exit code 0. Tasks run one at a time, so a Recorder
// is not safe for concurrent use.
type Recorder struct {
	Calls    []tool.Command
	Outcomes map[string]tool.Outcome
	Errors   map[string]error
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Outcomes: map[string]tool.Outcome{},
		Errors:   map[string]error{},
	}
}

// ExitWith makes every invocation of `name` report `code` and `output`.
func (r *Recorder) ExitWith(name string, code int, output string) *Recorder {
	r.Outcomes[name] = tool.Outcome{ExitCode: code, Output: []byte(output)}
	return r
}

// FailToStart makes every invocation of `name` fail with `err` as if the
// executable could not be launched.
func (r *Recorder) FailToStart(name string, err error) *Recorder {
	r.Errors[name] = err
	return r
}

func (r *Recorder) Run(cmd tool.Command) (tool.Outcome, error) {
	r.Calls = append(r.Calls, tool.Command{
		Name: cmd.Name,
		Args: append([]string(nil), cmd.Args...),
		Dir:  cmd.Dir,
	})
	if err, ok := r.Errors[cmd.Name]; ok {
		return tool.Outcome{ExitCode: -1}, err
	}
	return r.Outcomes[cmd.Name], nil
}

// Names returns the executables invoked so far, in order.
func (r *Recorder) Names() []string {
	names := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		names = append(names, c.Name)
	}
	return names
}
