package tool

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/daedaleanai/holbuild/log"
)

// ExecRunner spawns real processes. Unless Capture is set, the tool's
// stdout and stderr are passed through untouched.
type ExecRunner struct {
	Capture bool
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewExecRunner returns a runner writing to the process' own stdout and stderr.
func NewExecRunner(capture bool) *ExecRunner {
	return &ExecRunner{Capture: capture, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) Run(cmd Command) (Outcome, error) {
	execCmd := exec.Command(cmd.Name, cmd.Args...)
	execCmd.Dir = cmd.Dir

	var output bytes.Buffer
	if r.Capture {
		execCmd.Stdout = &output
		execCmd.Stderr = &output
	} else {
		execCmd.Stdout = r.Stdout
		execCmd.Stderr = r.Stderr
	}

	if err := execCmd.Start(); err != nil {
		return Outcome{ExitCode: -1}, err
	}

	if r.Capture && log.IsTerminal() {
		log.Spinner.Suffix = " " + cmd.Name
		log.Spinner.Start()
		defer log.Spinner.Stop()
	}

	// The tool belongs to our process group and gets Ctrl-C on its own.
	// We only wait for it to finish.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGINT)
	defer func() {
		signal.Stop(signals)
		close(signals)
	}()
	go func() {
		if _, ok := <-signals; ok {
			log.Warning("SIGINT: Waiting for %s to finish...\n", cmd.Name)
		}
	}()

	err := execCmd.Wait()
	outcome := Outcome{ExitCode: 0}
	if r.Capture {
		outcome.Output = output.Bytes()
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			outcome.ExitCode = -1
			return outcome, err
		}
		outcome.ExitCode = exitErr.ExitCode()
	}
	return outcome, nil
}
