package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/daedaleanai/holbuild/log"
	"github.com/daedaleanai/holbuild/project"
	"github.com/daedaleanai/holbuild/task"

	"github.com/stretchr/testify/assert"
)

func quietLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestReportErrorPassesToolStatusThrough(t *testing.T) {
	buf := quietLog(t)
	err := fmt.Errorf("pipeline: %w", &task.ExternalToolError{Tool: "protoc", ExitCode: 2})
	assert.Equal(t, 2, reportError(err))
	assert.Contains(t, buf.String(), "protoc exited with status 2")
}

func TestReportErrorToolNotStarted(t *testing.T) {
	quietLog(t)
	err := &task.ExternalToolError{Tool: "flutter", ExitCode: -1, Err: errors.New("not found")}
	assert.Equal(t, 1, reportError(err))
}

func TestReportErrorOtherErrors(t *testing.T) {
	quietLog(t)
	assert.Equal(t, 1, reportError(&project.ConfigurationError{Reason: "anchor path is empty"}))
	assert.Equal(t, 1, reportError(&task.FilesystemError{Op: "create directory", Path: "/x", Err: os.ErrPermission}))
}

func TestCompleteTaskNames(t *testing.T) {
	names := completeTaskNames()
	assert.Len(t, names, 2*len(task.Kinds))
	assert.Contains(t, names[0], "proto\t")
}

func TestBuildRejectsUnknownTask(t *testing.T) {
	err := runBuild(buildCmd, []string{"docs"})
	assert.Error(t, err)
}
