package tool

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExecutable(t *testing.T) {
	name, args, err := ParseExecutable("protoc")
	require.NoError(t, err)
	assert.Equal(t, "protoc", name)
	assert.Empty(t, args)

	name, args, err = ParseExecutable(`fvm flutter`)
	require.NoError(t, err)
	assert.Equal(t, "fvm", name)
	assert.Equal(t, []string{"flutter"}, args)

	name, args, err = ParseExecutable(`"/opt/protobuf bin/protoc" --experimental_allow_proto3_optional`)
	require.NoError(t, err)
	assert.Equal(t, "/opt/protobuf bin/protoc", name)
	assert.Equal(t, []string{"--experimental_allow_proto3_optional"}, args)
}

func TestParseExecutableRejectsBadInput(t *testing.T) {
	for _, s := range []string{"", "   ", "-x", "protoc\nrm"} {
		_, _, err := ParseExecutable(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestCommandString(t *testing.T) {
	cmd := Command{Name: "flutter", Args: []string{"build", "web"}}
	assert.Equal(t, "flutter build web", cmd.String())
}

func TestExecRunnerExitCode(t *testing.T) {
	r := &ExecRunner{Capture: true}
	outcome, err := r.Run(Command{Name: "sh", Args: []string{"-c", "echo oops >&2; exit 2"}, Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.ExitCode)
	assert.Equal(t, "oops\n", string(outcome.Output))
}

func TestExecRunnerWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.proto"), nil, 0644))

	var stdout bytes.Buffer
	r := &ExecRunner{Stdout: &stdout, Stderr: &stdout}
	outcome, err := r.Run(Command{Name: "ls", Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.ExitCode)
	assert.Nil(t, outcome.Output)
	assert.Equal(t, "marker.proto", strings.TrimSpace(stdout.String()))
}

func TestExecRunnerMissingExecutable(t *testing.T) {
	r := &ExecRunner{Capture: true}
	outcome, err := r.Run(Command{Name: "holbuild-no-such-tool", Dir: t.TempDir()})
	assert.Error(t, err)
	assert.Equal(t, -1, outcome.ExitCode)
}
