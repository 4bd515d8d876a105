package pipeline

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/daedaleanai/holbuild/config"
	"github.com/daedaleanai/holbuild/project"
	"github.com/daedaleanai/holbuild/task"
	"github.com/daedaleanai/holbuild/tool/tooltest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskRunner(t *testing.T) (*task.Runner, *tooltest.Recorder) {
	paths, err := project.New(filepath.Join("/src/hol", project.AnchorDirName))
	require.NoError(t, err)
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(paths.ProtoRoot, 0755))
	recorder := tooltest.NewRecorder()
	return &task.Runner{Paths: paths, Config: config.Default(), Exec: recorder, Fs: fs}, recorder
}

func TestSelectDefault(t *testing.T) {
	kinds, err := Select(nil)
	require.NoError(t, err)
	assert.Equal(t, []task.Kind{task.KindProto, task.KindWasm, task.KindFlutterWeb}, kinds)

	kinds[0] = task.KindWasm
	assert.Equal(t, task.KindProto, DefaultOrder[0])
}

func TestSelectKeepsCallerOrder(t *testing.T) {
	kinds, err := Select([]string{"web", "proto", "build_flutter_web"})
	require.NoError(t, err)
	assert.Equal(t, []task.Kind{task.KindFlutterWeb, task.KindProto}, kinds)
}

func TestSelectUnknown(t *testing.T) {
	_, err := Select([]string{"proto", "docs"})
	assert.Error(t, err)
}

func TestRunInOrder(t *testing.T) {
	runner, recorder := newTaskRunner(t)

	results, err := New(runner).Run(DefaultOrder)
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, []string{"protoc", "wasm-pack", "flutter"}, recorder.Names())
}

func TestRunHaltsOnFailure(t *testing.T) {
	runner, recorder := newTaskRunner(t)
	recorder.ExitWith("wasm-pack", 101, "error: could not compile `hol_core`\n")

	results, err := New(runner).Run(DefaultOrder)
	require.Error(t, err)

	var toolErr *task.ExternalToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, 101, toolErr.ExitCode)
	assert.Equal(t, "wasm-pack", toolErr.Tool)

	require.Len(t, results, 1)
	assert.Equal(t, task.KindProto, results[0].Task)
	assert.Equal(t, []string{"protoc", "wasm-pack"}, recorder.Names())
}

func TestRunNothing(t *testing.T) {
	runner, recorder := newTaskRunner(t)
	results, err := New(runner).Run(nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, recorder.Calls)
}
