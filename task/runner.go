package task

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/daedaleanai/holbuild/config"
	"github.com/daedaleanai/holbuild/log"
	"github.com/daedaleanai/holbuild/project"
	"github.com/daedaleanai/holbuild/tool"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

const protoPattern = "*.proto"

const dirMode os.FileMode = 0755

// Runner plans and executes build tasks. Tasks run synchronously; each call
// blocks until the external tool exits.
type Runner struct {
	Paths  project.Paths
	Config config.Config
	Exec   tool.Runner
	Fs     afero.Fs
}

// NewRunner returns a Runner operating on the real filesystem.
func NewRunner(paths project.Paths, cfg config.Config, exec tool.Runner) *Runner {
	return &Runner{Paths: paths, Config: cfg, Exec: exec, Fs: afero.NewOsFs()}
}

// Plan resolves the task without creating directories or running anything.
func (r *Runner) Plan(kind Kind) (BuildTask, error) {
	switch kind {
	case KindProto:
		protoFiles, err := r.protoFiles()
		if err != nil {
			return BuildTask{}, err
		}
		return newBuildTask(kind, r.Paths, r.Config, []string{r.Paths.UIGeneratedRoot}, protoFiles)
	case KindWasm, KindFlutterWeb:
		return newBuildTask(kind, r.Paths, r.Config, nil, nil)
	}
	return BuildTask{}, fmt.Errorf("unknown task '%s'", kind)
}

// Run executes the task of the given kind.
func (r *Runner) Run(kind Kind) (Result, error) {
	switch kind {
	case KindProto:
		return r.BuildProto()
	case KindWasm:
		return r.BuildWasm()
	case KindFlutterWeb:
		return r.BuildFlutterWeb()
	}
	return Result{}, fmt.Errorf("unknown task '%s'", kind)
}

// BuildProto compiles every .proto file in the protocol definition directory
// into the UI's generated sources. The output directory is created first.
func (r *Runner) BuildProto() (Result, error) {
	log.Log("Start to build proto\n")
	if err := r.ensureDir(r.Paths.UIGeneratedRoot); err != nil {
		return Result{}, err
	}
	task, err := r.Plan(KindProto)
	if err != nil {
		return Result{}, err
	}
	return r.execute(task)
}

// BuildWasm packages the core library for the web.
func (r *Runner) BuildWasm() (Result, error) {
	log.Log("Start to build wasm\n")
	task, err := r.Plan(KindWasm)
	if err != nil {
		return Result{}, err
	}
	return r.execute(task)
}

// BuildFlutterWeb builds the web flavour of the UI.
func (r *Runner) BuildFlutterWeb() (Result, error) {
	log.Log("Start to build flutter web\n")
	task, err := r.Plan(KindFlutterWeb)
	if err != nil {
		return Result{}, err
	}
	return r.execute(task)
}

func (r *Runner) execute(task BuildTask) (Result, error) {
	for _, dir := range task.RequiredOutputDirs {
		if err := r.ensureDir(dir); err != nil {
			return Result{}, err
		}
	}

	log.Debug("Running '%s' in '%s'.\n", task.Command, task.Command.Dir)
	outcome, err := r.Exec.Run(task.Command)
	if err != nil {
		return Result{}, &ExternalToolError{Tool: task.Command.Name, ExitCode: -1, Output: outcome.Output, Err: err}
	}
	if outcome.ExitCode != 0 {
		return Result{}, &ExternalToolError{Tool: task.Command.Name, ExitCode: outcome.ExitCode, Output: outcome.Output}
	}
	log.Success("%s finished.\n", task.Name)
	return Result{Task: task.Name, ExitCode: outcome.ExitCode, Output: outcome.Output}, nil
}

// ensureDir creates `dir` and its parents unless it already exists.
func (r *Runner) ensureDir(dir string) error {
	exists, err := afero.DirExists(r.Fs, dir)
	if err != nil {
		return &FilesystemError{Op: "stat", Path: dir, Err: err}
	}
	if exists {
		log.Debug("Directory '%s' already exists.\n", dir)
		return nil
	}
	log.Debug("Creating directory '%s'.\n", dir)
	if err := r.Fs.MkdirAll(dir, dirMode); err != nil {
		return &FilesystemError{Op: "create directory", Path: dir, Err: err}
	}
	return nil
}

// protoFiles lists the .proto files directly inside the protocol definition
// directory. The order is whatever the directory listing yields.
func (r *Runner) protoFiles() ([]string, error) {
	entries, err := afero.ReadDir(r.Fs, r.Paths.ProtoRoot)
	if err != nil {
		return nil, &FilesystemError{Op: "read directory", Path: r.Paths.ProtoRoot, Err: err}
	}
	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := doublestar.Match(protoPattern, entry.Name())
		if err != nil {
			return nil, err
		}
		if matched {
			files = append(files, filepath.Join(r.Paths.ProtoRoot, entry.Name()))
		}
	}
	log.Debug("Found %d proto files in '%s'.\n", len(files), r.Paths.ProtoRoot)
	return files, nil
}
