package cmd

import (
	"os"

	"github.com/daedaleanai/holbuild/config"
	"github.com/daedaleanai/holbuild/log"
	"github.com/daedaleanai/holbuild/project"
	"github.com/daedaleanai/holbuild/task"
	"github.com/daedaleanai/holbuild/tool"
)

type workspace struct {
	paths  project.Paths
	config config.Config
}

func openWorkspace() (workspace, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		log.Debug("Unable to determine the working directory: %s.\n", err)
		workingDir = ""
	}

	anchor, err := project.ResolveAnchor(anchorFlag, workingDir)
	if err != nil {
		return workspace{}, err
	}
	paths, err := project.New(anchor)
	if err != nil {
		return workspace{}, err
	}
	log.Debug("Project root: %s.\n", paths.Root)

	cfg, err := config.Load(configFlag, paths.Root)
	if err != nil {
		return workspace{}, err
	}
	return workspace{paths: paths, config: cfg}, nil
}

// newToolRunner launches the external tools. Tests replace it.
var newToolRunner = func(capture bool) tool.Runner {
	return tool.NewExecRunner(capture)
}

func (w workspace) taskRunner() *task.Runner {
	return task.NewRunner(w.paths, w.config, newToolRunner(quiet))
}

func runSingleTask(kind task.Kind) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	_, err = ws.taskRunner().Run(kind)
	return err
}
