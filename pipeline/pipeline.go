// Package pipeline runs a selection of build tasks one after another.
package pipeline

import (
	"github.com/daedaleanai/holbuild/log"
	"github.com/daedaleanai/holbuild/task"
)

// DefaultOrder runs the proto compilation first so that its output is
// available to the UI build.
var DefaultOrder = []task.Kind{task.KindProto, task.KindWasm, task.KindFlutterWeb}

// TaskRunner executes a single task.
type TaskRunner interface {
	Run(kind task.Kind) (task.Result, error)
}

type Pipeline struct {
	Runner TaskRunner
}

func New(runner TaskRunner) *Pipeline {
	return &Pipeline{Runner: runner}
}

// Select turns task names into the list of tasks to run. No names selects
// DefaultOrder. Otherwise the caller's order is kept and repeated tasks are
// only run once. Unknown names are rejected before anything runs.
func Select(names []string) ([]task.Kind, error) {
	if len(names) == 0 {
		return append([]task.Kind{}, DefaultOrder...), nil
	}
	seen := map[task.Kind]bool{}
	kinds := []task.Kind{}
	for _, name := range names {
		kind, err := task.ParseKind(name)
		if err != nil {
			return nil, err
		}
		if seen[kind] {
			continue
		}
		seen[kind] = true
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// Run executes `kinds` in order and stops at the first failure. The results
// of the tasks that succeeded are returned alongside the error.
func (p *Pipeline) Run(kinds []task.Kind) ([]task.Result, error) {
	results := make([]task.Result, 0, len(kinds))
	for idx, kind := range kinds {
		log.IndentationLevel = 0
		log.Log("%d/%d) %s\n", idx+1, len(kinds), kind)
		log.IndentationLevel = 1
		result, err := p.Runner.Run(kind)
		log.IndentationLevel = 0
		if err != nil {
			if idx+1 < len(kinds) {
				log.Warning("Skipping %d remaining task(s) after %s failed.\n", len(kinds)-idx-1, kind)
			}
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}
