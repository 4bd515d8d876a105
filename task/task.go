// Package task defines the build tasks and runs them one at a time.
package task

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/daedaleanai/holbuild/config"
	"github.com/daedaleanai/holbuild/project"
	"github.com/daedaleanai/holbuild/tool"
)

// Kind names one of the fixed build tasks.
type Kind string

const (
	KindProto      Kind = "build_proto"
	KindWasm       Kind = "build_wasm"
	KindFlutterWeb Kind = "build_flutter_web"
)

// Kinds lists every task in the order they are usually run.
var Kinds = []Kind{KindProto, KindWasm, KindFlutterWeb}

var aliases = map[string]Kind{
	"proto": KindProto,
	"wasm":  KindWasm,
	"web":   KindFlutterWeb,
}

var descriptions = map[Kind]string{
	KindProto:      "Compile the protocol definitions into the UI's generated sources",
	KindWasm:       "Package the core library as a WebAssembly module for the web",
	KindFlutterWeb: "Build the Flutter web application",
}

// Alias returns the short name of the task.
func (k Kind) Alias() string {
	for alias, kind := range aliases {
		if kind == k {
			return alias
		}
	}
	return string(k)
}

// Description returns a one-line summary of what the task does.
func (k Kind) Description() string {
	return descriptions[k]
}

// ParseKind accepts a task name or its short alias.
func ParseKind(name string) (Kind, error) {
	if kind, ok := aliases[name]; ok {
		return kind, nil
	}
	for _, kind := range Kinds {
		if string(kind) == name {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown task '%s'", name)
}

// BuildTask is a fully resolved invocation of one external tool together
// with the directories that must exist before it runs.
type BuildTask struct {
	Name               Kind
	RequiredOutputDirs []string
	Command            tool.Command
}

// Result is the outcome of a successful task. Output is only set when the
// tool's output was captured.
type Result struct {
	Task     Kind
	ExitCode int
	Output   []byte
}

type templateParams struct {
	project.Paths
	ProtoTarget string
}

type commandTemplate struct {
	tool func(config.Tools) string
	args []string
	dir  string
}

var templates = map[Kind]commandTemplate{
	KindProto: {
		tool: func(t config.Tools) string { return t.Protoc },
		args: []string{"-I={{.Root}}", "--{{.ProtoTarget}}_out={{.UIGeneratedRoot}}"},
		dir:  "{{.Root}}",
	},
	KindWasm: {
		tool: func(t config.Tools) string { return t.WasmPack },
		args: []string{"build", "--out-dir", "{{.WebPkgRoot}}", "--target", "web"},
		dir:  "{{.RustCoreLibRoot}}",
	},
	KindFlutterWeb: {
		tool: func(t config.Tools) string { return t.Flutter },
		args: []string{"build", "web"},
		dir:  "{{.Root}}",
	},
}

func render(text string, params templateParams) (string, error) {
	tmpl, err := template.New("arg").Option("missingkey=error").Parse(text)
	if err != nil {
		return "", &ConfigurationError{Reason: "invalid argument template " + text, Err: err}
	}
	var b bytes.Buffer
	if err := tmpl.Execute(&b, params); err != nil {
		return "", &ConfigurationError{Reason: "unable to render argument " + text, Err: err}
	}
	out := b.String()
	if out == "" {
		return "", &ConfigurationError{Reason: fmt.Sprintf("argument '%s' rendered to an empty value", text)}
	}
	return out, nil
}

// newBuildTask renders the command template of `kind`. `extra` is appended
// verbatim after the rendered arguments.
func newBuildTask(kind Kind, paths project.Paths, cfg config.Config, requiredDirs, extra []string) (BuildTask, error) {
	tmpl, ok := templates[kind]
	if !ok {
		return BuildTask{}, fmt.Errorf("unknown task '%s'", kind)
	}

	name, prefix, err := tool.ParseExecutable(tmpl.tool(cfg.Tools))
	if err != nil {
		return BuildTask{}, &ConfigurationError{Reason: "invalid tool for " + string(kind), Err: err}
	}

	params := templateParams{Paths: paths, ProtoTarget: cfg.Proto.Target}
	args := append([]string{}, prefix...)
	for _, a := range tmpl.args {
		rendered, err := render(a, params)
		if err != nil {
			return BuildTask{}, err
		}
		args = append(args, rendered)
	}
	args = append(args, extra...)

	dir, err := render(tmpl.dir, params)
	if err != nil {
		return BuildTask{}, err
	}

	return BuildTask{
		Name:               kind,
		RequiredOutputDirs: requiredDirs,
		Command:            tool.Command{Name: name, Args: args, Dir: dir},
	}, nil
}
