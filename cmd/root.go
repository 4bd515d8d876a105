package cmd

import (
	"errors"
	"os"

	"github.com/daedaleanai/holbuild/log"
	"github.com/daedaleanai/holbuild/task"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "holbuild",
	Short: "Builds the hol project",
	Long: `holbuild compiles the protocol definitions, packages the core library as
WebAssembly and builds the Flutter web application of the hol project.
Every task runs exactly one external tool (protoc, wasm-pack, flutter).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	anchorFlag string
	configFlag string
	quiet      bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&log.Verbose, "verbose", "v", false, "Print debug output")
	rootCmd.PersistentFlags().StringVar(&anchorFlag, "anchor", "", "Directory of the build scripts (defaults to <git worktree>/scripts)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Configuration file (defaults to holbuild.yaml in the project root)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Capture tool output and only print it if the tool fails")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(reportError(err))
	}
}

// reportError prints `err` and returns the exit status for it. A failing
// tool's status is passed through unchanged.
func reportError(err error) int {
	var toolErr *task.ExternalToolError
	if !errors.As(err, &toolErr) {
		log.Error("%s.\n", err)
		return 1
	}

	if len(toolErr.Output) > 0 {
		os.Stderr.Write(toolErr.Output)
	}
	log.Error("%s.\n", err)
	if toolErr.ExitCode > 0 {
		return toolErr.ExitCode
	}
	return 1
}
