package cmd

import (
	"fmt"

	"github.com/daedaleanai/holbuild/log"
	"github.com/daedaleanai/holbuild/pipeline"
	"github.com/daedaleanai/holbuild/task"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build [tasks] [--dry-run]",
	Short: "Runs the build tasks in order",
	Long: `Runs the given build tasks one after another and stops at the first failure.
Without arguments all tasks run in the order build_proto, build_wasm, build_flutter_web.`,
	RunE: runBuild,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completeTaskNames(), cobra.ShellCompDirectiveNoFileComp
	},
}

var dryRun bool

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the commands instead of running them")
}

func runBuild(cmd *cobra.Command, args []string) error {
	kinds, err := pipeline.Select(args)
	if err != nil {
		return err
	}

	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	runner := ws.taskRunner()

	if dryRun {
		for _, kind := range kinds {
			planned, err := runner.Plan(kind)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s (in %s)\n%s\n", kind, planned.Command.Dir, planned.Command)
		}
		return nil
	}

	results, err := pipeline.New(runner).Run(kinds)
	if err != nil {
		return err
	}
	log.Success("Finished %d task(s).\n", len(results))
	return nil
}

func completeTaskNames() []string {
	suggestions := []string{}
	for _, kind := range task.Kinds {
		suggestions = append(suggestions, fmt.Sprintf("%s\t%s", kind.Alias(), kind.Description()))
		suggestions = append(suggestions, fmt.Sprintf("%s\t%s", kind, kind.Description()))
	}
	return suggestions
}
