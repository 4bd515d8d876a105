package cmd

import (
	"github.com/daedaleanai/holbuild/task"

	"github.com/spf13/cobra"
)

var webCmd = &cobra.Command{
	Use:     "web",
	Aliases: []string{string(task.KindFlutterWeb)},
	Args:    cobra.NoArgs,
	Short:   "Builds the Flutter web application",
	Long:    `Runs 'flutter build web' in the project root.`,
	RunE:    runWeb,
}

func init() {
	rootCmd.AddCommand(webCmd)
}

func runWeb(cmd *cobra.Command, args []string) error {
	return runSingleTask(task.KindFlutterWeb)
}
