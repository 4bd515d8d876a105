package cmd

import (
	"fmt"

	"github.com/daedaleanai/holbuild/task"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Args:  cobra.NoArgs,
	Short: "Lists all tasks",
	Long:  `Lists all tasks in the order 'holbuild build' runs them.`,
	Run:   runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	for _, kind := range task.Kinds {
		fmt.Printf("  %-18s %-6s %s\n", kind, kind.Alias(), kind.Description())
	}
}
