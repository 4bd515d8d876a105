package cmd

import (
	"fmt"
	"os"

	"github.com/daedaleanai/holbuild/log"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Args:  cobra.NoArgs,
	Short: "Removes all generated build results",
	Long:  `Removes the generated protocol sources and the packaged WebAssembly output.`,
	RunE:  runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	for _, dir := range []string{ws.paths.UIGeneratedRoot, ws.paths.WebPkgRoot} {
		log.Debug("Removing directory '%s'.\n", dir)
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove '%s': %w", dir, err)
		}
	}
	return nil
}
