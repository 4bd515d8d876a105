package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Args:  cobra.NoArgs,
	Short: "Prints the effective configuration",
	Long:  `Prints the effective configuration in holbuild.yaml syntax.`,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	out, err := ws.config.YAML()
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
