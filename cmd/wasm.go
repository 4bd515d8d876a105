package cmd

import (
	"github.com/daedaleanai/holbuild/task"

	"github.com/spf13/cobra"
)

var wasmCmd = &cobra.Command{
	Use:     "wasm",
	Aliases: []string{string(task.KindWasm)},
	Args:    cobra.NoArgs,
	Short:   "Packages the core library as WebAssembly",
	Long:    `Runs wasm-pack in rust-libs/hol_core and writes the package to web/pkg.`,
	RunE:    runWasm,
}

func init() {
	rootCmd.AddCommand(wasmCmd)
}

func runWasm(cmd *cobra.Command, args []string) error {
	return runSingleTask(task.KindWasm)
}
