package cmd

import (
	"github.com/daedaleanai/holbuild/task"

	"github.com/spf13/cobra"
)

var protoCmd = &cobra.Command{
	Use:     "proto",
	Aliases: []string{string(task.KindProto)},
	Args:    cobra.NoArgs,
	Short:   "Compiles the protocol definitions",
	Long:    `Compiles every .proto file in proto/ with protoc into lib/generated/.`,
	RunE:    runProto,
}

func init() {
	rootCmd.AddCommand(protoCmd)
}

func runProto(cmd *cobra.Command, args []string) error {
	return runSingleTask(task.KindProto)
}
