package cmd

import (
	"fmt"

	"github.com/daedaleanai/holbuild/log"
	"github.com/daedaleanai/holbuild/project"

	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Args:  cobra.NoArgs,
	Short: "Prints the resolved project directories",
	Long:  `Prints the project directories derived from the anchor and the checked out revision.`,
	RunE:  runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	p := ws.paths
	for _, entry := range []struct{ label, path string }{
		{"anchor", p.Anchor},
		{"root", p.Root},
		{"rust-libs", p.RustLibsRoot},
		{"core-lib", p.RustCoreLibRoot},
		{"ui", p.UIRoot},
		{"generated", p.UIGeneratedRoot},
		{"proto", p.ProtoRoot},
		{"web-pkg", p.WebPkgRoot},
	} {
		fmt.Printf("  %-10s %s\n", entry.label+":", entry.path)
	}

	revision, err := project.Revision(p.Root)
	if err != nil {
		log.Debug("No revision for '%s': %s.\n", p.Root, err)
		return nil
	}
	fmt.Printf("  %-10s %s\n", "revision:", revision)
	return nil
}
