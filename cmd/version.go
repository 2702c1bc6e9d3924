package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates new command instance
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Args:  cobra.NoArgs,
		Short: "Print the version number of pslsplit",
		// no configuration needed
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run:              printVersion,
	}
}

func printVersion(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "pslsplit")
	fmt.Fprintf(out, "Version: %s\n", version)
	fmt.Fprintf(out, "Build time: %s\n", buildTime)
}
