package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/viant/thisassembly/generator"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Show the generator version embedded in generated code markers.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "thisassembly %s (%s)\n", generator.Version, runtime.Version())
			return err
		},
	}
}
