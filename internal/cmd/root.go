// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/viant/thisassembly/generator"
	"github.com/viant/thisassembly/internal/output"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	var (
		verbose    bool
		configFile string
	)

	root := &cobra.Command{
		Use:   "thisassembly",
		Short: "Generate project metadata constants",
		Long: `thisassembly projects assembly level declarations (version, title, company,
copyright, key/value metadata) into a generated source file of constants.

Declarations are discovered from [assembly: ...] attributes in C# projects,
//assembly: directives in Go modules, and thisassembly.yaml manifests.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			output.SetupLoggingTo(cmd.ErrOrStderr(), verbose)
			output.Debug("thisassembly started", "version", generator.Version)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "increase output verbosity")
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to config file (env: THISASSEMBLY_CONFIG)")

	root.AddCommand(NewGenerateCmd(&configFile))
	root.AddCommand(NewVersionCmd())
	return root
}
