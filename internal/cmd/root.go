package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for reminder-lint
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder-lint",
		Short: "Find reminder comments whose deadline has passed",
		Long: `reminder-lint scans a source tree for reminder comments such as

    // remind: 2025/03/01 drop the legacy endpoint

and reports the ones whose date lies in the past.

The comment pattern, the date format and the search directory come from
remind.yml, REMIND_* environment variables and command-line flags, in
increasing order of precedence.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the returned error once
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log-level", "", "Diagnostic verbosity: trace, debug, info, warn or error (default warn)")

	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewInitCommand())

	return cmd
}
