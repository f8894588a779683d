package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/reminder-lint/internal/display"
)

// NewRunCommand creates and returns the run subcommand
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Report expired reminders",
		Long: `Scan the search directory and print every reminder whose date lies in
the past as "<file>:<line> <message>".

Exit code: 0 if nothing has expired, 1 otherwise`,
		Args:         cobra.NoArgs,
		RunE:         runRun,
		SilenceUsage: true,
	}

	addConfigFlags(cmd, true)

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	now := time.Now()

	_, reminders, err := scan(cmd, nil, now)
	if err != nil {
		return err
	}

	printer := display.NewPrinter(cmd.OutOrStdout())
	expired := reminders.Expired(now)
	printer.Reminds(expired, now)

	if len(expired) > 0 {
		return fmt.Errorf("found %d expired reminder(s)", len(expired))
	}
	printer.Success("all reminders are up to date")
	return nil
}
