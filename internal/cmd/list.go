package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/reminder-lint/internal/display"
)

// NewListCommand creates and returns the list subcommand
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all reminders, expired first",
		Long: `Scan the search directory and print every reminder: the expired block
first, then the upcoming one. With --json the output is a single object

    {"expired": [...], "upcoming": [...]}`,
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}

	addConfigFlags(cmd, true)
	cmd.Flags().Bool("json", false, "Print the classified reminders as JSON")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	now := time.Now()

	_, reminders, err := scan(cmd, nil, now)
	if err != nil {
		return err
	}

	classified := reminders.Partition(now)
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return display.WriteJSON(cmd.OutOrStdout(), classified)
	}

	display.NewPrinter(cmd.OutOrStdout()).Classified(classified)
	return nil
}
