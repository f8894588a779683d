package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/reminder-lint/internal/display"
	"github.com/harrison/reminder-lint/internal/validation"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check every reminder against the configured validates formats",
		Long: `Scan the search directory, including reminders without a date, and check
each reminder message against every format under "validates" in the config:

    validates:
      date:
        format: '%Y/%m/%d'
      owner:
        format: '@\w+'

Formats use the same strftime directives as trigger.datetime.

Exit code: 0 if all reminders are valid, 1 if any format is missing`,
		Args:         cobra.NoArgs,
		RunE:         runValidate,
		SilenceUsage: true,
	}

	addConfigFlags(cmd, false)
	cmd.Flags().Bool("json", false, "Print the invalid reminders as JSON")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	forced := map[string]interface{}{"remind_if_no_date": true}
	cfg, reminders, err := scan(cmd, forced, time.Now())
	if err != nil {
		return err
	}

	printer := display.NewPrinter(cmd.OutOrStdout())
	asJSON, _ := cmd.Flags().GetBool("json")

	if len(cfg.Validates) == 0 {
		display.WarnNoValidates(cfg.File).Display(cmd.ErrOrStderr())
		if asJSON {
			return display.WriteJSON(cmd.OutOrStdout(), []interface{}{})
		}
		printer.Success("all reminders are valid")
		return nil
	}

	validator, err := validation.New(cfg.Validates)
	if err != nil {
		return err
	}
	report := validator.Validate(reminders.Reminds)

	if asJSON {
		if err := display.WriteJSON(cmd.OutOrStdout(), report.Invalid); err != nil {
			return err
		}
	} else if report.HasErrors() {
		printer.Invalid(report.Invalid)
	} else {
		printer.Success("all reminders are valid")
	}

	if !report.HasErrors() {
		return nil
	}
	if asJSON {
		// stdout carries the JSON; the per-position summary goes to stderr
		return report
	}
	return fmt.Errorf("%d of %d reminders are invalid", len(report.Invalid), report.Checked)
}
