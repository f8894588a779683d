package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/reminder-lint/internal/config"
	"github.com/harrison/reminder-lint/internal/display"
	"github.com/harrison/reminder-lint/internal/logger"
	"github.com/harrison/reminder-lint/internal/models"
	"github.com/harrison/reminder-lint/internal/remind"
)

// addConfigFlags registers the flags shared by the scanning subcommands.
func addConfigFlags(cmd *cobra.Command, withRemindIfNoDate bool) {
	cmd.Flags().StringP("config-file-path", "c", config.DefaultConfigFilePath, "Path to the config file")
	cmd.Flags().StringP("ignore-file-path", "i", config.DefaultIgnoreFilePath, "Name of the ignore file honored in every directory")
	cmd.Flags().Bool("sort-by-deadline", false, "Sort reminders by deadline, oldest first")
	if withRemindIfNoDate {
		cmd.Flags().Bool("remind-if-no-date", false, "Also report reminders without a parseable date")
	}
}

// flagOverrides collects the config keys of the flags the user actually set,
// so that unset flags never shadow the file or the environment.
func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	overrides := make(map[string]interface{})

	if f := cmd.Flag("ignore-file-path"); f != nil && f.Changed {
		overrides["ignore_file_path"] = f.Value.String()
	}
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		overrides["log_level"] = f.Value.String()
	}
	if cmd.Flags().Changed("sort-by-deadline") {
		v, _ := cmd.Flags().GetBool("sort-by-deadline")
		overrides["sort_by_deadline"] = v
	}
	if cmd.Flags().Lookup("remind-if-no-date") != nil && cmd.Flags().Changed("remind-if-no-date") {
		v, _ := cmd.Flags().GetBool("remind-if-no-date")
		overrides["remind_if_no_date"] = v
	}

	return overrides
}

// loadConfig resolves the configuration for cmd. forced values win over every layer.
// Deprecation notices are shown on stderr.
func loadConfig(cmd *cobra.Command, forced map[string]interface{}) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config-file-path")

	overrides := flagOverrides(cmd)
	for k, v := range forced {
		overrides[k] = v
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFilePath: path,
		RequireFile:    cmd.Flags().Changed("config-file-path"),
		Overrides:      overrides,
	})
	if err != nil {
		return nil, err
	}

	for _, notice := range cfg.Deprecations() {
		display.WarnDeprecation(notice, cfg.File).Display(cmd.ErrOrStderr())
	}
	return cfg, nil
}

// collectReminders scans the configured tree and returns the filtered, ordered list.
func collectReminders(cmd *cobra.Command, cfg *config.Config, log *logger.ConsoleLogger) (models.Reminders, error) {
	scanner, err := remind.NewScanner(remind.ScanOptions{
		CommentRegex:    cfg.CommentRegex,
		DateFormat:      cfg.DateFormat(),
		SearchDirectory: cfg.SearchDirectory,
		IgnoreFileName:  cfg.IgnoreFilePath,
	}, log)
	if err != nil {
		return models.Reminders{}, err
	}

	log.LogDebug("Scanning " + cfg.SearchDirectory)
	found, err := scanner.Scan(cmd.Context())
	if err != nil {
		return models.Reminders{}, err
	}

	return remind.Aggregate(found, remind.AggregateOptions{
		RemindIfNoDate: cfg.RemindIfNoDate,
		SortByDeadline: cfg.SortByDeadline,
	}), nil
}

// scan loads the config and runs one scan, logging the totals at INFO.
func scan(cmd *cobra.Command, forced map[string]interface{}, now time.Time) (*config.Config, models.Reminders, error) {
	cfg, err := loadConfig(cmd, forced)
	if err != nil {
		return nil, models.Reminders{}, err
	}
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	start := time.Now()
	reminders, err := collectReminders(cmd, cfg, log)
	if err != nil {
		return nil, models.Reminders{}, err
	}

	log.LogSummary(logger.ScanSummary{
		Directory: cfg.SearchDirectory,
		Reminders: reminders.Len(),
		Expired:   len(reminders.Expired(now)),
		Duration:  time.Since(start),
	})
	return cfg, reminders, nil
}
