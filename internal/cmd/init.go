package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harrison/reminder-lint/internal/config"
	"github.com/harrison/reminder-lint/internal/display"
	"github.com/harrison/reminder-lint/internal/filelock"
)

const configHeader = "# reminder-lint configuration\n"

// NewInitCommand creates and returns the init subcommand
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Write a default remind.yml",
		Args:         cobra.NoArgs,
		RunE:         runInit,
		SilenceUsage: true,
	}

	cmd.Flags().String("path", config.DefaultConfigFilePath, "Where to write the config file")
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	force, _ := cmd.Flags().GetBool("force")

	data, err := marshalConfig(config.DefaultFileConfig())
	if err != nil {
		return err
	}

	err = filelock.WriteFile(cmd.Context(), path, data, filelock.WriteOptions{Overwrite: force})
	if errors.Is(err, filelock.ErrExists) {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err != nil {
		return err
	}

	display.NewPrinter(cmd.OutOrStdout()).Success("created " + path)
	return nil
}

func marshalConfig(cfg *config.Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}
