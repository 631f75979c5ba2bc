package cli

import (
	"errors"
	"fmt"
	"os"

	"meetingkeeper/internal/core/model"
	"meetingkeeper/internal/storage"

	"github.com/spf13/cobra"
)

func (a *App) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the settings file",
	}
	cmd.AddCommand(a.newConfigPathCmd())
	cmd.AddCommand(a.newConfigInitCmd())
	return cmd
}

func (a *App) newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.settingsPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func (a *App) newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.settingsPath()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("settings file %s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("check settings file: %w", err)
			}

			settings := model.DefaultSettings()
			if a.language != "" {
				settings.Language = a.language
			}
			if err := storage.SaveSettings(path, settings); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing settings file")
	return cmd
}
