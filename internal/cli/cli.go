package cli

import (
	"fmt"
	"log"
	"strings"

	"meetingkeeper/internal/core/collector"
	"meetingkeeper/internal/core/model"
	"meetingkeeper/internal/storage"
	"meetingkeeper/internal/tui"
	"meetingkeeper/internal/ui/desktop"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const appName = "meetingkeeper"

// App represents the CLI application with all wired dependencies
type App struct {
	rootCmd *cobra.Command

	configPath string
	language   string

	goal     string
	agenda   string
	duration string

	// Hosts are replaceable so commands can be exercised without a display.
	runDesktop func(desktop.Options) error
	runTUI     func(*tui.Model) error
}

// New creates a new CLI application
func New() *App {
	app := &App{
		runDesktop: desktop.Run,
		runTUI:     runProgram,
	}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetArgs overrides the command line arguments.
func (a *App) SetArgs(args []string) {
	a.rootCmd.SetArgs(args)
}

func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   appName,
		Short: "Keep meetings on time",
		Long: `Meeting Timekeeper counts down a meeting and tells the room which phase it
should be in: introduction, discussion, next actions and wrap-up.

Without a subcommand the desktop window opens with the setup form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGUI(cmd)
		},
	}

	a.rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		"Settings file (.yaml, .yml or .toml)")
	a.rootCmd.PersistentFlags().StringVar(&a.language, "lang", "",
		"Guidance message language (en, ja)")

	a.rootCmd.Flags().StringVar(&a.goal, "goal", "", "Prefill the meeting goal")
	a.rootCmd.Flags().StringVar(&a.agenda, "agenda", "", "Prefill the agenda (use \\n between items)")
	a.rootCmd.Flags().StringVar(&a.duration, "duration", "", "Prefill the duration in minutes")

	a.rootCmd.AddCommand(a.newTUICmd())
	a.rootCmd.AddCommand(a.newConfigCmd())
}

func (a *App) runGUI(cmd *cobra.Command) error {
	settings, err := a.loadSettings()
	if err != nil {
		return err
	}

	options := desktop.Options{Settings: settings}
	if a.goal != "" || a.agenda != "" || a.duration != "" {
		options.Prefill = &model.Candidate{
			Goal:            a.goal,
			Agenda:          expandNewlines(a.agenda),
			DurationMinutes: collector.ParseDuration(a.duration),
		}
	}
	return a.runDesktop(options)
}

func (a *App) settingsPath() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	return storage.DefaultPath(appName)
}

// loadSettings reads the settings file and applies flag overrides.
// A broken file is reported and defaults are used instead.
func (a *App) loadSettings() (model.Settings, error) {
	path, err := a.settingsPath()
	if err != nil {
		return model.Settings{}, err
	}
	settings, err := storage.LoadSettings(path)
	if err != nil {
		if a.configPath != "" {
			return model.Settings{}, fmt.Errorf("load settings: %w", err)
		}
		log.Printf("settings: %v (using defaults)", err)
		settings = model.DefaultSettings()
	}
	if a.language != "" {
		settings.Language = a.language
	}
	return settings, nil
}

func runProgram(m *tui.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func expandNewlines(value string) string {
	return strings.ReplaceAll(value, `\n`, "\n")
}
