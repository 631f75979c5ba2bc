package cli

import (
	"fmt"
	"time"

	"meetingkeeper/internal/core/collector"
	"meetingkeeper/internal/core/model"
	"meetingkeeper/internal/core/timekeeper"
	"meetingkeeper/internal/tui"

	"github.com/spf13/cobra"
)

func (a *App) newTUICmd() *cobra.Command {
	var goal, agenda, duration string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the meeting countdown in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := a.loadSettings()
			if err != nil {
				return err
			}

			candidate := model.Candidate{
				Goal:            goal,
				Agenda:          expandNewlines(agenda),
				DurationMinutes: settings.DefaultDurationMinutes,
			}
			if cmd.Flags().Changed("duration") {
				candidate.DurationMinutes = collector.ParseDuration(duration)
			}

			meeting, err := collector.New(settings.DefaultDurationMinutes).Submit(candidate)
			if err != nil {
				return fmt.Errorf("%w (goal and agenda must not be blank, duration must be at least 1 minute)", err)
			}

			keeper := timekeeper.New(meeting, timekeeper.Config{
				Messages: timekeeper.MessagesFor(settings.Language).WithOverrides(settings.MessageOverrides),
			})
			defer keeper.End()

			return a.runTUI(tui.NewModel(keeper, time.Second))
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "Meeting goal")
	cmd.Flags().StringVar(&agenda, "agenda", "", "Agenda items (use \\n between items)")
	cmd.Flags().StringVar(&duration, "duration", "", "Duration in minutes (defaults to the settings file)")

	return cmd
}
