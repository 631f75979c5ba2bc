package tui

import (
	"time"

	"meetingkeeper/internal/core/timekeeper"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultWidth = 60

// TickMsg is delivered once per tick interval while the countdown runs.
type TickMsg time.Time

// Model is the bubbletea model for a terminal meeting countdown.
type Model struct {
	Keeper   *timekeeper.TimeKeeper
	Styles   Styles
	Width    int
	Ended    bool
	interval time.Duration
}

// NewModel creates a model that drives keeper with one tick per interval.
func NewModel(keeper *timekeeper.TimeKeeper, interval time.Duration) *Model {
	if interval <= 0 {
		interval = time.Second
	}
	return &Model{
		Keeper:   keeper,
		Styles:   DefaultStyles(),
		Width:    defaultWidth,
		interval: interval,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	if m.Keeper.Snapshot().Finished() {
		return nil
	}
	return tickCmd(m.interval)
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
