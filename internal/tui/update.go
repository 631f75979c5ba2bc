package tui

import tea "github.com/charmbracelet/bubbletea"

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.Keeper.End()
			m.Ended = true
			return m, tea.Quit
		}

	case TickMsg:
		if m.Ended {
			return m, nil
		}
		// The tick is not re-armed once the countdown reached zero.
		if m.Keeper.Tick() {
			return m, tickCmd(m.interval)
		}

	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.Width = msg.Width
		}
	}

	return m, nil
}
