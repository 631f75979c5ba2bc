package tui

import (
	"fmt"
	"strings"

	"meetingkeeper/internal/core/timekeeper"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.Ended {
		return ""
	}
	snapshot := m.Keeper.Snapshot()

	var b strings.Builder

	b.WriteString(m.Styles.Title.Render("Meeting Timekeeper"))
	b.WriteString("\n\n")

	readout := m.Styles.Readout.Foreground(TerminalColor(timekeeper.UrgencyColor(snapshot.Urgency)))
	b.WriteString(readout.Render(snapshot.Remaining))
	b.WriteString("\n")

	b.WriteString(RenderProgressBar(snapshot.ProgressPercent/100, m.barWidth(), TerminalColor(snapshot.Color), m.Styles.ProgressEmpty))
	b.WriteString("\n\n")

	phase := m.Styles.Phase.Foreground(TerminalColor(snapshot.Color))
	b.WriteString(phase.Render(snapshot.Phase.String()))
	b.WriteString("  ")
	b.WriteString(m.Styles.Message.Render(snapshot.Message))
	b.WriteString("\n\n")

	b.WriteString(m.renderDetails(snapshot))
	b.WriteString("\n")

	b.WriteString(m.renderFooter(snapshot))
	return b.String()
}

// RenderProgressBar renders a bar of width cells followed by the percentage.
func RenderProgressBar(fraction float64, width int, fill lipgloss.Color, empty lipgloss.Style) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	bar := lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat(BlockFilled, filled)) +
		empty.Render(strings.Repeat(BlockEmpty, width-filled))
	return fmt.Sprintf("%s %3.0f%%", bar, fraction*100)
}

func (m *Model) barWidth() int {
	width := m.Width - 6
	if width < 10 {
		return 10
	}
	return width
}

func (m *Model) renderDetails(snapshot timekeeper.Snapshot) string {
	panelWidth := m.Width/2 - 4
	if panelWidth < 20 {
		panelWidth = 20
	}
	panel := m.Styles.Panel.Width(panelWidth)

	goal := panel.Render(m.Styles.PanelTitle.Render("Goal") + "\n" + snapshot.Goal)

	items := m.Keeper.Meeting().AgendaItems()
	agendaText := strings.Join(items, "\n")
	if len(items) == 0 {
		agendaText = snapshot.Agenda
	}
	agenda := panel.Render(m.Styles.PanelTitle.Render("Agenda") + "\n" + agendaText)

	return lipgloss.JoinHorizontal(lipgloss.Top, goal, agenda)
}

func (m *Model) renderFooter(snapshot timekeeper.Snapshot) string {
	action := "end meeting"
	if snapshot.Finished() {
		action = "close"
	}
	return m.Styles.Footer.Render(fmt.Sprintf("%s %s", m.Styles.FooterKey.Render("[q]"), action))
}
