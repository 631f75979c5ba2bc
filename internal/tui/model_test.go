package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetingkeeper/internal/core/model"
	"meetingkeeper/internal/core/timekeeper"
)

func newModel(minutes int) *Model {
	keeper := timekeeper.New(model.MeetingConfig{
		Goal:            "Decide Q3 plan",
		Agenda:          "Review\nIdeas",
		DurationMinutes: minutes,
	}, timekeeper.Config{})
	return NewModel(keeper, time.Second)
}

func TestInit_SchedulesTick(t *testing.T) {
	m := newModel(1)
	assert.NotNil(t, m.Init())

	finished := NewModel(timekeeper.New(model.MeetingConfig{}, timekeeper.Config{}), 0)
	assert.Nil(t, finished.Init())
}

func TestUpdate_TickAdvancesOncePerMessage(t *testing.T) {
	m := newModel(1)

	for i := 0; i < 10; i++ {
		_, cmd := m.Update(TickMsg(time.Now()))
		require.NotNil(t, cmd)
	}

	snapshot := m.Keeper.Snapshot()
	assert.Equal(t, 50, snapshot.RemainingSeconds)
	assert.Equal(t, timekeeper.PhaseDiscussion, snapshot.Phase)
}

func TestUpdate_StopsTickingWhenFinished(t *testing.T) {
	m := newModel(1)

	var cmd tea.Cmd
	for i := 0; i < 60; i++ {
		_, cmd = m.Update(TickMsg(time.Now()))
	}
	assert.Nil(t, cmd)
	assert.Equal(t, timekeeper.PhaseFinished, m.Keeper.Snapshot().Phase)

	_, cmd = m.Update(TickMsg(time.Now()))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Keeper.Snapshot().RemainingSeconds)
}

func TestUpdate_QuitEndsSession(t *testing.T) {
	m := newModel(5)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, m.Ended)
	assert.True(t, m.Keeper.Snapshot().Ended)

	_, cmd = m.Update(TickMsg(time.Now()))
	assert.Nil(t, cmd)
	assert.Equal(t, "", m.View())
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newModel(5)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.Width)
}

func TestView(t *testing.T) {
	m := newModel(1)
	for i := 0; i < 10; i++ {
		m.Update(TickMsg(time.Now()))
	}

	view := m.View()
	assert.Contains(t, view, "00:50")
	assert.Contains(t, view, "Discussion")
	assert.Contains(t, view, timekeeper.DefaultMessages()[timekeeper.PhaseDiscussion])
	assert.Contains(t, view, "Decide Q3 plan")
	assert.Contains(t, view, "Review")
	assert.Contains(t, view, "end meeting")
}

func TestView_Finished(t *testing.T) {
	m := newModel(1)
	for i := 0; i < 60; i++ {
		m.Update(TickMsg(time.Now()))
	}

	view := m.View()
	assert.Contains(t, view, "00:00")
	assert.Contains(t, view, "Time's up!")
	assert.Contains(t, view, "close")
}

func TestRenderProgressBar(t *testing.T) {
	empty := DefaultStyles().ProgressEmpty

	result := RenderProgressBar(0, 10, TerminalColor(timekeeper.ColorSky), empty)
	assert.Contains(t, result, "  0%")
	assert.Equal(t, 0, strings.Count(result, BlockFilled))
	assert.Equal(t, 10, strings.Count(result, BlockEmpty))

	result = RenderProgressBar(0.5, 10, TerminalColor(timekeeper.ColorGreen), empty)
	assert.Contains(t, result, " 50%")
	assert.Equal(t, 5, strings.Count(result, BlockFilled))

	result = RenderProgressBar(1.5, 10, TerminalColor(timekeeper.ColorRed), empty)
	assert.Contains(t, result, "100%")
	assert.Equal(t, 10, strings.Count(result, BlockFilled))
	assert.Equal(t, 0, strings.Count(result, BlockEmpty))
}
