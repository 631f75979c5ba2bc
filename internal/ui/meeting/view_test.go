package meeting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"meetingkeeper/internal/core/model"
	"meetingkeeper/internal/core/timekeeper"
	"meetingkeeper/internal/ui/palette"

	"fyne.io/fyne/v2/test"
)

func testMeeting() model.MeetingConfig {
	return model.MeetingConfig{Goal: "Decide Q3 plan", Agenda: "Review\nIdeas", DurationMinutes: 10}
}

func TestApply(t *testing.T) {
	test.NewTempApp(t)
	view := New(testMeeting(), nil)

	keeper := timekeeper.New(testMeeting(), timekeeper.Config{})
	for i := 0; i < 300; i++ {
		keeper.Tick()
	}
	snapshot := keeper.Snapshot()
	view.Apply(snapshot)

	assert.Equal(t, "05:00", view.timerLabel.Text)
	assert.Equal(t, palette.Readout(timekeeper.ColorYellow), view.timerLabel.Color)
	assert.Equal(t, "Discussion", view.phaseLabel.Text)
	assert.Equal(t, snapshot.Message, view.message.Text)
	assert.InDelta(t, 0.5, view.progress.fraction(), 1e-9)
	assert.Equal(t, palette.Fill(timekeeper.ColorGreen), view.progress.fill.FillColor)
	assert.Equal(t, snapshot, view.Snapshot())
}

func TestApply_Finished(t *testing.T) {
	test.NewTempApp(t)
	view := New(testMeeting(), nil)

	keeper := timekeeper.New(testMeeting(), timekeeper.Config{})
	for keeper.Tick() {
	}
	view.Apply(keeper.Snapshot())

	assert.Equal(t, "00:00", view.timerLabel.Text)
	assert.Equal(t, palette.Readout(timekeeper.ColorRed), view.timerLabel.Color)
	assert.Equal(t, "Finished", view.phaseLabel.Text)
	assert.Equal(t, 1.0, view.progress.fraction())
	assert.Equal(t, palette.Fill(timekeeper.ColorRed), view.progress.fill.FillColor)
}

func TestEndButton(t *testing.T) {
	test.NewTempApp(t)
	ended := 0
	view := New(testMeeting(), func() { ended++ })

	test.Tap(view.endButton)
	view.End()

	assert.Equal(t, 2, ended)
}

func TestProgressLayout(t *testing.T) {
	test.NewTempApp(t)
	bar := newProgressBar()
	bar.set(1.7, palette.Fill(timekeeper.ColorSky))
	assert.Equal(t, 1.0, bar.fraction())

	bar.set(-1, palette.Fill(timekeeper.ColorSky))
	assert.Equal(t, 0.0, bar.fraction())

	bar.set(0.25, palette.Fill(timekeeper.ColorSky))
	bar.container.Resize(bar.container.MinSize().AddWidthHeight(336, 0))
	assert.Equal(t, float32(400), bar.track.Size().Width)
	assert.Equal(t, float32(100), bar.fill.Size().Width)
}
