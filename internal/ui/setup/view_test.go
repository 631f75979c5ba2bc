package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetingkeeper/internal/core/collector"
	"meetingkeeper/internal/core/model"

	"fyne.io/fyne/v2/test"
)

func newView(t *testing.T) (*View, *[]model.MeetingConfig) {
	t.Helper()
	test.NewTempApp(t)

	var started []model.MeetingConfig
	view := New(collector.New(30), func(meeting model.MeetingConfig) {
		started = append(started, meeting)
	})
	return view, &started
}

func TestNew_DefaultDuration(t *testing.T) {
	view, _ := newView(t)

	assert.Equal(t, "", view.goal.Text)
	assert.Equal(t, "", view.agenda.Text)
	assert.Equal(t, "30", view.duration.Text)
	assert.Equal(t, "", view.Error())
}

func TestSubmit_Valid(t *testing.T) {
	view, started := newView(t)

	view.goal.SetText("Decide Q3 plan")
	view.agenda.SetText("Review")
	view.duration.SetText("45")
	test.Tap(view.start)

	require.Len(t, *started, 1)
	assert.Equal(t, model.MeetingConfig{Goal: "Decide Q3 plan", Agenda: "Review", DurationMinutes: 45}, (*started)[0])
	assert.Equal(t, "", view.Error())
}

func TestSubmit_BlankFieldsShowError(t *testing.T) {
	view, started := newView(t)

	view.goal.SetText("   ")
	view.agenda.SetText("Review")
	test.Tap(view.start)

	assert.Empty(t, *started)
	assert.Equal(t, ErrorMessage, view.Error())
	assert.Equal(t, "   ", view.goal.Text, "entered values are preserved")
	assert.Equal(t, "Review", view.agenda.Text)
}

func TestSubmit_NonNumericDuration(t *testing.T) {
	view, started := newView(t)

	view.goal.SetText("Goal")
	view.agenda.SetText("Agenda")
	view.duration.SetText("ten")
	view.Submit()

	assert.Empty(t, *started)
	assert.Equal(t, ErrorMessage, view.Error())
	assert.Equal(t, 0, view.Candidate().DurationMinutes)
}

func TestSubmit_ErrorClearsAfterSuccess(t *testing.T) {
	view, started := newView(t)

	view.Submit()
	require.NotEmpty(t, view.Error())

	view.goal.SetText("Goal")
	view.agenda.SetText("Agenda")
	view.Submit()

	assert.Len(t, *started, 1)
	assert.Equal(t, "", view.Error())
}

func TestPrefill(t *testing.T) {
	view, _ := newView(t)

	view.Prefill(model.Candidate{Goal: "g", Agenda: "a\nb", DurationMinutes: 15})

	assert.Equal(t, model.Candidate{Goal: "g", Agenda: "a\nb", DurationMinutes: 15}, view.Candidate())
}
