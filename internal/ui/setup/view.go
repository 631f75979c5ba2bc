package setup

import (
	"strconv"

	"meetingkeeper/internal/core/collector"
	"meetingkeeper/internal/core/model"
	"meetingkeeper/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ErrorMessage is shown when the collector rejects the form.
const ErrorMessage = "Please fill in every field. The meeting must last at least 1 minute."

// View is the meeting setup form.
type View struct {
	collector *collector.Collector
	onStart   func(model.MeetingConfig)
	content   fyne.CanvasObject
	goal      *widget.Entry
	agenda    *widget.Entry
	duration  *widget.Entry
	errorText *widget.Label
	start     *widget.Button
}

// New creates the setup form. onStart receives every configuration the collector accepts.
func New(meetings *collector.Collector, onStart func(model.MeetingConfig)) *View {
	goal := widget.NewEntry()
	goal.SetPlaceHolder("e.g. Decide the Q3 marketing strategy")

	agenda := widget.NewMultiLineEntry()
	agenda.SetPlaceHolder("e.g.\n1. Review Q2 performance\n2. Brainstorm campaign ideas\n3. Finalize budget")
	agenda.SetMinRowsVisible(5)
	agenda.Wrapping = fyne.TextWrapWord

	duration := widget.NewEntry()

	errorText := widget.NewLabel("")
	errorText.Importance = widget.DangerImportance
	errorText.Wrapping = fyne.TextWrapWord
	errorText.Hide()

	start := widget.NewButton("Start meeting", nil)
	start.Importance = widget.HighImportance

	title := widget.NewLabelWithStyle("Meeting Timekeeper", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabelWithStyle("Set the goal and the agenda, then keep the meeting on time.", fyne.TextAlignCenter, fyne.TextStyle{})

	form := container.NewVBox(
		title,
		subtitle,
		fieldHeader(resources.IconTarget, "Meeting goal"),
		goal,
		fieldHeader(resources.IconList, "Agenda (one item per line)"),
		agenda,
		fieldHeader(resources.IconClock, "Duration (minutes)"),
		duration,
		errorText,
		start,
	)

	view := &View{
		collector: meetings,
		onStart:   onStart,
		content:   container.NewPadded(form),
		goal:      goal,
		agenda:    agenda,
		duration:  duration,
		errorText: errorText,
		start:     start,
	}

	start.OnTapped = view.handleSubmit
	goal.OnSubmitted = func(string) { view.handleSubmit() }
	duration.OnSubmitted = func(string) { view.handleSubmit() }

	view.Prefill(meetings.Prefill())
	return view
}

// Content returns the root canvas object of the form.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Prefill replaces the field values.
func (view *View) Prefill(candidate model.Candidate) {
	view.goal.SetText(candidate.Goal)
	view.agenda.SetText(candidate.Agenda)
	view.duration.SetText(strconv.Itoa(candidate.DurationMinutes))
	view.clearError()
}

// Candidate returns the values currently entered in the form.
func (view *View) Candidate() model.Candidate {
	return model.Candidate{
		Goal:            view.goal.Text,
		Agenda:          view.agenda.Text,
		DurationMinutes: collector.ParseDuration(view.duration.Text),
	}
}

// Error returns the visible validation message, if any.
func (view *View) Error() string {
	if !view.errorText.Visible() {
		return ""
	}
	return view.errorText.Text
}

// Submit validates the form as if the start button was tapped.
func (view *View) Submit() {
	view.handleSubmit()
}

func (view *View) handleSubmit() {
	meeting, err := view.collector.Submit(view.Candidate())
	if err != nil {
		// Entered values stay in place for correction.
		view.errorText.SetText(ErrorMessage)
		view.errorText.Show()
		return
	}

	view.clearError()
	if view.onStart != nil {
		view.onStart(meeting)
	}
}

func (view *View) clearError() {
	view.errorText.SetText("")
	view.errorText.Hide()
}

func fieldHeader(icon string, label string) fyne.CanvasObject {
	return container.NewHBox(
		widget.NewIcon(resources.MustIcon(icon)),
		widget.NewLabelWithStyle(label, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
}
