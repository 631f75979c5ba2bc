package meeting

import (
	"strings"

	"meetingkeeper/internal/core/model"
	"meetingkeeper/internal/core/timekeeper"
	"meetingkeeper/internal/ui/palette"
	"meetingkeeper/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	readoutTextSize   = 72
	progressBarHeight = float32(16)
)

// View renders a running meeting countdown.
type View struct {
	content    fyne.CanvasObject
	timerLabel *canvas.Text
	progress   *progressBar
	phaseLabel *widget.Label
	message    *widget.Label
	endButton  *widget.Button
	onEnd      func()
	snapshot   timekeeper.Snapshot
}

// New creates the countdown view for a meeting. onEnd is called when the user ends the meeting.
func New(meeting model.MeetingConfig, onEnd func()) *View {
	timerLabel := canvas.NewText("--:--", palette.Readout(timekeeper.ColorSky))
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerLabel.TextSize = readoutTextSize

	progress := newProgressBar()

	phaseLabel := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	message := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	message.Wrapping = fyne.TextWrapWord

	goal := detailPanel(resources.IconTarget, "Meeting goal", widget.NewLabel(meeting.Goal))
	agenda := detailPanel(resources.IconList, "Agenda", agendaList(meeting))

	endButton := widget.NewButtonWithIcon("End meeting", theme.CancelIcon(), nil)
	endButton.Importance = widget.DangerImportance

	content := container.NewVBox(
		timerLabel,
		progress.object(),
		phaseLabel,
		message,
		container.NewGridWithColumns(2, goal, agenda),
		container.NewCenter(endButton),
	)

	view := &View{
		content:    container.NewPadded(content),
		timerLabel: timerLabel,
		progress:   progress,
		phaseLabel: phaseLabel,
		message:    message,
		endButton:  endButton,
		onEnd:      onEnd,
	}
	endButton.OnTapped = view.end
	return view
}

// Content returns the root canvas object of the view.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Apply renders a snapshot. It must run on the Fyne goroutine.
func (view *View) Apply(snapshot timekeeper.Snapshot) {
	view.snapshot = snapshot

	view.timerLabel.Text = snapshot.Remaining
	view.timerLabel.Color = palette.Readout(timekeeper.UrgencyColor(snapshot.Urgency))
	view.timerLabel.Refresh()

	view.progress.set(snapshot.ProgressPercent/100, palette.Fill(snapshot.Color))

	view.phaseLabel.SetText(snapshot.Phase.String())
	view.message.SetText(snapshot.Message)
}

// Snapshot returns the last rendered snapshot.
func (view *View) Snapshot() timekeeper.Snapshot {
	return view.snapshot
}

// End ends the meeting as if the end button was tapped.
func (view *View) End() {
	view.end()
}

func (view *View) end() {
	if view.onEnd != nil {
		view.onEnd()
	}
}

func detailPanel(icon string, title string, body fyne.CanvasObject) fyne.CanvasObject {
	header := container.NewHBox(
		widget.NewIcon(resources.MustIcon(icon)),
		widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	background := canvas.NewRectangle(palette.Panel)
	background.CornerRadius = 8
	return container.NewStack(background, container.NewPadded(container.NewVBox(header, body)))
}

func agendaList(meeting model.MeetingConfig) fyne.CanvasObject {
	items := meeting.AgendaItems()
	if len(items) == 0 {
		return widget.NewLabel(strings.TrimSpace(meeting.Agenda))
	}
	label := widget.NewLabel(strings.Join(items, "\n"))
	label.Wrapping = fyne.TextWrapWord
	return label
}
