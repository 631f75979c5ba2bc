package desktop

import (
	"meetingkeeper/internal/core/collector"
	"meetingkeeper/internal/core/model"
	"meetingkeeper/internal/core/timekeeper"
	"meetingkeeper/internal/ui/meeting"
	"meetingkeeper/internal/ui/setup"
	"meetingkeeper/internal/ui/tray"

	"fyne.io/fyne/v2"
	fynedesktop "fyne.io/fyne/v2/driver/desktop"
)

const eventBuffer = 16

// Options configures the desktop host.
type Options struct {
	Settings model.Settings
	Prefill  *model.Candidate
	Clock    timekeeper.Clock
}

// Controller switches the main window between the setup form and a running meeting.
type Controller struct {
	app       fyne.App
	window    fyne.Window
	settings  model.Settings
	messages  timekeeper.Messages
	clock     timekeeper.Clock
	collector *collector.Collector
	setup     *setup.View
	meeting   *meeting.View
	keeper    *timekeeper.TimeKeeper
	tray      *tray.Manager
}

// NewController wires the views into window. The tray is installed when the
// driver supports it and the settings enable it.
func NewController(app fyne.App, window fyne.Window, options Options) *Controller {
	settings := options.Settings
	meetings := collector.New(settings.DefaultDurationMinutes)
	if options.Prefill != nil {
		meetings.Remember(*options.Prefill)
	}

	controller := &Controller{
		app:       app,
		window:    window,
		settings:  settings,
		messages:  timekeeper.MessagesFor(settings.Language).WithOverrides(settings.MessageOverrides),
		clock:     options.Clock,
		collector: meetings,
	}
	controller.setup = setup.New(meetings, controller.StartMeeting)

	if desktopApp, ok := app.(fynedesktop.App); ok && settings.ShowTray {
		controller.tray = tray.New(desktopApp, tray.Callbacks{
			OnShow: func() {
				window.Show()
				window.RequestFocus()
			},
			OnEndMeeting: controller.EndMeeting,
			OnQuit: func() {
				controller.Shutdown()
				app.Quit()
			},
		})
	}

	window.SetCloseIntercept(func() {
		controller.Shutdown()
		window.Close()
	})
	return controller
}

// ShowSetup displays the setup form, prefilled with the last submitted meeting.
func (controller *Controller) ShowSetup() {
	controller.setup.Prefill(controller.collector.Prefill())
	controller.window.SetContent(controller.setup.Content())
}

// StartMeeting replaces the setup form with a countdown for meeting.
func (controller *Controller) StartMeeting(config model.MeetingConfig) {
	controller.stopKeeper()

	keeper := timekeeper.New(config, timekeeper.Config{
		Clock:    controller.clock,
		Messages: controller.messages,
	})
	view := meeting.New(config, controller.EndMeeting)
	view.Apply(keeper.Snapshot())

	controller.keeper = keeper
	controller.meeting = view
	controller.window.SetContent(view.Content())
	if controller.tray != nil {
		controller.tray.SetInMeeting(true)
		controller.tray.SetSnapshot(keeper.Snapshot())
	}

	keeper.Start()
	go controller.forward(keeper.Subscribe(eventBuffer), view)
}

// EndMeeting stops the countdown and returns to the setup form.
func (controller *Controller) EndMeeting() {
	controller.stopKeeper()
	if controller.tray != nil {
		controller.tray.SetInMeeting(false)
	}
	controller.ShowSetup()
}

// Shutdown releases the countdown when the host is torn down.
func (controller *Controller) Shutdown() {
	controller.stopKeeper()
}

// Keeper returns the running session, or nil on the setup form.
func (controller *Controller) Keeper() *timekeeper.TimeKeeper {
	return controller.keeper
}

func (controller *Controller) stopKeeper() {
	if controller.keeper == nil {
		return
	}
	controller.keeper.End()
	controller.keeper = nil
	controller.meeting = nil
}

func (controller *Controller) forward(events <-chan timekeeper.Event, view *meeting.View) {
	for event := range events {
		if event.Type == timekeeper.EventEnded {
			continue
		}
		snapshot := event.Snapshot
		fyne.Do(func() {
			view.Apply(snapshot)
			if controller.tray != nil && controller.meeting == view {
				controller.tray.SetSnapshot(snapshot)
			}
		})
	}
}
