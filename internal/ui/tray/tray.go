package tray

import (
	"fmt"

	"meetingkeeper/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "Meeting Timekeeper"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow       func()
	OnEndMeeting func()
	OnQuit       func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	showItem   *fyne.MenuItem
	endItem    *fyne.MenuItem
	quitItem   *fyne.MenuItem
	callbacks  Callbacks
	inMeeting  bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem(StatusIdle(), nil)
	manager.statusItem.Disabled = true

	manager.showItem = fyne.NewMenuItem("Show window", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})

	manager.endItem = fyne.NewMenuItem("End meeting", func() {
		if manager.callbacks.OnEndMeeting != nil {
			manager.callbacks.OnEndMeeting()
		}
	})
	manager.endItem.Disabled = true

	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quitItem.IsQuit = true

	manager.refreshMenu()
	return manager
}

// StatusIdle is the status line shown while no meeting runs.
func StatusIdle() string {
	return "Status: no meeting running"
}

// StatusFor renders the status line for a countdown snapshot.
func StatusFor(snapshot timekeeper.Snapshot) string {
	if snapshot.Finished() {
		return "Status: time's up"
	}
	return fmt.Sprintf("Status: %s, %s left", snapshot.Phase, snapshot.Remaining)
}

// SetSnapshot updates the status line from a countdown snapshot.
func (manager *Manager) SetSnapshot(snapshot timekeeper.Snapshot) {
	manager.statusItem.Label = StatusFor(snapshot)
	manager.refreshMenu()
}

// SetInMeeting toggles meeting-related menu items.
func (manager *Manager) SetInMeeting(inMeeting bool) {
	manager.inMeeting = inMeeting
	manager.endItem.Disabled = !inMeeting
	if !inMeeting {
		manager.statusItem.Label = StatusIdle()
	}
	manager.refreshMenu()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
			manager.statusItem,
			manager.showItem,
			manager.endItem,
			fyne.NewMenuItemSeparator(),
			manager.quitItem,
		))
	}
}
