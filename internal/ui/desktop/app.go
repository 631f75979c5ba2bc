package desktop

import (
	"fmt"
	"log"

	"meetingkeeper/internal/platform"
	"meetingkeeper/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	appID   = "com.meetingkeeper.app"
	appName = "meetingkeeper"
)

// Run starts the desktop application and blocks until it quits.
func Run(options Options) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.IconLogo))

	window := fyneApp.NewWindow("Meeting Timekeeper")
	window.Resize(fyne.NewSize(options.Settings.WindowWidth, options.Settings.WindowHeight))
	window.SetMaster()

	controller := NewController(fyneApp, window, options)
	controller.ShowSetup()

	log.Printf("meeting timekeeper started (lock %s)", guard.Address())
	window.ShowAndRun()
	controller.Shutdown()
	return nil
}
