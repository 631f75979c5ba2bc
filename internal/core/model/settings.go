package model

// Settings defines application preferences loaded from the settings file.
type Settings struct {
	DefaultDurationMinutes int
	Language               string
	WindowWidth            float32
	WindowHeight           float32
	ShowTray               bool

	// MessageOverrides replaces individual phase messages, keyed by phase name
	// (introduction, discussion, next_actions, wrap_up, finished).
	MessageOverrides map[string]string
}

// DefaultSettings returns default settings for meetingkeeper.
func DefaultSettings() Settings {
	return Settings{
		DefaultDurationMinutes: 30,
		Language:               "en",
		WindowWidth:            720,
		WindowHeight:           640,
		ShowTray:               true,
	}
}
