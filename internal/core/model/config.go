package model

import "strings"

// Candidate holds raw meeting input as entered by the user.
type Candidate struct {
	Goal            string
	Agenda          string
	DurationMinutes int
}

// MeetingConfig is a validated meeting configuration. It is never mutated after creation.
type MeetingConfig struct {
	Goal            string
	Agenda          string
	DurationMinutes int
}

// TotalSeconds returns the countdown length for the meeting.
func (config MeetingConfig) TotalSeconds() int {
	return config.DurationMinutes * 60
}

// AgendaItems returns the non-blank agenda lines, trimmed.
func (config MeetingConfig) AgendaItems() []string {
	var items []string
	for _, line := range strings.Split(config.Agenda, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}
