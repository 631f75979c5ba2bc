package timekeeper

import "time"

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStarted     EventType = "started"
	EventProgress    EventType = "progress"
	EventPhaseChange EventType = "phase_change"
	EventEnded       EventType = "ended"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Phase    Phase
	Snapshot Snapshot
	At       time.Time
}

// Snapshot is a read-only view of the countdown for rendering.
type Snapshot struct {
	Remaining        string
	RemainingSeconds int
	TotalSeconds     int
	Phase            Phase
	Message          string
	Color            Color
	ProgressPercent  float64
	Urgency          Urgency
	Goal             string
	Agenda           string
	Ended            bool
}

// Finished reports whether the countdown reached zero.
func (snapshot Snapshot) Finished() bool {
	return snapshot.Phase == PhaseFinished
}
