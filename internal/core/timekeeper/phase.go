package timekeeper

import "fmt"

// Phase is a stage of a meeting, derived from the elapsed fraction.
// Phases are ordered; a running countdown only moves forward through them.
type Phase int

const (
	PhaseIntroduction Phase = iota
	PhaseDiscussion
	PhaseNextActions
	PhaseWrapUp
	PhaseFinished
)

// Phase boundaries in percent of the total duration.
const (
	discussionFromPercent  = 10
	nextActionsFromPercent = 80
	wrapUpFromPercent      = 95
)

// Phases lists every phase in order.
var Phases = []Phase{PhaseIntroduction, PhaseDiscussion, PhaseNextActions, PhaseWrapUp, PhaseFinished}

func (phase Phase) String() string {
	switch phase {
	case PhaseIntroduction:
		return "Introduction"
	case PhaseDiscussion:
		return "Discussion"
	case PhaseNextActions:
		return "Next actions"
	case PhaseWrapUp:
		return "Wrap-up"
	case PhaseFinished:
		return "Finished"
	default:
		return fmt.Sprintf("Phase(%d)", int(phase))
	}
}

// Key returns the settings key of the phase.
func (phase Phase) Key() string {
	switch phase {
	case PhaseIntroduction:
		return "introduction"
	case PhaseDiscussion:
		return "discussion"
	case PhaseNextActions:
		return "next_actions"
	case PhaseWrapUp:
		return "wrap_up"
	case PhaseFinished:
		return "finished"
	default:
		return ""
	}
}

// ParsePhase resolves a settings key to a phase.
func ParsePhase(key string) (Phase, bool) {
	for _, phase := range Phases {
		if phase.Key() == key {
			return phase, true
		}
	}
	return 0, false
}

// PhaseFor returns the phase for the given countdown position.
// Remaining time is checked before the fraction thresholds, so zero remaining is always Finished.
func PhaseFor(remaining, total int) Phase {
	if remaining <= 0 || total <= 0 {
		return PhaseFinished
	}
	if remaining > total {
		remaining = total
	}
	// Compared in integer percent so the boundaries are exact.
	elapsed := int64(total - remaining)
	switch {
	case elapsed*100 < int64(total)*discussionFromPercent:
		return PhaseIntroduction
	case elapsed*100 < int64(total)*nextActionsFromPercent:
		return PhaseDiscussion
	case elapsed*100 < int64(total)*wrapUpFromPercent:
		return PhaseNextActions
	default:
		return PhaseWrapUp
	}
}

// ElapsedFraction returns (total - remaining) / total clamped to [0, 1].
func ElapsedFraction(remaining, total int) float64 {
	if total <= 0 {
		return 1
	}
	fraction := float64(total-remaining) / float64(total)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}

// ProgressPercent returns the elapsed share of the meeting in [0, 100].
func ProgressPercent(remaining, total int) float64 {
	return ElapsedFraction(remaining, total) * 100
}

// Urgency classifies the remaining-time readout independently of the phase.
type Urgency string

const (
	UrgencyNormal   Urgency = "normal"
	UrgencyWarning  Urgency = "warning"
	UrgencyCritical Urgency = "critical"
)

const (
	criticalWithinSeconds = 60
	warningWithinSeconds  = 300
)

// UrgencyFor returns the readout urgency for the remaining seconds.
func UrgencyFor(remaining int) Urgency {
	switch {
	case remaining <= criticalWithinSeconds:
		return UrgencyCritical
	case remaining <= warningWithinSeconds:
		return UrgencyWarning
	default:
		return UrgencyNormal
	}
}

// FormatTime renders seconds as MM:SS. Minutes are not rolled over into hours.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
