package timekeeper

// Color is a presentation-neutral color token. Hosts map tokens to concrete colors.
type Color string

const (
	ColorSky    Color = "sky"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
	ColorSlate  Color = "slate"
)

// Display is the guidance shown for a phase.
type Display struct {
	Message string
	Color   Color
}

// Messages maps each phase to its guidance text.
type Messages map[Phase]string

var phaseColors = map[Phase]Color{
	PhaseIntroduction: ColorSky,
	PhaseDiscussion:   ColorGreen,
	PhaseNextActions:  ColorYellow,
	PhaseWrapUp:       ColorOrange,
	PhaseFinished:     ColorRed,
}

// DefaultMessages returns the English message catalog.
func DefaultMessages() Messages {
	return Messages{
		PhaseIntroduction: "Let's begin. Align on the goal and the agenda.",
		PhaseDiscussion:   "Main discussion in progress. Keep the conversation focused.",
		PhaseNextActions:  "Time to decide clear next actions and owners.",
		PhaseWrapUp:       "Wrap up. Summarize key decisions and next steps.",
		PhaseFinished:     "Time's up! The meeting is over.",
	}
}

// JapaneseMessages returns the Japanese message catalog.
func JapaneseMessages() Messages {
	return Messages{
		PhaseIntroduction: "会議を始めましょう。ゴールとアジェンダの認識を合わせる時間です。",
		PhaseDiscussion:   "メインの議論を進めています。会話を集中させましょう。",
		PhaseNextActions:  "明確なネクストアクションと担当者を決める時間です。",
		PhaseWrapUp:       "まとめの時間です。主要な決定事項と次のステップを要約しましょう。",
		PhaseFinished:     "時間です！会議は終了しました。",
	}
}

// MessagesFor returns the catalog for a language code, falling back to English.
func MessagesFor(language string) Messages {
	switch language {
	case "ja", "ja-JP", "ja_JP":
		return JapaneseMessages()
	default:
		return DefaultMessages()
	}
}

// WithOverrides returns a copy of the catalog with messages replaced by phase key.
// Unknown keys and empty messages are ignored.
func (messages Messages) WithOverrides(overrides map[string]string) Messages {
	merged := make(Messages, len(messages))
	for phase, message := range messages {
		merged[phase] = message
	}
	for key, message := range overrides {
		phase, ok := ParsePhase(key)
		if !ok || message == "" {
			continue
		}
		merged[phase] = message
	}
	return merged
}

// Display returns the message and color for a phase.
func (messages Messages) Display(phase Phase) Display {
	color, ok := phaseColors[phase]
	if !ok {
		return Display{Color: ColorSlate}
	}
	message, ok := messages[phase]
	if !ok {
		message = DefaultMessages()[phase]
	}
	return Display{Message: message, Color: color}
}

// UrgencyColor returns the readout color for an urgency tier.
func UrgencyColor(urgency Urgency) Color {
	switch urgency {
	case UrgencyCritical:
		return ColorRed
	case UrgencyWarning:
		return ColorYellow
	default:
		return ColorSky
	}
}
