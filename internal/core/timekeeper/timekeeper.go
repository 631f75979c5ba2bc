package timekeeper

import (
	"sync"
	"time"

	"meetingkeeper/internal/core/model"
)

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Clock        Clock
	Messages     Messages
}

// TimeKeeper counts down one meeting session and derives its phase on every tick.
type TimeKeeper struct {
	mu        sync.Mutex
	meeting   model.MeetingConfig
	options   Config
	total     int
	remaining int
	phase     Phase
	events    []chan Event
	stopCh    chan struct{}
	loop      sync.WaitGroup
	running   bool
	ended     bool
}

// New creates a TimeKeeper for the meeting. The countdown does not run until Start.
func New(meeting model.MeetingConfig, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = SystemClock
	}
	if options.Messages == nil {
		options.Messages = DefaultMessages()
	}

	total := meeting.TotalSeconds()
	if total < 0 {
		total = 0
	}
	return &TimeKeeper{
		meeting:   meeting,
		options:   options,
		total:     total,
		remaining: total,
		phase:     PhaseFor(total, total),
	}
}

// Meeting returns the configuration the session was started from.
func (keeper *TimeKeeper) Meeting() model.MeetingConfig {
	return keeper.meeting
}

// Subscribe registers a new observer channel. Channels are closed by End.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.ended {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Start launches the ticking loop with a single ticker from the configured clock.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	if keeper.running || keeper.ended || keeper.remaining <= 0 {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	keeper.stopCh = make(chan struct{})
	ticker := keeper.options.Clock.NewTicker(keeper.options.TickInterval)
	stopCh := keeper.stopCh
	keeper.loop.Add(1)
	keeper.emitLocked(EventStarted, time.Now())
	keeper.mu.Unlock()

	go keeper.run(ticker, stopCh)
}

// Tick advances the countdown by exactly one second. It is a no-op once the
// countdown reached zero or the session ended. It reports whether the
// countdown is still running afterwards.
func (keeper *TimeKeeper) Tick() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	if keeper.ended || keeper.remaining <= 0 {
		return false
	}
	keeper.remaining--
	now := time.Now()

	keeper.emitLocked(EventProgress, now)
	if phase := PhaseFor(keeper.remaining, keeper.total); phase != keeper.phase {
		keeper.phase = phase
		keeper.emitLocked(EventPhaseChange, now)
	}

	if keeper.remaining == 0 {
		keeper.running = false
		return false
	}
	return true
}

// End stops the session immediately, whatever the phase, and closes observers.
func (keeper *TimeKeeper) End() {
	keeper.mu.Lock()
	if keeper.ended {
		keeper.mu.Unlock()
		return
	}
	keeper.ended = true
	if keeper.running {
		close(keeper.stopCh)
		keeper.running = false
	}
	keeper.emitLocked(EventEnded, time.Now())
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Wait blocks until the ticking loop has released its ticker.
func (keeper *TimeKeeper) Wait() {
	keeper.loop.Wait()
}

// Running reports whether the ticking loop is active.
func (keeper *TimeKeeper) Running() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.running
}

// Snapshot returns the current countdown view.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked()
}

func (keeper *TimeKeeper) run(ticker Ticker, stopCh chan struct{}) {
	defer keeper.loop.Done()
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C():
			if !keeper.Tick() {
				return
			}
		}
	}
}

func (keeper *TimeKeeper) snapshotLocked() Snapshot {
	phase := PhaseFor(keeper.remaining, keeper.total)
	display := keeper.options.Messages.Display(phase)
	return Snapshot{
		Remaining:        FormatTime(keeper.remaining),
		RemainingSeconds: keeper.remaining,
		TotalSeconds:     keeper.total,
		Phase:            phase,
		Message:          display.Message,
		Color:            display.Color,
		ProgressPercent:  ProgressPercent(keeper.remaining, keeper.total),
		Urgency:          UrgencyFor(keeper.remaining),
		Goal:             keeper.meeting.Goal,
		Agenda:           keeper.meeting.Agenda,
		Ended:            keeper.ended,
	}
}

func (keeper *TimeKeeper) emitLocked(eventType EventType, at time.Time) {
	snapshot := keeper.snapshotLocked()
	event := Event{
		Type:     eventType,
		Phase:    snapshot.Phase,
		Snapshot: snapshot,
		At:       at,
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
