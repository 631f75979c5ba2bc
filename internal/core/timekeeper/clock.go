package timekeeper

import "time"

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers. It is the scheduling port of the TimeKeeper.
type Clock interface {
	NewTicker(interval time.Duration) Ticker
}

// SystemClock is the default Clock backed by time.Ticker.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) NewTicker(interval time.Duration) Ticker {
	return systemTicker{ticker: time.NewTicker(interval)}
}

type systemTicker struct {
	ticker *time.Ticker
}

func (ticker systemTicker) C() <-chan time.Time {
	return ticker.ticker.C
}

func (ticker systemTicker) Stop() {
	ticker.ticker.Stop()
}
