package animation

import (
	"sync"
	"time"
)

// Every started ticker is kept here until stopped; StepTickers walks it.
var (
	tickerMu sync.Mutex
	running  = map[*Ticker]struct{}{}
)

// Ticker invokes its callback once per frame with the time elapsed since
// Start. Frames come from whoever calls [StepTickers]: the host frame loop
// or a test harness.
type Ticker struct {
	onTick  func(elapsed time.Duration)
	started time.Time
	active  bool
}

// NewTicker returns a stopped ticker.
func NewTicker(onTick func(elapsed time.Duration)) *Ticker {
	return &Ticker{onTick: onTick}
}

// Start records the start time and schedules the ticker. Starting an active
// ticker does nothing.
func (t *Ticker) Start() {
	if t.active {
		return
	}
	t.active = true
	t.started = Now()
	tickerMu.Lock()
	running[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop unschedules the ticker.
func (t *Ticker) Stop() {
	if !t.active {
		return
	}
	t.active = false
	tickerMu.Lock()
	delete(running, t)
	tickerMu.Unlock()
}

// IsActive reports whether the ticker is scheduled.
func (t *Ticker) IsActive() bool { return t.active }

func runningTickers() []*Ticker {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	out := make([]*Ticker, 0, len(running))
	for t := range running {
		out = append(out, t)
	}
	return out
}

// StepTickers delivers one frame to every active ticker. Callbacks may
// start or stop tickers.
func StepTickers() {
	now := Now()
	for _, t := range runningTickers() {
		if t.active && t.onTick != nil {
			t.onTick(now.Sub(t.started))
		}
	}
}

// HasActiveTickers reports whether any ticker is scheduled.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(running) > 0
}

// StopAllTickers stops every scheduled ticker, so animations cannot leak
// from one test into the next.
func StopAllTickers() {
	for _, t := range runningTickers() {
		t.Stop()
	}
}
