package animation

import (
	"fmt"
	"time"
)

// AnimationStatus is the lifecycle position of an AnimationController.
//
//	Dismissed ──Forward()──► Forward ──duration elapsed──► Completed
//
// Edge animations are one-shot: a controller runs once and is disposed, so
// there is no reverse leg.
type AnimationStatus int

const (
	// AnimationDismissed is the state before Forward is called.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the value is moving toward 1.
	AnimationForward
	// AnimationCompleted means the value reached 1 and the ticker stopped.
	AnimationCompleted
)

func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationCompleted:
		return "completed"
	}
	return fmt.Sprintf("AnimationStatus(%d)", int(s))
}

// AnimationController produces a progress Value in [0, 1] over Duration,
// shaped by Curve. Value listeners run on every tick; status listeners run
// on every status change. A non-positive Duration completes inside Forward.
//
// Call Dispose once the animation is no longer needed; a disposed
// controller never notifies again.
type AnimationController struct {
	// Value is the eased progress, 0 before Forward and 1 once completed.
	Value float64

	// Duration is the time from Forward to completion.
	Duration time.Duration

	// Curve maps linear progress to eased progress. Nil means linear.
	Curve func(float64) float64

	status   AnimationStatus
	ticker   *Ticker
	onValue  listeners[func()]
	onStatus listeners[func(AnimationStatus)]
	disposed bool
}

// NewAnimationController returns a dismissed controller running for duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{Duration: duration, Curve: LinearCurve}
}

// Forward starts (or restarts) the animation from 0.
func (c *AnimationController) Forward() {
	if c.disposed {
		return
	}
	c.stopTicker()
	c.Value = 0
	c.setStatus(AnimationForward)

	if c.Duration <= 0 {
		c.advance(1)
		return
	}
	c.ticker = NewTicker(func(elapsed time.Duration) {
		c.advance(float64(elapsed) / float64(c.Duration))
	})
	c.ticker.Start()
}

func (c *AnimationController) advance(progress float64) {
	progress = min(progress, 1)
	c.Value = progress
	if c.Curve != nil {
		c.Value = c.Curve(progress)
	}
	for _, fn := range c.onValue.snapshot() {
		if c.disposed {
			return
		}
		fn()
	}
	if progress == 1 {
		c.stopTicker()
		c.setStatus(AnimationCompleted)
	}
}

// Status returns the current status.
func (c *AnimationController) Status() AnimationStatus { return c.status }

// IsAnimating reports whether a ticker is driving the value.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil && c.ticker.IsActive()
}

// AddListener registers fn to run after each value change and returns a
// function that removes it.
func (c *AnimationController) AddListener(fn func()) func() {
	return c.onValue.add(fn)
}

// AddStatusListener registers fn to run after each status change and
// returns a function that removes it.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	return c.onStatus.add(fn)
}

// Dispose stops the ticker and drops every listener.
func (c *AnimationController) Dispose() {
	c.stopTicker()
	c.disposed = true
	c.onValue = listeners[func()]{}
	c.onStatus = listeners[func(AnimationStatus)]{}
}

func (c *AnimationController) stopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

func (c *AnimationController) setStatus(s AnimationStatus) {
	if c.status == s {
		return
	}
	c.status = s
	for _, fn := range c.onStatus.snapshot() {
		if c.disposed {
			return
		}
		fn(s)
	}
}

// listeners keeps callbacks in registration order. Removal by id keeps
// unsubscribe funcs valid after other entries are removed.
type listeners[F any] struct {
	nextID  int
	entries []listenerEntry[F]
}

type listenerEntry[F any] struct {
	id int
	fn F
}

func (l *listeners[F]) add(fn F) func() {
	id := l.nextID
	l.nextID++
	l.entries = append(l.entries, listenerEntry[F]{id: id, fn: fn})
	return func() {
		for i, e := range l.entries {
			if e.id == id {
				l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
				return
			}
		}
	}
}

// snapshot lets callbacks unsubscribe (or dispose) while being notified.
func (l *listeners[F]) snapshot() []F {
	out := make([]F, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.fn
	}
	return out
}
