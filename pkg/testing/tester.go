package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/refreshable/pkg/animation"
	"github.com/go-drift/refreshable/pkg/graphics"
	"github.com/go-drift/refreshable/pkg/scroll"
)

const (
	// DefaultViewportWidth is the default logical viewport width.
	DefaultViewportWidth = 320
	// DefaultViewportHeight is the default logical viewport height.
	DefaultViewportHeight = 568
	// FrameDuration is the clock advance per pumped frame.
	FrameDuration = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// ScrollTester drives a scroll.View with simulated drags and a fake clock.
type ScrollTester struct {
	view      *scroll.View
	clock     *FakeClock
	prevClock animation.Clock
}

// NewScrollTester creates a tester around a fresh view. A zero viewport
// selects the default size. Call Cleanup when done, or use
// NewScrollTesterWithT instead.
func NewScrollTester(viewport graphics.Size) *ScrollTester {
	if viewport.IsEmpty() {
		viewport = graphics.Size{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
	}
	clk := NewFakeClock()
	return &ScrollTester{
		view:      scroll.NewView(viewport),
		clock:     clk,
		prevClock: animation.SetClock(clk),
	}
}

// NewScrollTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewScrollTesterWithT(t *testing.T, viewport graphics.Size) *ScrollTester {
	tester := NewScrollTester(viewport)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup stops leftover animations and restores the animation clock.
func (t *ScrollTester) Cleanup() {
	animation.StopAllTickers()
	animation.SetClock(t.prevClock)
}

// View returns the scroll view under test.
func (t *ScrollTester) View() *scroll.View {
	return t.view
}

// Clock returns the fake clock for advancing time in tests.
func (t *ScrollTester) Clock() *FakeClock {
	return t.clock
}

// Pump steps every active ticker once at the current fake time.
func (t *ScrollTester) Pump() {
	animation.StepTickers()
}

// PumpFor pumps frames until d of fake time has elapsed.
func (t *ScrollTester) PumpFor(d time.Duration) {
	var elapsed time.Duration
	for elapsed < d {
		t.Pump()
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	t.Pump()
}

// PumpAndSettle pumps frames until no animation is active or the timeout
// is reached. Returns ErrSettleTimeout if animations are still running.
func (t *ScrollTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !animation.HasActiveTickers() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// DragThrough starts (or continues) a drag and moves the content through
// each offset in turn. The finger stays down afterwards.
func (t *ScrollTester) DragThrough(offsets ...float64) {
	if !t.view.IsDragging() {
		t.view.BeginDrag()
	}
	for _, y := range offsets {
		t.view.DragTo(y)
	}
}

// Release lifts the finger.
func (t *ScrollTester) Release() {
	t.view.EndDrag()
}

// ScrollThrough moves the content through each offset without a finger
// down, as momentum scrolling does.
func (t *ScrollTester) ScrollThrough(offsets ...float64) {
	for _, y := range offsets {
		t.view.SetContentOffset(graphics.Offset{X: t.view.ContentOffset().X, Y: y})
	}
}
