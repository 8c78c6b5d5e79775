package animation

import (
	"testing"
	"time"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func withStepClock(t *testing.T) *stepClock {
	t.Helper()
	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(clk)
	t.Cleanup(func() {
		StopAllTickers()
		SetClock(prev)
	})
	return clk
}

func TestAnimationStatusString(t *testing.T) {
	tests := []struct {
		status AnimationStatus
		want   string
	}{
		{AnimationDismissed, "dismissed"},
		{AnimationForward, "forward"},
		{AnimationCompleted, "completed"},
		{AnimationStatus(9), "AnimationStatus(9)"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAnimationController_ForwardCompletes(t *testing.T) {
	clk := withStepClock(t)
	c := NewAnimationController(300 * time.Millisecond)
	defer c.Dispose()

	var statuses []AnimationStatus
	c.AddStatusListener(func(s AnimationStatus) {
		statuses = append(statuses, s)
	})
	c.Forward()
	if !c.IsAnimating() {
		t.Fatal("expected controller to be animating")
	}

	clk.advance(150 * time.Millisecond)
	StepTickers()
	if c.Value <= 0 || c.Value >= 1 {
		t.Errorf("mid value = %v, want in (0,1)", c.Value)
	}

	clk.advance(200 * time.Millisecond)
	StepTickers()
	if c.Value != 1 {
		t.Errorf("final value = %v, want 1", c.Value)
	}
	if c.Status() != AnimationCompleted {
		t.Errorf("status = %v, want completed", c.Status())
	}
	if HasActiveTickers() {
		t.Error("ticker should be stopped after completion")
	}
	want := []AnimationStatus{AnimationForward, AnimationCompleted}
	if len(statuses) != len(want) || statuses[0] != want[0] || statuses[1] != want[1] {
		t.Errorf("statuses = %v, want %v", statuses, want)
	}
}

func TestAnimationController_ZeroDurationCompletesSynchronously(t *testing.T) {
	withStepClock(t)
	c := NewAnimationController(0)
	defer c.Dispose()

	values := 0
	c.AddListener(func() { values++ })
	completed := false
	c.AddStatusListener(func(s AnimationStatus) {
		if s == AnimationCompleted {
			completed = true
		}
	})
	c.Forward()
	if !completed {
		t.Fatal("expected synchronous completion")
	}
	if values != 1 {
		t.Errorf("listener calls = %d, want 1", values)
	}
	if HasActiveTickers() {
		t.Error("zero-duration animation should not start a ticker")
	}
}

func TestAnimationController_DisposeStopsTicker(t *testing.T) {
	withStepClock(t)
	c := NewAnimationController(time.Second)
	c.Forward()
	c.Dispose()
	if HasActiveTickers() {
		t.Error("Dispose should stop the ticker")
	}
	StepTickers()
}

func TestTweenFloat64Transform(t *testing.T) {
	clk := withStepClock(t)
	c := NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	tw := TweenFloat64(0, 50)
	c.Forward()
	clk.advance(50 * time.Millisecond)
	StepTickers()
	if got := tw.Transform(c); got != 25 {
		t.Errorf("Transform = %v, want 25", got)
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	for _, curve := range []func(float64) float64{EaseOut, CubicBezier(0.4, 0, 1, 1), CubicBezier(0.25, 0.1, 0.25, 1)} {
		if curve(0) != 0 || curve(1) != 1 {
			t.Errorf("curve endpoints = %v, %v", curve(0), curve(1))
		}
		if v := curve(0.5); v <= 0 || v >= 1 {
			t.Errorf("curve(0.5) = %v", v)
		}
	}
}

func TestEaseOutFrontLoadsProgress(t *testing.T) {
	if v := EaseOut(0.5); v <= 0.5 {
		t.Errorf("EaseOut(0.5) = %v, want > 0.5", v)
	}
	if LinearCurve(0.3) != 0.3 {
		t.Error("LinearCurve should be the identity")
	}
}

func TestAnimationController_Unsubscribe(t *testing.T) {
	clk := withStepClock(t)
	c := NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	var a, b int
	removeA := c.AddListener(func() { a++ })
	c.AddListener(func() { b++ })
	c.Forward()

	clk.advance(10 * time.Millisecond)
	StepTickers()
	removeA()
	removeA()
	clk.advance(10 * time.Millisecond)
	StepTickers()

	if a != 1 || b != 2 {
		t.Errorf("calls = (%d, %d), want (1, 2)", a, b)
	}
}

func TestAnimationController_DisposeFromStatusListener(t *testing.T) {
	withStepClock(t)
	c := NewAnimationController(0)

	var calls int
	c.AddStatusListener(func(s AnimationStatus) {
		calls++
		if s == AnimationCompleted {
			c.Dispose()
		}
	})
	c.AddStatusListener(func(AnimationStatus) { calls++ })
	c.Forward()

	// forward reaches both listeners, completed only the first
	if calls != 3 {
		t.Errorf("status calls = %d, want 3", calls)
	}
	c.Forward()
	if calls != 3 {
		t.Error("a disposed controller must not restart")
	}
}
