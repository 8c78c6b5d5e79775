// Package indicator provides the default loading indicators used as
// refresh and load-more feedback.
//
// [Spinner] is the classic twelve-spoke activity indicator. It implements
// both refresh.Feedback and loadmore.Feedback and is shown from the first
// pull (or begin) until the lifecycle ends. [TextIndicator] pairs a spinner
// with a status label.
package indicator

import (
	"time"

	"github.com/go-drift/refreshable/pkg/animation"
	"github.com/go-drift/refreshable/pkg/graphics"
	"github.com/go-drift/refreshable/pkg/refresh"
	"github.com/go-drift/refreshable/pkg/semantics"
)

// SpinnerSize represents the size of the spinner.
type SpinnerSize int

const (
	// SpinnerSizeMedium is the default spinner (30pt).
	SpinnerSizeMedium SpinnerSize = iota
	// SpinnerSizeSmall is a small spinner (20pt).
	SpinnerSizeSmall
	// SpinnerSizeLarge is a large spinner (40pt).
	SpinnerSizeLarge
)

// Extent returns the spinner's edge length in points.
func (s SpinnerSize) Extent() float64 {
	switch s {
	case SpinnerSizeSmall:
		return 20
	case SpinnerSizeLarge:
		return 40
	default:
		return 30
	}
}

const (
	// DefaultHeight is the height a spinner asks for as a load-more footer.
	DefaultHeight = 50.0
	// SpokeCount is the number of spokes drawn per frame.
	SpokeCount = 12
	// Period is the duration of one full revolution.
	Period = time.Second
)

// Spinner is an activity indicator driven by lifecycle callbacks.
type Spinner struct {
	// Size is the indicator size. Defaults to Medium.
	Size SpinnerSize
	// Color is the spoke color. Zero uses graphics.ColorSystemGray.
	Color graphics.Color
	// Height is reported as PreferredHeight. Zero uses DefaultHeight.
	Height float64

	visible   bool
	animating bool
	startedAt time.Time
}

// NewSpinner returns a hidden, stopped spinner.
func NewSpinner() *Spinner {
	return &Spinner{}
}

// Visible reports whether the spinner is shown.
func (s *Spinner) Visible() bool { return s.visible }

// Animating reports whether the spinner is spinning.
func (s *Spinner) Animating() bool { return s.animating }

// OnStateChange shows the spinner when a pull starts and hides it once the
// content is back at rest.
func (s *Spinner) OnStateChange(state refresh.State) {
	switch state {
	case refresh.Idle:
		s.visible = false
	case refresh.Pulling:
		s.visible = true
	}
}

// OnAnimationStart starts spinning.
func (s *Spinner) OnAnimationStart() { s.start() }

// OnAnimationEnd hides and stops the spinner.
func (s *Spinner) OnAnimationEnd() { s.stop() }

// OnBeginRefreshing starts spinning.
func (s *Spinner) OnBeginRefreshing() { s.start() }

// OnEndRefreshing hides and stops the spinner.
func (s *Spinner) OnEndRefreshing() { s.stop() }

// PreferredHeight implements loadmore.Feedback.
func (s *Spinner) PreferredHeight() float64 {
	if s.Height > 0 {
		return s.Height
	}
	return DefaultHeight
}

func (s *Spinner) start() {
	s.visible = true
	if !s.animating {
		s.animating = true
		s.startedAt = animation.Now()
	}
}

func (s *Spinner) stop() {
	s.visible = false
	s.animating = false
}

// Frame returns the index of the brightest spoke. A stopped spinner always
// reports frame 0.
func (s *Spinner) Frame() int {
	if !s.animating {
		return 0
	}
	elapsed := animation.Now().Sub(s.startedAt)
	if elapsed < 0 {
		return 0
	}
	step := Period / SpokeCount
	return int(elapsed/step) % SpokeCount
}

func (s *Spinner) color() graphics.Color {
	if s.Color == 0 {
		return graphics.ColorSystemGray
	}
	return s.Color
}

// DescribeSemanticsConfiguration implements semantics.SemanticsDescriber.
func (s *Spinner) DescribeSemanticsConfiguration(config *semantics.SemanticsConfiguration) bool {
	config.IsSemanticBoundary = true
	config.Properties.Role = semantics.SemanticsRoleProgressIndicator

	if s.animating {
		config.Properties.Label = "Loading"
		config.Properties.Value = "In progress"
		config.Properties.Flags = config.Properties.Flags.Set(semantics.SemanticsIsLiveRegion)
	} else {
		config.Properties.Value = "Stopped"
	}
	return true
}
