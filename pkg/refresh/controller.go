// Package refresh implements the pull-to-refresh edge controller.
//
// A [Controller] observes the content offset of a [scroll.Container] and
// drives the Idle → Pulling → ReleaseToLoad → Loading state machine. When the
// finger lifts past the indicator height it animates the top inset open,
// enters Loading and calls the refresh action exactly once. [Controller.Stop]
// animates the inset back to the value it had before loading.
//
// While attached, the controller is the only writer of the container's top
// inset. Foreign writes desynchronize the restore step and are not detected.
package refresh

import (
	"time"

	"go.uber.org/zap"

	"github.com/go-drift/refreshable/pkg/animation"
	"github.com/go-drift/refreshable/pkg/errors"
	"github.com/go-drift/refreshable/pkg/graphics"
	"github.com/go-drift/refreshable/pkg/scroll"
	"github.com/go-drift/refreshable/pkg/semantics"
)

const (
	// DefaultHeight is the indicator height used when none is configured.
	DefaultHeight = 50.0
	// DefaultAnimationDuration is the reveal and conceal duration.
	DefaultAnimationDuration = 300 * time.Millisecond
)

// Config configures a Controller. Zero values select the defaults.
type Config struct {
	// Height is the indicator height and the pull distance needed to arm
	// a refresh. Defaults to DefaultHeight.
	Height float64
	// AnimationDuration is the inset reveal/conceal duration.
	// Defaults to DefaultAnimationDuration.
	AnimationDuration time.Duration
	// Boundary classifies offsets exactly on the top edge.
	Boundary IdleBoundary
	// Feedback receives lifecycle notifications. Optional.
	Feedback Feedback
	// Logger receives state transitions at debug level. Optional.
	Logger *zap.Logger
	// ID labels log entries and reported errors.
	ID string
}

type phase int

const (
	phaseNone phase = iota
	phaseRevealing
	phaseConcealing
)

// Controller is the pull-to-refresh state machine for one container.
type Controller struct {
	action   func()
	height   float64
	duration time.Duration
	boundary IdleBoundary
	feedback Feedback
	logger   *zap.Logger
	id       string

	// container is a non-owning reference; nil when detached.
	container        scroll.Container
	unobserve        func()
	state            State
	phase            phase
	originalInsetTop float64
	insetTopDelta    float64
	anim             *animation.AnimationController
}

// NewController creates a detached controller that calls action each time a
// refresh is triggered.
func NewController(action func(), cfg Config) *Controller {
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.AnimationDuration <= 0 {
		cfg.AnimationDuration = DefaultAnimationDuration
	}
	if cfg.Feedback == nil {
		cfg.Feedback = nopFeedback{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Controller{
		action:   action,
		height:   cfg.Height,
		duration: cfg.AnimationDuration,
		boundary: cfg.Boundary,
		feedback: cfg.Feedback,
		logger:   cfg.Logger,
		id:       cfg.ID,
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Height returns the indicator height.
func (c *Controller) Height() float64 {
	return c.height
}

// Feedback returns the feedback target.
func (c *Controller) Feedback() Feedback {
	return c.feedback
}

// IsAttached reports whether the controller observes a container.
func (c *Controller) IsAttached() bool {
	return c.container != nil
}

// IsAnimating reports whether a reveal or conceal animation is in flight.
func (c *Controller) IsAnimating() bool {
	return c.phase != phaseNone
}

// Attach installs the controller on container, detaching it from any
// previous container first. The current offset is evaluated immediately.
func (c *Controller) Attach(container scroll.Container) {
	if container == nil {
		return
	}
	if c.container != nil {
		c.Detach()
	}
	c.container = container
	container.SetAlwaysBounceVertical(true)
	c.originalInsetTop = container.Metrics().ContentInset.Top
	container.AddDecoration(c)
	c.unobserve = container.ObserveContentOffset(c.handleOffsetChange)
	c.logger.Info("pull-to-refresh attached",
		zap.String("handle", c.id),
		zap.Float64("height", c.height),
		zap.Float64("originalInsetTop", c.originalInsetTop),
	)
	c.evaluate()
}

// Detach releases the container. An inset opened for loading is restored
// immediately and the controller returns to Idle. Detach never panics and is
// a no-op when already detached.
func (c *Controller) Detach() {
	container := c.container
	if container == nil {
		return
	}
	wasLoading := c.state == Loading || c.phase != phaseNone
	c.cancelAnimation()
	if wasLoading {
		inset := container.Metrics().ContentInset
		inset.Top = c.originalInsetTop
		container.SetContentInset(inset)
	}
	if c.unobserve != nil {
		c.unobserve()
		c.unobserve = nil
	}
	container.RemoveDecoration(c)
	c.container = nil
	c.phase = phaseNone
	c.insetTopDelta = 0

	prev := c.state
	c.setState(Idle)
	if prev == Loading {
		c.notify("refresh.Controller.OnAnimationEnd", c.feedback.OnAnimationEnd)
	}
	c.logger.Info("pull-to-refresh detached", zap.String("handle", c.id))
}

// Start runs the activation sequence programmatically, as if the user had
// released past the threshold. No-op while loading, animating or detached.
func (c *Controller) Start() {
	c.activate()
}

// Stop runs the completion sequence: the top inset animates back to its
// pre-loading value and the controller returns to Idle. No-op unless Loading.
func (c *Controller) Stop() {
	if c.container == nil || c.state != Loading || c.phase != phaseNone {
		return
	}
	m := c.container.Metrics()
	fromTop := m.ContentInset.Top
	toTop := fromTop + c.insetTopDelta

	var offsets *animation.Tween[graphics.Offset]
	rest := -(toTop + m.AdjustedInsetTop)
	if !m.IsDragging && m.ContentOffset.Y < rest {
		offsets = animation.TweenOffset(m.ContentOffset, graphics.Offset{X: m.ContentOffset.X, Y: rest})
	}

	c.phase = phaseConcealing
	c.animate(animation.TweenFloat64(fromTop, toTop), offsets, func() {
		c.phase = phaseNone
		c.insetTopDelta = 0
		c.setState(Idle)
		c.notify("refresh.Controller.OnAnimationEnd", c.feedback.OnAnimationEnd)
	})
}

// Frame returns the indicator rectangle, directly above the content.
func (c *Controller) Frame() graphics.Rect {
	width := 0.0
	if c.container != nil {
		width = c.container.Metrics().ViewportSize.Width
	}
	return graphics.RectFromLTWH(0, -c.height, width, c.height)
}

// IsHidden reports whether the indicator is out of the container.
func (c *Controller) IsHidden() bool {
	return c.container == nil
}

// DescribeSemanticsConfiguration implements semantics.SemanticsDescriber.
func (c *Controller) DescribeSemanticsConfiguration(config *semantics.SemanticsConfiguration) bool {
	config.IsSemanticBoundary = true
	config.Properties.Label = "Pull to refresh"
	config.Properties.Hint = "Pull down to refresh content"
	config.Properties.Role = semantics.SemanticsRoleHeader
	config.Properties.Value = c.state.String()
	if c.state == Loading {
		config.Properties.Flags = config.Properties.Flags.Set(semantics.SemanticsIsBusy)
	}
	if c.container == nil {
		config.Properties.Flags = config.Properties.Flags.Set(semantics.SemanticsIsHidden)
	}
	if describer, ok := c.feedback.(semantics.SemanticsDescriber); ok {
		var inner semantics.SemanticsConfiguration
		if describer.DescribeSemanticsConfiguration(&inner) {
			config.Merge(inner)
		}
	}
	return true
}

func (c *Controller) handleOffsetChange(scroll.OffsetChange) {
	c.evaluate()
}

func (c *Controller) evaluate() {
	if c.container == nil || c.phase != phaseNone {
		return
	}
	m := c.container.Metrics()

	if c.state == Loading {
		c.followLoadingInset(m)
		return
	}

	c.originalInsetTop = m.ContentInset.Top
	adjustedTop := m.AdjustedTop()
	y := m.ContentOffset.Y
	if c.boundary.atRest(y, adjustedTop) {
		c.setState(Idle)
		return
	}

	pulled := -y - adjustedTop
	switch {
	case pulled <= c.height:
		c.setState(Pulling)
	case m.IsDragging:
		c.setState(ReleaseToLoad)
	default:
		c.activate()
	}
}

// followLoadingInset keeps the loading inset between the original inset and
// the fully revealed indicator as the user scrolls during loading.
func (c *Controller) followLoadingInset(m scroll.Metrics) {
	visible := -m.ContentOffset.Y - m.AdjustedInsetTop
	top := graphics.Clamp(visible, c.originalInsetTop, c.originalInsetTop+c.height)
	if !graphics.FloatEqual(top, m.ContentInset.Top) {
		inset := m.ContentInset
		inset.Top = top
		c.container.SetContentInset(inset)
	}
	c.insetTopDelta = c.originalInsetTop - top
}

func (c *Controller) activate() {
	if c.container == nil || c.state == Loading || c.phase != phaseNone {
		return
	}
	m := c.container.Metrics()
	c.originalInsetTop = m.ContentInset.Top
	c.insetTopDelta = 0

	target := graphics.Offset{X: m.ContentOffset.X, Y: -(m.AdjustedTop() + c.height)}
	c.phase = phaseRevealing
	c.animate(
		animation.TweenFloat64(m.ContentInset.Top, c.originalInsetTop+c.height),
		animation.TweenOffset(m.ContentOffset, target),
		func() {
			c.phase = phaseNone
			if c.container != nil {
				c.insetTopDelta = c.originalInsetTop - c.container.Metrics().ContentInset.Top
			}
			c.setState(Loading)
			c.notify("refresh.Controller.OnAnimationStart", c.feedback.OnAnimationStart)
			c.trigger()
		},
	)
}

func (c *Controller) trigger() {
	c.logger.Debug("pull-to-refresh triggered", zap.String("handle", c.id))
	errors.Guard("refresh.Controller.trigger", c.action)
}

// animate moves the top inset (and optionally the offset) and calls done
// once the animation completes.
func (c *Controller) animate(top *animation.Tween[float64], offsets *animation.Tween[graphics.Offset], done func()) {
	c.cancelAnimation()
	ctrl := animation.NewAnimationController(c.duration)
	ctrl.Curve = animation.EaseOut
	ctrl.AddListener(func() {
		if c.container == nil {
			return
		}
		inset := c.container.Metrics().ContentInset
		inset.Top = top.Transform(ctrl)
		c.container.SetContentInset(inset)
		if offsets != nil {
			c.container.SetContentOffset(offsets.Transform(ctrl))
		}
	})
	ctrl.AddStatusListener(func(status animation.AnimationStatus) {
		if status != animation.AnimationCompleted || c.anim != ctrl {
			return
		}
		ctrl.Dispose()
		c.anim = nil
		done()
	})
	c.anim = ctrl
	ctrl.Forward()
}

func (c *Controller) cancelAnimation() {
	if c.anim == nil {
		return
	}
	c.anim.Dispose()
	c.anim = nil
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	prev := c.state
	c.state = s
	c.logger.Debug("pull-to-refresh state changed",
		zap.String("handle", c.id),
		zap.Stringer("from", prev),
		zap.Stringer("to", s),
	)
	c.notify("refresh.Controller.OnStateChange", func() { c.feedback.OnStateChange(s) })
}

func (c *Controller) notify(op string, fn func()) {
	errors.Guard(op, fn)
}
