// Package loadmore implements the infinite-scroll footer controller.
//
// A [Controller] reserves its height in the bottom inset of a
// [scroll.Container], tracks the content height as the footer origin, and
// calls the load action when the user scrolls downward past the bottom
// threshold. The action fires once per activation; [Controller.End] re-arms
// the controller.
package loadmore

import (
	"go.uber.org/zap"

	"github.com/go-drift/refreshable/pkg/errors"
	"github.com/go-drift/refreshable/pkg/graphics"
	"github.com/go-drift/refreshable/pkg/scroll"
	"github.com/go-drift/refreshable/pkg/semantics"
)

// DefaultHeight is used when neither Config.Height nor the feedback's
// preferred height is positive.
const DefaultHeight = 50.0

// Config configures a Controller.
type Config struct {
	// Height is the footer height. Defaults to Feedback.PreferredHeight(),
	// then DefaultHeight.
	Height float64
	// Disabled creates the controller with load-more turned off.
	Disabled bool
	Feedback Feedback
	Logger   *zap.Logger
	ID       string
}

// Controller is the load-more state machine for one container.
type Controller struct {
	action   func()
	height   float64
	enabled  bool
	feedback Feedback
	logger   *zap.Logger
	id       string

	container     scroll.Container
	unobserve     []func()
	state         State
	originY       float64
	insetReserved bool
}

// NewController creates a detached controller that calls action each time
// more content is requested.
func NewController(action func(), cfg Config) *Controller {
	if cfg.Feedback == nil {
		cfg.Feedback = nopFeedback{}
	}
	if cfg.Height <= 0 {
		cfg.Height = cfg.Feedback.PreferredHeight()
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Controller{
		action:   action,
		height:   cfg.Height,
		enabled:  !cfg.Disabled,
		feedback: cfg.Feedback,
		logger:   cfg.Logger,
		id:       cfg.ID,
	}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Height returns the footer height.
func (c *Controller) Height() float64 { return c.height }

// IsEnabled reports whether load-more is enabled.
func (c *Controller) IsEnabled() bool { return c.enabled }

// IsAttached reports whether the controller observes a container.
func (c *Controller) IsAttached() bool { return c.container != nil }

// Feedback returns the feedback target.
func (c *Controller) Feedback() Feedback { return c.feedback }

// OriginY is the footer's top edge in content coordinates, which is the
// content height at the last size notification.
func (c *Controller) OriginY() float64 { return c.originY }

// Attach installs the controller on container, detaching it from any
// previous container first.
func (c *Controller) Attach(container scroll.Container) {
	if container == nil {
		return
	}
	if c.container != nil {
		c.Detach()
	}
	c.container = container
	container.SetAlwaysBounceVertical(true)
	if c.enabled {
		c.reserveInset()
	}
	c.originY = container.Metrics().ContentSize.Height
	container.AddDecoration(c)
	c.unobserve = []func(){
		container.ObserveContentOffset(c.handleOffsetChange),
		container.ObserveContentSize(c.handleSizeChange),
	}
	c.logger.Info("load-more attached",
		zap.String("handle", c.id),
		zap.Float64("height", c.height),
		zap.Bool("enabled", c.enabled),
	)
}

// Detach gives back the reserved bottom inset and releases the container.
// A refreshing controller returns to Idle. No-op when already detached.
func (c *Controller) Detach() {
	container := c.container
	if container == nil {
		return
	}
	for _, stop := range c.unobserve {
		stop()
	}
	c.unobserve = nil
	c.releaseInset()
	container.RemoveDecoration(c)
	c.container = nil

	if c.state == Refreshing {
		c.setState(Idle)
		c.notify("loadmore.Controller.OnEndRefreshing", c.feedback.OnEndRefreshing)
	}
	c.logger.Info("load-more detached", zap.String("handle", c.id))
}

// Begin activates the controller programmatically. No-op unless attached,
// enabled and idle.
func (c *Controller) Begin() {
	if c.container == nil || !c.enabled || c.state != Idle {
		return
	}
	c.activate()
}

// End returns a refreshing controller to Idle. No-op when idle.
func (c *Controller) End() {
	if c.state != Refreshing {
		return
	}
	c.setState(Idle)
	c.notify("loadmore.Controller.OnEndRefreshing", c.feedback.OnEndRefreshing)
}

// SetEnabled shows or hides the footer. Disabling removes the reserved
// height from the bottom inset; enabling adds it back and re-syncs the
// footer origin. The state is never changed.
func (c *Controller) SetEnabled(enabled bool) {
	if enabled == c.enabled {
		return
	}
	c.enabled = enabled
	if c.container != nil {
		if enabled {
			c.reserveInset()
			c.originY = c.container.Metrics().ContentSize.Height
		} else {
			c.releaseInset()
		}
	}
	c.logger.Debug("load-more enabled changed",
		zap.String("handle", c.id),
		zap.Bool("enabled", enabled),
	)
}

// Frame returns the footer rectangle, directly below the content.
func (c *Controller) Frame() graphics.Rect {
	width := 0.0
	if c.container != nil {
		width = c.container.Metrics().ViewportSize.Width
	}
	return graphics.RectFromLTWH(0, c.originY, width, c.height)
}

// IsHidden reports whether the footer is disabled or detached.
func (c *Controller) IsHidden() bool {
	return c.container == nil || !c.enabled
}

// DescribeSemanticsConfiguration implements semantics.SemanticsDescriber.
func (c *Controller) DescribeSemanticsConfiguration(config *semantics.SemanticsConfiguration) bool {
	config.IsSemanticBoundary = true
	config.Properties.Label = "Load more"
	config.Properties.Hint = "Scroll down to load more content"
	config.Properties.Role = semantics.SemanticsRoleFooter
	config.Properties.Value = c.state.String()
	if c.state == Refreshing {
		config.Properties.Flags = config.Properties.Flags.Set(semantics.SemanticsIsBusy)
	}
	if c.IsHidden() {
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

func (c *Controller) handleOffsetChange(change scroll.OffsetChange) {
	if c.container == nil || !c.enabled || c.state == Refreshing {
		return
	}
	m := c.container.Metrics()
	if m.ContentSize.Height <= m.ViewportSize.Height {
		return
	}
	threshold := c.originY - m.ViewportSize.Height + c.baseInsetBottom(m)
	if change.New.Y > threshold && change.New.Y > change.Old.Y {
		c.activate()
	}
}

func (c *Controller) handleSizeChange(change scroll.SizeChange) {
	if !c.enabled {
		return
	}
	c.originY = change.New.Height
}

// baseInsetBottom is the container's bottom inset without this
// controller's own reservation.
func (c *Controller) baseInsetBottom(m scroll.Metrics) float64 {
	if c.insetReserved {
		return m.ContentInset.Bottom - c.height
	}
	return m.ContentInset.Bottom
}

func (c *Controller) activate() {
	c.setState(Refreshing)
	c.notify("loadmore.Controller.OnBeginRefreshing", c.feedback.OnBeginRefreshing)
	c.logger.Debug("load-more triggered", zap.String("handle", c.id))
	errors.Guard("loadmore.Controller.trigger", c.action)
}

func (c *Controller) reserveInset() {
	if c.insetReserved {
		return
	}
	inset := c.container.Metrics().ContentInset
	inset.Bottom += c.height
	c.container.SetContentInset(inset)
	c.insetReserved = true
}

func (c *Controller) releaseInset() {
	if !c.insetReserved {
		return
	}
	inset := c.container.Metrics().ContentInset
	inset.Bottom -= c.height
	c.container.SetContentInset(inset)
	c.insetReserved = false
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	prev := c.state
	c.state = s
	c.logger.Debug("load-more state changed",
		zap.String("handle", c.id),
		zap.Stringer("from", prev),
		zap.Stringer("to", s),
	)
}

func (c *Controller) notify(op string, fn func()) {
	errors.Guard(op, fn)
}
