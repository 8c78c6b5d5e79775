// Package scroll defines the boundary between edge controllers and the host
// scroll container, and provides [View], an in-memory container with drag,
// overscroll and settle behavior.
//
// # Observation
//
// Controllers subscribe to content offset and content size changes through
// [Container.ObserveContentOffset] and [Container.ObserveContentSize]. Both
// return an unsubscribe function; callers must invoke it on detach so no
// observation outlives the controller. Notifications are delivered
// synchronously, in mutation order, on the UI thread.
//
// # Ownership
//
// A controller holds a non-owning reference to its container and must never
// be its sole owner. Implementations must be comparable (pointer types):
// the attachment facade keys its side tables on container identity.
package scroll

import "github.com/go-drift/refreshable/pkg/graphics"

// Metrics is a snapshot of the host container's scroll geometry.
type Metrics struct {
	ContentOffset graphics.Offset
	ContentSize   graphics.Size
	ContentInset  graphics.EdgeInsets
	ViewportSize  graphics.Size
	IsDragging    bool
	// AdjustedInsetTop is the platform safe-area addition on top of
	// ContentInset.Top. Zero when the platform has none.
	AdjustedInsetTop float64
}

// AdjustedTop returns the effective top inset including the safe area.
func (m Metrics) AdjustedTop() float64 {
	return m.ContentInset.Top + m.AdjustedInsetTop
}

// OffsetChange carries the previous and current content offset.
type OffsetChange struct {
	Old graphics.Offset
	New graphics.Offset
}

// SizeChange carries the previous and current content size.
type SizeChange struct {
	Old graphics.Size
	New graphics.Size
}

// Decoration is a view inserted into the container outside its content,
// such as a refresh header or a load-more footer.
type Decoration interface {
	// Frame returns the decoration's rectangle in content coordinates.
	Frame() graphics.Rect
	// IsHidden reports whether the decoration is collapsed.
	IsHidden() bool
}

// Container is the host scroll container an edge controller attaches to.
type Container interface {
	Metrics() Metrics
	SetContentInset(inset graphics.EdgeInsets)
	SetContentOffset(offset graphics.Offset)
	// SetAlwaysBounceVertical allows vertical overscroll even when the
	// content is shorter than the viewport.
	SetAlwaysBounceVertical(enabled bool)
	ObserveContentOffset(fn func(OffsetChange)) func()
	ObserveContentSize(fn func(SizeChange)) func()
	AddDecoration(d Decoration)
	RemoveDecoration(d Decoration)
}
