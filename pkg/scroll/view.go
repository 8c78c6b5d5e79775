package scroll

import (
	"slices"
	"time"

	"github.com/go-drift/refreshable/pkg/animation"
	"github.com/go-drift/refreshable/pkg/graphics"
)

// DefaultSettleDuration is how long an overscrolled view takes to spring
// back to its extents after the finger lifts.
const DefaultSettleDuration = 400 * time.Millisecond

// View is an in-memory vertical scroll container.
//
// View tracks content offset, size and inset, reports a dragging flag, and
// springs back to its scroll extents when a drag ends past an edge. It is
// the reference [Container] used by tests, the demo CLI and hosts that drive
// geometry themselves.
//
// View is not safe for concurrent use; like the rest of the UI it is owned
// by a single thread.
type View struct {
	// Physics controls drag resistance and overscroll. Defaults to
	// BouncingPhysics.
	Physics Physics
	// SettleDuration is the spring-back duration. Defaults to
	// DefaultSettleDuration.
	SettleDuration time.Duration

	offset        graphics.Offset
	contentSize   graphics.Size
	inset         graphics.EdgeInsets
	viewport      graphics.Size
	safeAreaTop   float64
	dragging      bool
	alwaysBounce  bool
	decorations   []Decoration
	settle        *animation.AnimationController
	offsetObs     map[int]func(OffsetChange)
	sizeObs       map[int]func(SizeChange)
	nextObserveID int
}

// NewView creates a view with the given viewport size, at rest at offset zero.
func NewView(viewport graphics.Size) *View {
	return &View{
		Physics:        BouncingPhysics{},
		SettleDuration: DefaultSettleDuration,
		viewport:       viewport,
		offsetObs:      make(map[int]func(OffsetChange)),
		sizeObs:        make(map[int]func(SizeChange)),
	}
}

// Metrics returns the current scroll geometry.
func (v *View) Metrics() Metrics {
	return Metrics{
		ContentOffset:    v.offset,
		ContentSize:      v.contentSize,
		ContentInset:     v.inset,
		ViewportSize:     v.viewport,
		IsDragging:       v.dragging,
		AdjustedInsetTop: v.safeAreaTop,
	}
}

// ContentOffset returns the current content offset.
func (v *View) ContentOffset() graphics.Offset {
	return v.offset
}

// ContentInset returns the current content inset.
func (v *View) ContentInset() graphics.EdgeInsets {
	return v.inset
}

// SetContentInset replaces the content inset. It does not move the content
// and does not notify offset observers.
func (v *View) SetContentInset(inset graphics.EdgeInsets) {
	v.inset = inset
}

// SetContentOffset moves the content programmatically, cancelling any
// spring-back in progress.
func (v *View) SetContentOffset(offset graphics.Offset) {
	v.stopSettle()
	v.setOffset(offset)
}

// SetContentSize updates the content size and notifies size observers.
func (v *View) SetContentSize(size graphics.Size) {
	if size == v.contentSize {
		return
	}
	change := SizeChange{Old: v.contentSize, New: size}
	v.contentSize = size
	for _, id := range sortedKeys(v.sizeObs) {
		if fn, ok := v.sizeObs[id]; ok {
			fn(change)
		}
	}
}

// SetViewportSize updates the viewport size.
func (v *View) SetViewportSize(size graphics.Size) {
	v.viewport = size
}

// SetSafeAreaTop sets the platform safe-area addition to the top inset.
func (v *View) SetSafeAreaTop(top float64) {
	v.safeAreaTop = top
}

// SetAlwaysBounceVertical allows overscroll even for short content.
func (v *View) SetAlwaysBounceVertical(enabled bool) {
	v.alwaysBounce = enabled
}

// AlwaysBounceVertical reports whether short content may overscroll.
func (v *View) AlwaysBounceVertical() bool {
	return v.alwaysBounce
}

// IsDragging reports whether a drag is in progress.
func (v *View) IsDragging() bool {
	return v.dragging
}

// IsSettling reports whether the view is springing back to its extents.
func (v *View) IsSettling() bool {
	return v.settle != nil && v.settle.IsAnimating()
}

// MinOffset returns the resting offset at the top edge.
func (v *View) MinOffset() float64 {
	return -(v.inset.Top + v.safeAreaTop)
}

// MaxOffset returns the resting offset at the bottom edge.
func (v *View) MaxOffset() float64 {
	min := v.MinOffset()
	max := v.contentSize.Height + v.inset.Bottom - v.viewport.Height
	if max < min {
		return min
	}
	return max
}

// ObserveContentOffset registers fn for content offset changes.
// Returns an unsubscribe function.
func (v *View) ObserveContentOffset(fn func(OffsetChange)) func() {
	if fn == nil {
		return func() {}
	}
	id := v.nextObserveID
	v.nextObserveID++
	v.offsetObs[id] = fn
	return func() {
		delete(v.offsetObs, id)
	}
}

// ObserveContentSize registers fn for content size changes.
// Returns an unsubscribe function.
func (v *View) ObserveContentSize(fn func(SizeChange)) func() {
	if fn == nil {
		return func() {}
	}
	id := v.nextObserveID
	v.nextObserveID++
	v.sizeObs[id] = fn
	return func() {
		delete(v.sizeObs, id)
	}
}

// ObserverCount returns the number of live offset and size observations.
func (v *View) ObserverCount() int {
	return len(v.offsetObs) + len(v.sizeObs)
}

// AddDecoration inserts a decoration. Adding the same decoration twice is a no-op.
func (v *View) AddDecoration(d Decoration) {
	if d == nil || slices.Contains(v.decorations, d) {
		return
	}
	v.decorations = append(v.decorations, d)
}

// RemoveDecoration removes a decoration if present.
func (v *View) RemoveDecoration(d Decoration) {
	for i, existing := range v.decorations {
		if existing == d {
			v.decorations = slices.Delete(v.decorations, i, i+1)
			return
		}
	}
}

// Decorations returns the inserted decorations in insertion order.
func (v *View) Decorations() []Decoration {
	return slices.Clone(v.decorations)
}

// VisibleDecorations returns non-hidden decorations intersecting the viewport.
func (v *View) VisibleDecorations() []Decoration {
	visible := graphics.RectFromLTWH(0, v.offset.Y, v.viewport.Width, v.viewport.Height)
	var out []Decoration
	for _, d := range v.decorations {
		if d.IsHidden() {
			continue
		}
		if d.Frame().Overlaps(visible) {
			out = append(out, d)
		}
	}
	return out
}

// BeginDrag starts a user drag, halting any spring-back.
func (v *View) BeginDrag() {
	v.stopSettle()
	v.dragging = true
}

// DragBy applies a finger movement. A positive delta scrolls content up
// (offset increases); physics add resistance past the edges.
func (v *View) DragBy(delta float64) {
	if !v.dragging {
		v.BeginDrag()
	}
	adjusted := delta
	if v.Physics != nil {
		adjusted = v.Physics.ApplyPhysicsToUserOffset(v, delta)
	}
	v.setOffset(graphics.Offset{X: v.offset.X, Y: v.clampOffset(v.offset.Y + adjusted)})
}

// DragTo moves the content to y as the finger dictates, without resistance.
func (v *View) DragTo(y float64) {
	if !v.dragging {
		v.BeginDrag()
	}
	v.setOffset(graphics.Offset{X: v.offset.X, Y: v.clampOffset(y)})
}

// EndDrag lifts the finger. Observers are notified of the drag state change
// with an unchanged offset, then an overscrolled view springs back.
func (v *View) EndDrag() {
	if !v.dragging {
		return
	}
	v.dragging = false
	v.notifyOffset(OffsetChange{Old: v.offset, New: v.offset})
	if v.dragging {
		return
	}
	v.startSettle()
}

func (v *View) allowsOverscroll() bool {
	if v.Physics != nil && !v.Physics.AllowsOverscroll() {
		return false
	}
	return v.alwaysBounce || v.contentSize.Height+v.inset.Vertical() > v.viewport.Height
}

func (v *View) clampOffset(y float64) float64 {
	min, max := v.MinOffset(), v.MaxOffset()
	if !v.allowsOverscroll() {
		return graphics.Clamp(y, min, max)
	}
	limit := graphics.Clamp(v.viewportExtent()*0.35, 80, 220)
	return graphics.Clamp(y, min-limit, max+limit)
}

func (v *View) viewportExtent() float64 {
	if v.viewport.Height > 0 {
		return v.viewport.Height
	}
	return 600
}

func (v *View) setOffset(offset graphics.Offset) {
	if offset == v.offset {
		return
	}
	change := OffsetChange{Old: v.offset, New: offset}
	v.offset = offset
	v.notifyOffset(change)
}

func (v *View) notifyOffset(change OffsetChange) {
	for _, id := range sortedKeys(v.offsetObs) {
		if fn, ok := v.offsetObs[id]; ok {
			fn(change)
		}
	}
}

func (v *View) startSettle() {
	target := graphics.Clamp(v.offset.Y, v.MinOffset(), v.MaxOffset())
	if graphics.FloatEqual(target, v.offset.Y) {
		return
	}
	v.stopSettle()
	from := v.offset
	tween := animation.TweenOffset(from, graphics.Offset{X: from.X, Y: target})
	settle := animation.NewAnimationController(v.SettleDuration)
	settle.Curve = animation.EaseOut
	settle.AddListener(func() {
		v.setOffset(tween.Transform(settle))
	})
	settle.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationCompleted && v.settle == settle {
			settle.Dispose()
			v.settle = nil
		}
	})
	v.settle = settle
	settle.Forward()
}

func (v *View) stopSettle() {
	if v.settle == nil {
		return
	}
	v.settle.Dispose()
	v.settle = nil
}

// sortedKeys returns observer IDs in registration order so notifications
// are delivered deterministically.
func sortedKeys[T any](m map[int]T) []int {
	keys := make([]int, 0, len(m))
	for id := range m {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	return keys
}
