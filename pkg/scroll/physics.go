package scroll

// Physics determines how user drag deltas map onto offset changes.
type Physics interface {
	// ApplyPhysicsToUserOffset adjusts a drag delta given the view's state.
	ApplyPhysicsToUserOffset(view *View, delta float64) float64
	// AllowsOverscroll reports whether offsets may leave the scroll extents.
	AllowsOverscroll() bool
}

// ClampingPhysics stops at the edges with no overscroll (Android default).
type ClampingPhysics struct{}

// ApplyPhysicsToUserOffset returns the raw delta.
func (ClampingPhysics) ApplyPhysicsToUserOffset(_ *View, delta float64) float64 {
	return delta
}

// AllowsOverscroll returns false.
func (ClampingPhysics) AllowsOverscroll() bool { return false }

// BouncingPhysics adds rubber-band resistance past the edges (iOS default).
type BouncingPhysics struct{}

// ApplyPhysicsToUserOffset reduces the delta progressively while overscrolled.
func (BouncingPhysics) ApplyPhysicsToUserOffset(view *View, delta float64) float64 {
	min, max := view.MinOffset(), view.MaxOffset()
	offset := view.offset.Y
	if (offset <= min && delta < 0) || (offset >= max && delta > 0) {
		overscroll := 0.0
		if offset < min {
			overscroll = min - offset
		} else if offset > max {
			overscroll = offset - max
		}
		fraction := overscroll / view.viewportExtent()
		resistance := 1.0 / (1.0 + 2.4*fraction)
		if resistance < 0.12 {
			resistance = 0.12
		}
		return delta * resistance
	}
	return delta
}

// AllowsOverscroll returns true.
func (BouncingPhysics) AllowsOverscroll() bool { return true }
