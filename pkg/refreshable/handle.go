package refreshable

import (
	"github.com/go-drift/refreshable/pkg/loadmore"
	"github.com/go-drift/refreshable/pkg/refresh"
	"github.com/go-drift/refreshable/pkg/scroll"
)

// RefreshHandle refers to one pull-to-refresh attachment. Once the
// controller is detached or replaced the handle is inert: every method is
// a safe no-op.
type RefreshHandle struct {
	id         string
	registry   *Registry
	container  scroll.Container
	controller *refresh.Controller
}

// ID returns the handle's unique ID, as it appears in logs.
func (h *RefreshHandle) ID() string { return h.id }

// IsAttached reports whether the handle still controls its container.
func (h *RefreshHandle) IsAttached() bool {
	return h.controller != nil && h.registry.current(h.container, h.controller)
}

// Start triggers a refresh programmatically.
func (h *RefreshHandle) Start() {
	if h.IsAttached() {
		h.controller.Start()
	}
}

// Stop ends the refresh in progress.
func (h *RefreshHandle) Stop() {
	if h.IsAttached() {
		h.controller.Stop()
	}
}

// Detach removes the controller from its container.
func (h *RefreshHandle) Detach() {
	if h.controller != nil {
		h.registry.detachRefresh(h.container, h.controller)
	}
}

// State returns the controller state, or Idle for an inert handle.
func (h *RefreshHandle) State() refresh.State {
	if !h.IsAttached() {
		return refresh.Idle
	}
	return h.controller.State()
}

// LoadMoreHandle refers to one load-more attachment. It is inert once the
// controller is detached or replaced.
type LoadMoreHandle struct {
	id         string
	registry   *Registry
	container  scroll.Container
	controller *loadmore.Controller
}

// ID returns the handle's unique ID, as it appears in logs.
func (h *LoadMoreHandle) ID() string { return h.id }

// IsAttached reports whether the handle still controls its container.
func (h *LoadMoreHandle) IsAttached() bool {
	return h.controller != nil && h.registry.current(h.container, h.controller)
}

// Start activates load-more programmatically.
func (h *LoadMoreHandle) Start() {
	if h.IsAttached() {
		h.controller.Begin()
	}
}

// Stop ends the load in progress.
func (h *LoadMoreHandle) Stop() {
	if h.IsAttached() {
		h.controller.End()
	}
}

// Detach removes the controller from its container.
func (h *LoadMoreHandle) Detach() {
	if h.controller != nil {
		h.registry.detachLoadMore(h.container, h.controller)
	}
}

// State returns the controller state, or Idle for an inert handle.
func (h *LoadMoreHandle) State() loadmore.State {
	if !h.IsAttached() {
		return loadmore.Idle
	}
	return h.controller.State()
}

// SetEnabled shows or hides the footer.
func (h *LoadMoreHandle) SetEnabled(enabled bool) {
	if h.IsAttached() {
		h.controller.SetEnabled(enabled)
	}
}

// IsEnabled reports whether the footer is enabled. False for an inert handle.
func (h *LoadMoreHandle) IsEnabled() bool {
	return h.IsAttached() && h.controller.IsEnabled()
}
