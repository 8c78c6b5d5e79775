// Package refreshable attaches pull-to-refresh and load-more behavior to
// scroll containers.
//
// Attach a behavior, then stop it once the work completes:
//
//	refreshable.AddPullToRefresh(view, func() {
//		go fetch(func() {
//			ui.Dispatch(func() { refreshable.StopPullToRefresh(view) })
//		})
//	})
//
// Controllers are driven by offset notifications on the UI thread; every
// function here must be called from that thread too. The package-level
// functions operate on [Default]. Call [Teardown] when a container is
// discarded.
package refreshable

import "github.com/go-drift/refreshable/pkg/scroll"

// AddPullToRefresh attaches pull-to-refresh to container using the default
// registry.
func AddPullToRefresh(container scroll.Container, action func(), opts ...Option) *RefreshHandle {
	return Default().AddPullToRefresh(container, action, opts...)
}

// AddLoadMore attaches load-more to container using the default registry.
func AddLoadMore(container scroll.Container, action func(), opts ...Option) *LoadMoreHandle {
	return Default().AddLoadMore(container, action, opts...)
}

// StartPullToRefresh triggers a refresh on container programmatically.
func StartPullToRefresh(container scroll.Container) {
	Default().StartPullToRefresh(container)
}

// StopPullToRefresh ends the refresh in progress on container.
func StopPullToRefresh(container scroll.Container) {
	Default().StopPullToRefresh(container)
}

// RemovePullToRefresh detaches pull-to-refresh from container.
func RemovePullToRefresh(container scroll.Container) {
	Default().RemovePullToRefresh(container)
}

// StartLoadMore activates load-more on container programmatically.
func StartLoadMore(container scroll.Container) {
	Default().StartLoadMore(container)
}

// StopLoadMore ends the load in progress on container.
func StopLoadMore(container scroll.Container) {
	Default().StopLoadMore(container)
}

// RemoveLoadMore detaches load-more from container.
func RemoveLoadMore(container scroll.Container) {
	Default().RemoveLoadMore(container)
}

// SetLoadMoreEnabled shows or hides the load-more footer of container.
func SetLoadMoreEnabled(container scroll.Container, enabled bool) {
	Default().SetLoadMoreEnabled(container, enabled)
}

// IsLoadMoreEnabled reports whether container has an enabled load-more
// controller.
func IsLoadMoreEnabled(container scroll.Container) bool {
	return Default().IsLoadMoreEnabled(container)
}

// Teardown releases every controller attached to container.
func Teardown(container scroll.Container) {
	Default().Teardown(container)
}
