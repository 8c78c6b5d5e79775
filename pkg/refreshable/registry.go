package refreshable

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/go-drift/refreshable/pkg/errors"
	"github.com/go-drift/refreshable/pkg/indicator"
	"github.com/go-drift/refreshable/pkg/loadmore"
	"github.com/go-drift/refreshable/pkg/refresh"
	"github.com/go-drift/refreshable/pkg/scroll"
)

// Registry is the side table associating scroll containers with their
// controllers. It owns the controllers; controllers only borrow the
// container. A container has at most one controller of each kind.
//
// The lock guards the tables only. Controllers are driven outside it, so
// callbacks may call back into the registry.
type Registry struct {
	mu         sync.Mutex
	refreshers map[scroll.Container]*refresh.Controller
	loaders    map[scroll.Container]*loadmore.Controller
	logger     *zap.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger handed to controllers.
func WithRegistryLogger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		refreshers: make(map[scroll.Container]*refresh.Controller),
		loaders:    make(map[scroll.Container]*loadmore.Controller),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the registry used by the package-level functions.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// AddPullToRefresh attaches a pull-to-refresh controller to container,
// replacing any existing one. action runs once per refresh; call
// StopPullToRefresh (or RefreshHandle.Stop) when the refresh completes.
func (r *Registry) AddPullToRefresh(container scroll.Container, action func(), opts ...Option) *RefreshHandle {
	id := uuid.NewString()
	o := buildOptions(opts)
	o.report("refreshable.AddPullToRefresh", id)
	if container == nil {
		reportNilContainer("refreshable.AddPullToRefresh", id)
		return &RefreshHandle{id: id}
	}

	feedback := o.refreshFeedback
	if feedback == nil {
		feedback = indicator.NewSpinner()
	}
	controller := refresh.NewController(action, refresh.Config{
		Height:            o.height,
		AnimationDuration: o.duration,
		Boundary:          o.boundary,
		Feedback:          feedback,
		Logger:            r.loggerFor(o),
		ID:                id,
	})

	r.RemovePullToRefresh(container)
	r.mu.Lock()
	r.refreshers[container] = controller
	r.mu.Unlock()
	controller.Attach(container)

	return &RefreshHandle{id: id, registry: r, container: container, controller: controller}
}

// AddLoadMore attaches a load-more controller to container, replacing any
// existing one. action runs once per activation; call StopLoadMore (or
// LoadMoreHandle.Stop) when the page has loaded.
func (r *Registry) AddLoadMore(container scroll.Container, action func(), opts ...Option) *LoadMoreHandle {
	id := uuid.NewString()
	o := buildOptions(opts)
	o.report("refreshable.AddLoadMore", id)
	if container == nil {
		reportNilContainer("refreshable.AddLoadMore", id)
		return &LoadMoreHandle{id: id}
	}

	feedback := o.loadMoreFeedback
	if feedback == nil {
		feedback = indicator.NewSpinner()
	}
	controller := loadmore.NewController(action, loadmore.Config{
		Height:   o.height,
		Disabled: o.disabled,
		Feedback: feedback,
		Logger:   r.loggerFor(o),
		ID:       id,
	})

	r.RemoveLoadMore(container)
	r.mu.Lock()
	r.loaders[container] = controller
	r.mu.Unlock()
	controller.Attach(container)

	return &LoadMoreHandle{id: id, registry: r, container: container, controller: controller}
}

// PullToRefresh returns the controller attached to container, if any.
func (r *Registry) PullToRefresh(container scroll.Container) *refresh.Controller {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshers[container]
}

// LoadMore returns the load-more controller attached to container, if any.
func (r *Registry) LoadMore(container scroll.Container) *loadmore.Controller {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loaders[container]
}

// StartPullToRefresh triggers a refresh programmatically.
func (r *Registry) StartPullToRefresh(container scroll.Container) {
	if c := r.PullToRefresh(container); c != nil {
		c.Start()
	}
}

// StopPullToRefresh ends the refresh in progress.
func (r *Registry) StopPullToRefresh(container scroll.Container) {
	if c := r.PullToRefresh(container); c != nil {
		c.Stop()
	}
}

// RemovePullToRefresh detaches and forgets the pull-to-refresh controller.
func (r *Registry) RemovePullToRefresh(container scroll.Container) {
	r.detachRefresh(container, nil)
}

// StartLoadMore activates load-more programmatically.
func (r *Registry) StartLoadMore(container scroll.Container) {
	if c := r.LoadMore(container); c != nil {
		c.Begin()
	}
}

// StopLoadMore ends the load in progress.
func (r *Registry) StopLoadMore(container scroll.Container) {
	if c := r.LoadMore(container); c != nil {
		c.End()
	}
}

// SetLoadMoreEnabled shows or hides the load-more footer.
func (r *Registry) SetLoadMoreEnabled(container scroll.Container, enabled bool) {
	if c := r.LoadMore(container); c != nil {
		c.SetEnabled(enabled)
	}
}

// IsLoadMoreEnabled reports whether container has an enabled load-more
// controller. It is false when none is attached.
func (r *Registry) IsLoadMoreEnabled(container scroll.Container) bool {
	c := r.LoadMore(container)
	return c != nil && c.IsEnabled()
}

// RemoveLoadMore detaches and forgets the load-more controller.
func (r *Registry) RemoveLoadMore(container scroll.Container) {
	r.detachLoadMore(container, nil)
}

// Teardown releases every controller attached to container. Call it when
// the container goes away.
func (r *Registry) Teardown(container scroll.Container) {
	r.RemovePullToRefresh(container)
	r.RemoveLoadMore(container)
}

// Len returns the number of attached controllers of both kinds.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.refreshers) + len(r.loaders)
}

// detachRefresh removes the entry for container. A non-nil only restricts
// removal to that controller, so stale handles cannot detach a replacement.
func (r *Registry) detachRefresh(container scroll.Container, only *refresh.Controller) {
	r.mu.Lock()
	c, ok := r.refreshers[container]
	if !ok || (only != nil && c != only) {
		r.mu.Unlock()
		return
	}
	delete(r.refreshers, container)
	r.mu.Unlock()
	c.Detach()
}

func (r *Registry) detachLoadMore(container scroll.Container, only *loadmore.Controller) {
	r.mu.Lock()
	c, ok := r.loaders[container]
	if !ok || (only != nil && c != only) {
		r.mu.Unlock()
		return
	}
	delete(r.loaders, container)
	r.mu.Unlock()
	c.Detach()
}

func (r *Registry) current(container scroll.Container, c any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch c := c.(type) {
	case *refresh.Controller:
		return r.refreshers[container] == c
	case *loadmore.Controller:
		return r.loaders[container] == c
	}
	return false
}

func (r *Registry) loggerFor(o *options) *zap.Logger {
	if o.logger != nil {
		return o.logger
	}
	return r.logger
}

func reportNilContainer(op, handle string) {
	errors.Report(&errors.Error{
		Op:         op,
		Kind:       errors.KindAttach,
		Err:        errors.ErrNilContainer,
		Handle:     handle,
		StackTrace: errors.CaptureStack(),
	})
}
