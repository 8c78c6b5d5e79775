package refreshable

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/go-drift/refreshable/pkg/errors"
	"github.com/go-drift/refreshable/pkg/loadmore"
	"github.com/go-drift/refreshable/pkg/refresh"
)

// Option configures a controller created by AddPullToRefresh or AddLoadMore.
// Options that do not apply to the controller kind are ignored.
type Option func(*options)

type options struct {
	height           float64
	duration         time.Duration
	boundary         refresh.IdleBoundary
	refreshFeedback  refresh.Feedback
	loadMoreFeedback loadmore.Feedback
	disabled         bool
	logger           *zap.Logger
	invalid          []error
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithHeight sets the indicator (or footer) height. Non-positive heights are
// reported as configuration errors and the default is used.
func WithHeight(height float64) Option {
	return func(o *options) {
		if height <= 0 {
			o.invalid = append(o.invalid, fmt.Errorf("height must be positive, got %v", height))
			return
		}
		o.height = height
	}
}

// WithAnimationDuration sets the pull-to-refresh reveal and conceal duration.
func WithAnimationDuration(d time.Duration) Option {
	return func(o *options) {
		if d <= 0 {
			o.invalid = append(o.invalid, fmt.Errorf("animation duration must be positive, got %v", d))
			return
		}
		o.duration = d
	}
}

// WithIdleBoundary selects how pull-to-refresh classifies the exact top edge.
func WithIdleBoundary(b refresh.IdleBoundary) Option {
	return func(o *options) { o.boundary = b }
}

// WithFeedback replaces the default pull-to-refresh spinner.
func WithFeedback(f refresh.Feedback) Option {
	return func(o *options) { o.refreshFeedback = f }
}

// WithLoadMoreFeedback replaces the default load-more spinner.
func WithLoadMoreFeedback(f loadmore.Feedback) Option {
	return func(o *options) { o.loadMoreFeedback = f }
}

// WithEnabled sets the initial load-more enabled flag. Defaults to true.
func WithEnabled(enabled bool) Option {
	return func(o *options) { o.disabled = !enabled }
}

// WithLogger overrides the registry logger for one controller.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func (o *options) report(op, handle string) {
	for _, err := range o.invalid {
		errors.Report(&errors.Error{
			Op:         op,
			Kind:       errors.KindConfig,
			Err:        err,
			Handle:     handle,
			StackTrace: errors.CaptureStack(),
		})
	}
}
