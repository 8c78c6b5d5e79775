// Package sim replays scenario steps against an in-memory scroll view with
// the refreshable behaviors attached.
package sim

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/go-drift/refreshable/cmd/refreshdemo/internal/config"
	"github.com/go-drift/refreshable/pkg/graphics"
	"github.com/go-drift/refreshable/pkg/indicator"
	"github.com/go-drift/refreshable/pkg/refresh"
	"github.com/go-drift/refreshable/pkg/refreshable"
	refreshtest "github.com/go-drift/refreshable/pkg/testing"
)

// SettleTimeout bounds "settle" steps.
const SettleTimeout = 5 * time.Second

// Event is one observable outcome of a replay.
type Event struct {
	At      time.Duration
	Source  string
	Message string
}

func (e Event) String() string {
	return fmt.Sprintf("[%6dms] %-9s %s", e.At.Milliseconds(), e.Source, e.Message)
}

// Result summarizes a replay.
type Result struct {
	Events           []Event
	RefreshTriggers  int
	LoadMoreTriggers int
	FinalOffset      float64
	FinalInset       graphics.EdgeInsets
}

// Runner replays one scenario.
type Runner struct {
	scenario *config.Scenario
	out      io.Writer
	logger   *zap.Logger

	tester   *refreshtest.ScrollTester
	start    time.Time
	registry *refreshable.Registry
	result   Result
}

// NewRunner prepares a replay. Events are written to out as they happen;
// out may be nil.
func NewRunner(scenario *config.Scenario, out io.Writer, logger *zap.Logger) *Runner {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{scenario: scenario, out: out, logger: logger}
}

// Run executes every step and returns the summary. The fake animation clock
// is installed for the duration of the run.
func (r *Runner) Run() (*Result, error) {
	s := r.scenario
	r.tester = refreshtest.NewScrollTester(graphics.Size{Width: s.Viewport.Width, Height: s.Viewport.Height})
	defer r.tester.Cleanup()
	r.start = r.tester.Clock().Now()

	view := r.tester.View()
	view.SetContentInset(graphics.EdgeInsets{Top: s.Inset.Top, Bottom: s.Inset.Bottom})
	view.SetSafeAreaTop(s.SafeAreaTop)
	view.SetContentSize(graphics.Size{Width: s.Viewport.Width, Height: s.ContentHeight})

	r.registry = refreshable.NewRegistry(refreshable.WithRegistryLogger(r.logger))
	defer r.registry.Teardown(view)
	r.attach()

	for i, step := range s.Steps {
		if err := r.apply(step); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Kind(), err)
		}
	}

	r.result.FinalOffset = view.ContentOffset().Y
	r.result.FinalInset = view.ContentInset()
	return &r.result, nil
}

func (r *Runner) attach() {
	s := r.scenario
	view := r.tester.View()

	if p := s.PullToRefresh; p != nil {
		var ind refresh.Feedback = indicator.NewSpinner()
		if p.Indicator == "text" {
			ind = indicator.NewTextIndicator()
		}
		opts := []refreshable.Option{refreshable.WithFeedback(&refreshRecorder{runner: r, inner: ind})}
		if p.Height > 0 {
			opts = append(opts, refreshable.WithHeight(p.Height))
		}
		if p.Duration > 0 {
			opts = append(opts, refreshable.WithAnimationDuration(p.Duration))
		}
		if p.Boundary == "pulling" {
			opts = append(opts, refreshable.WithIdleBoundary(refresh.PullingAtEdge))
		}
		h := r.registry.AddPullToRefresh(view, func() {
			r.result.RefreshTriggers++
			r.emit("refresh", "action fired")
		}, opts...)
		r.emit("refresh", "attached "+h.ID())
	}

	if l := s.LoadMore; l != nil {
		opts := []refreshable.Option{
			refreshable.WithLoadMoreFeedback(&loadMoreRecorder{runner: r, inner: indicator.NewSpinner()}),
			refreshable.WithEnabled(l.IsEnabled()),
		}
		if l.Height > 0 {
			opts = append(opts, refreshable.WithHeight(l.Height))
		}
		h := r.registry.AddLoadMore(view, func() {
			r.result.LoadMoreTriggers++
			r.emit("load-more", "action fired")
		}, opts...)
		r.emit("load-more", "attached "+h.ID())
	}
}

func (r *Runner) apply(step config.Step) error {
	view := r.tester.View()
	switch step.Kind() {
	case "drag":
		r.tester.DragThrough(step.Drag...)
	case "release":
		r.tester.Release()
	case "scroll":
		r.tester.ScrollThrough(step.Scroll...)
	case "pump":
		r.tester.PumpFor(step.Pump)
	case "settle":
		return r.tester.PumpAndSettle(SettleTimeout)
	case "start_refresh":
		r.registry.StartPullToRefresh(view)
	case "stop_refresh":
		r.registry.StopPullToRefresh(view)
	case "start_load_more":
		r.registry.StartLoadMore(view)
	case "stop_load_more":
		r.registry.StopLoadMore(view)
	case "content_height":
		view.SetContentSize(graphics.Size{Width: view.Metrics().ViewportSize.Width, Height: step.ContentHeight})
		r.emit("view", fmt.Sprintf("content height %g", step.ContentHeight))
	case "enable_load_more":
		r.registry.SetLoadMoreEnabled(view, *step.EnableLoadMore)
		r.emit("load-more", fmt.Sprintf("enabled=%t", r.registry.IsLoadMoreEnabled(view)))
	default:
		return fmt.Errorf("unsupported step")
	}
	return nil
}

func (r *Runner) emit(source, message string) {
	e := Event{
		At:      r.tester.Clock().Now().Sub(r.start),
		Source:  source,
		Message: message,
	}
	r.result.Events = append(r.result.Events, e)
	fmt.Fprintln(r.out, e)
}

func (r *Runner) geometry() string {
	m := r.tester.View().Metrics()
	return fmt.Sprintf("(offset %g, inset %g/%g)", m.ContentOffset.Y, m.ContentInset.Top, m.ContentInset.Bottom)
}

// refreshRecorder reports lifecycle callbacks before forwarding them to the
// real indicator.
type refreshRecorder struct {
	runner *Runner
	inner  refresh.Feedback
}

func (f *refreshRecorder) OnStateChange(s refresh.State) {
	f.inner.OnStateChange(s)
	msg := "state " + s.String()
	if ti, ok := f.inner.(*indicator.TextIndicator); ok && ti.Visible() {
		msg += fmt.Sprintf(" %q", ti.Title())
	}
	f.runner.emit("refresh", msg+" "+f.runner.geometry())
}

func (f *refreshRecorder) OnAnimationStart() {
	f.inner.OnAnimationStart()
	f.runner.emit("refresh", "indicator spinning")
}

func (f *refreshRecorder) OnAnimationEnd() {
	f.inner.OnAnimationEnd()
	f.runner.emit("refresh", "indicator hidden")
}

type loadMoreRecorder struct {
	runner *Runner
	inner  *indicator.Spinner
}

func (f *loadMoreRecorder) OnBeginRefreshing() {
	f.inner.OnBeginRefreshing()
	f.runner.emit("load-more", "refreshing "+f.runner.geometry())
}

func (f *loadMoreRecorder) OnEndRefreshing() {
	f.inner.OnEndRefreshing()
	f.runner.emit("load-more", "idle")
}

func (f *loadMoreRecorder) PreferredHeight() float64 {
	return f.inner.PreferredHeight()
}
