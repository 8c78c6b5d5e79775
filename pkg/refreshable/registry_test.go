package refreshable

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/go-drift/refreshable/pkg/errors"
	"github.com/go-drift/refreshable/pkg/graphics"
	"github.com/go-drift/refreshable/pkg/indicator"
	"github.com/go-drift/refreshable/pkg/loadmore"
	"github.com/go-drift/refreshable/pkg/refresh"
	"github.com/go-drift/refreshable/pkg/scroll"
	refreshtest "github.com/go-drift/refreshable/pkg/testing"
)

func newTester(t *testing.T) *refreshtest.ScrollTester {
	t.Helper()
	tester := refreshtest.NewScrollTesterWithT(t, graphics.Size{Width: 320, Height: 568})
	tester.View().SetContentSize(graphics.Size{Width: 320, Height: 1000})
	return tester
}

func settle(t *testing.T, tester *refreshtest.ScrollTester) {
	t.Helper()
	if err := tester.PumpAndSettle(2 * time.Second); err != nil {
		t.Fatal(err)
	}
}

type reports struct {
	errs   []*errors.Error
	panics []*errors.PanicError
}

func (r *reports) HandleError(err *errors.Error)      { r.errs = append(r.errs, err) }
func (r *reports) HandlePanic(err *errors.PanicError) { r.panics = append(r.panics, err) }

func captureReports(t *testing.T) *reports {
	t.Helper()
	r := &reports{}
	old := errors.DefaultHandler
	errors.SetHandler(r)
	t.Cleanup(func() { errors.SetHandler(old) })
	return r
}

func TestAddPullToRefreshReplacesExisting(t *testing.T) {
	tester := newTester(t)
	view := tester.View()
	r := NewRegistry()

	var calls []string
	first := r.AddPullToRefresh(view, func() { calls = append(calls, "first") })
	second := r.AddPullToRefresh(view, func() { calls = append(calls, "second") })

	if first.IsAttached() || !second.IsAttached() {
		t.Fatalf("attached: first=%v second=%v", first.IsAttached(), second.IsAttached())
	}
	if first.ID() == second.ID() || first.ID() == "" {
		t.Errorf("handle IDs not unique: %q %q", first.ID(), second.ID())
	}
	if view.ObserverCount() != 1 || len(view.Decorations()) != 1 {
		t.Errorf("observers = %d decorations = %d, want 1/1", view.ObserverCount(), len(view.Decorations()))
	}

	first.Start()
	first.Detach()
	if !second.IsAttached() {
		t.Fatal("stale handle detached its replacement")
	}

	tester.DragThrough(-20, -80)
	tester.Release()
	settle(t, tester)
	if diff := cmp.Diff([]string{"second"}, calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if second.State() != refresh.Loading {
		t.Errorf("state = %v, want loading", second.State())
	}

	r.StopPullToRefresh(view)
	settle(t, tester)
	if second.State() != refresh.Idle || view.ContentInset().Top != 0 {
		t.Errorf("after stop: state = %v inset = %v", second.State(), view.ContentInset().Top)
	}
}

func TestDetachedHandlesAreInert(t *testing.T) {
	tester := newTester(t)
	view := tester.View()
	r := NewRegistry()

	calls := 0
	ptr := r.AddPullToRefresh(view, func() { calls++ })
	lm := r.AddLoadMore(view, func() { calls++ })
	ptr.Detach()
	lm.Detach()

	ptr.Start()
	ptr.Stop()
	ptr.Detach()
	lm.Start()
	lm.Stop()
	lm.SetEnabled(true)
	lm.Detach()
	settle(t, tester)

	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
	if ptr.State() != refresh.Idle || lm.State() != loadmore.Idle || lm.IsEnabled() {
		t.Errorf("inert handle state: %v %v %v", ptr.State(), lm.State(), lm.IsEnabled())
	}
	if r.Len() != 0 || view.ObserverCount() != 0 || len(view.Decorations()) != 0 {
		t.Errorf("leaked: len=%d observers=%d decorations=%d", r.Len(), view.ObserverCount(), len(view.Decorations()))
	}
	if view.ContentInset() != (graphics.EdgeInsets{}) {
		t.Errorf("inset = %+v, want zero", view.ContentInset())
	}
}

func TestNilContainerIsReported(t *testing.T) {
	rep := captureReports(t)
	r := NewRegistry()

	ptr := r.AddPullToRefresh(nil, func() {})
	lm := r.AddLoadMore(nil, func() {})
	ptr.Start()
	lm.Start()

	if len(rep.errs) != 2 {
		t.Fatalf("reported %d errors, want 2", len(rep.errs))
	}
	for _, err := range rep.errs {
		if err.Kind != errors.KindAttach || err.Err != errors.ErrNilContainer {
			t.Errorf("reported %v", err)
		}
	}
	if rep.errs[0].Handle != ptr.ID() || rep.errs[1].Handle != lm.ID() {
		t.Error("reported errors do not name the handles")
	}
	if ptr.IsAttached() || lm.IsAttached() || r.Len() != 0 {
		t.Error("nil container produced a live handle")
	}
}

func TestInvalidOptionsAreReported(t *testing.T) {
	rep := captureReports(t)
	tester := newTester(t)
	r := NewRegistry()

	h := r.AddLoadMore(tester.View(), nil, WithHeight(-4), WithAnimationDuration(0))
	if len(rep.errs) != 2 {
		t.Fatalf("reported %d errors, want 2", len(rep.errs))
	}
	for _, err := range rep.errs {
		if err.Kind != errors.KindConfig || err.Handle != h.ID() {
			t.Errorf("reported %v", err)
		}
	}
	if got := tester.View().ContentInset().Bottom; got != indicator.DefaultHeight {
		t.Errorf("bottom inset = %v, want default %v", got, indicator.DefaultHeight)
	}
}

func TestLoadMoreEnabled(t *testing.T) {
	tester := newTester(t)
	view := tester.View()
	other := scroll.NewView(graphics.Size{Width: 320, Height: 568})
	r := NewRegistry()

	if r.IsLoadMoreEnabled(view) {
		t.Error("enabled with nothing attached")
	}
	h := r.AddLoadMore(view, func() {}, WithHeight(30))
	if !r.IsLoadMoreEnabled(view) || r.IsLoadMoreEnabled(other) {
		t.Error("enabled flag not scoped to the container")
	}
	if got := view.ContentInset().Bottom; got != 30 {
		t.Errorf("bottom inset = %v, want 30", got)
	}

	r.SetLoadMoreEnabled(view, false)
	r.SetLoadMoreEnabled(other, true)
	if r.IsLoadMoreEnabled(view) || h.IsEnabled() || view.ContentInset().Bottom != 0 {
		t.Errorf("disable failed: bottom inset = %v", view.ContentInset().Bottom)
	}
	h.SetEnabled(true)
	if !r.IsLoadMoreEnabled(view) || view.ContentInset().Bottom != 30 {
		t.Errorf("enable failed: bottom inset = %v", view.ContentInset().Bottom)
	}

	disabled := r.AddLoadMore(view, func() {}, WithEnabled(false))
	if disabled.IsEnabled() || h.IsAttached() || view.ContentInset().Bottom != 0 {
		t.Errorf("replacement: enabled=%v old attached=%v inset=%v", disabled.IsEnabled(), h.IsAttached(), view.ContentInset().Bottom)
	}
}

func TestLoadMoreActionMayCallRegistry(t *testing.T) {
	tester := newTester(t)
	view := tester.View()
	r := NewRegistry()

	calls := 0
	h := r.AddLoadMore(view, func() {
		calls++
		r.StopLoadMore(view)
	})
	tester.ScrollThrough(400, 450)
	if calls != 1 || h.State() != loadmore.Idle {
		t.Errorf("calls = %d state = %v, want 1/idle", calls, h.State())
	}
	r.StartLoadMore(view)
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestTeardown(t *testing.T) {
	tester := newTester(t)
	view := tester.View()
	view.SetContentInset(graphics.EdgeInsets{Top: 5, Bottom: 9})
	r := NewRegistry()

	ptr := r.AddPullToRefresh(view, func() {})
	lm := r.AddLoadMore(view, func() {})
	ptr.Start()
	settle(t, tester)
	lm.Start()

	r.Teardown(view)
	r.Teardown(view)

	if r.Len() != 0 || view.ObserverCount() != 0 || len(view.Decorations()) != 0 {
		t.Errorf("leaked: len=%d observers=%d decorations=%d", r.Len(), view.ObserverCount(), len(view.Decorations()))
	}
	if diff := cmp.Diff(graphics.EdgeInsets{Top: 5, Bottom: 9}, view.ContentInset()); diff != "" {
		t.Errorf("inset mismatch (-want +got):\n%s", diff)
	}
	if ptr.IsAttached() || lm.IsAttached() {
		t.Error("handles still attached after teardown")
	}
}

func TestOptionsReachController(t *testing.T) {
	tester := newTester(t)
	view := tester.View()
	r := NewRegistry()

	var states []refresh.State
	r.AddPullToRefresh(view, func() {},
		WithHeight(80),
		WithAnimationDuration(50*time.Millisecond),
		WithFeedback(refresh.FeedbackFuncs{StateChange: func(s refresh.State) { states = append(states, s) }}),
	)
	c := r.PullToRefresh(view)
	if c.Height() != 80 {
		t.Errorf("height = %v, want 80", c.Height())
	}
	tester.DragThrough(-70)
	tester.Release()
	settle(t, tester)
	if diff := cmp.Diff([]refresh.State{refresh.Pulling, refresh.Idle}, states); diff != "" {
		t.Errorf("states mismatch (-want +got):\n%s", diff)
	}

	edge := scroll.NewView(graphics.Size{Width: 320, Height: 568})
	r.AddPullToRefresh(edge, nil, WithIdleBoundary(refresh.PullingAtEdge))
	if got := r.PullToRefresh(edge).State(); got != refresh.Pulling {
		t.Errorf("state at edge with PullingAtEdge = %v, want pulling", got)
	}
}

func TestDefaultFeedbackIsSpinner(t *testing.T) {
	tester := newTester(t)
	r := NewRegistry()
	r.AddPullToRefresh(tester.View(), nil)
	r.AddLoadMore(tester.View(), nil)

	if _, ok := r.PullToRefresh(tester.View()).Feedback().(*indicator.Spinner); !ok {
		t.Error("pull-to-refresh feedback is not a spinner")
	}
	if _, ok := r.LoadMore(tester.View()).Feedback().(*indicator.Spinner); !ok {
		t.Error("load-more feedback is not a spinner")
	}
}

func TestRegistryLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	tester := newTester(t)
	r := NewRegistry(WithRegistryLogger(zap.New(core)))

	h := r.AddPullToRefresh(tester.View(), nil)
	r.RemovePullToRefresh(tester.View())

	entries := logs.FilterField(zap.String("handle", h.ID())).All()
	var messages []string
	for _, e := range entries {
		messages = append(messages, e.Message)
	}
	want := []string{"pull-to-refresh attached", "pull-to-refresh detached"}
	if diff := cmp.Diff(want, messages); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	tester := newTester(t)
	view := tester.View()
	t.Cleanup(func() { Teardown(view) })

	refreshes, loads := 0, 0
	AddPullToRefresh(view, func() { refreshes++ })
	AddLoadMore(view, func() { loads++ })

	StartPullToRefresh(view)
	settle(t, tester)
	StartLoadMore(view)
	if refreshes != 1 || loads != 1 {
		t.Fatalf("refreshes = %d loads = %d", refreshes, loads)
	}
	StopPullToRefresh(view)
	StopLoadMore(view)
	settle(t, tester)

	SetLoadMoreEnabled(view, false)
	if IsLoadMoreEnabled(view) {
		t.Error("load-more still enabled")
	}
	RemoveLoadMore(view)
	RemovePullToRefresh(view)
	if view.ObserverCount() != 0 {
		t.Errorf("observers = %d, want 0", view.ObserverCount())
	}
	if Default().PullToRefresh(view) != nil || Default().LoadMore(view) != nil {
		t.Error("default registry kept entries")
	}
}
