// Package testing provides deterministic harnesses for exercising edge
// controllers against a [scroll.View].
//
//	func TestPullToRefresh(t *testing.T) {
//	    tester := refreshtest.NewScrollTesterWithT(t, graphics.Size{Width: 320, Height: 568})
//	    view := tester.View()
//	    controller := refresh.NewController(onRefresh, refresh.Config{})
//	    controller.Attach(view)
//
//	    tester.DragThrough(-20, -60, -80)
//	    tester.Release()
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// The tester installs a [FakeClock] as the animation clock. Pump steps
// active tickers once; PumpAndSettle advances the clock frame by frame until
// every animation has finished:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// The package name collides with the standard library's, so alias it:
//
//	import refreshtest "github.com/go-drift/refreshable/pkg/testing"
package testing
