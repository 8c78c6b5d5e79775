// Package animation provides the frame-ticked animation primitives used to
// move scroll container geometry (insets and offsets) during refresh and
// load-more transitions.
//
// # Core Components
//
//   - [AnimationController]: progresses a value from 0.0 to 1.0 over a
//     Duration, shaped by an easing Curve. Completion is observed through
//     [AnimationController.AddStatusListener].
//
//   - [Tween]: maps the controller's 0-1 value onto another range, such as
//     a content offset or an inset value.
//
//   - [Ticker]: the low-level per-frame callback. The host's frame loop (or a
//     test harness) calls [StepTickers] once per frame.
//
// # Basic Usage
//
//	controller := animation.NewAnimationController(300 * time.Millisecond)
//	controller.Curve = animation.EaseOut
//	inset := animation.TweenFloat64(0, 50)
//	controller.AddListener(func() {
//	    container.SetContentInset(graphics.EdgeInsets{Top: inset.Transform(controller)})
//	})
//	controller.AddStatusListener(func(status animation.AnimationStatus) {
//	    if status == animation.AnimationCompleted {
//	        controller.Dispose()
//	    }
//	})
//	controller.Forward()
//
// Time is read from a replaceable [Clock] so tests can advance animations
// deterministically.
package animation
