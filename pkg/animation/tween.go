package animation

import "github.com/go-drift/refreshable/pkg/graphics"

// Tween maps controller progress onto the range [Begin, End].
type Tween[T any] struct {
	Begin, End T
	Lerp       func(a, b T, t float64) T
}

// Transform returns the value for the controller's current progress.
func (tw *Tween[T]) Transform(c *AnimationController) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, c.Value)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// TweenFloat64 interpolates a scalar such as an inset edge.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: lerp}
}

// TweenOffset interpolates a content offset component-wise.
func TweenOffset(begin, end graphics.Offset) *Tween[graphics.Offset] {
	return &Tween[graphics.Offset]{
		Begin: begin,
		End:   end,
		Lerp: func(a, b graphics.Offset, t float64) graphics.Offset {
			return graphics.Offset{X: lerp(a.X, b.X, t), Y: lerp(a.Y, b.Y, t)}
		},
	}
}
