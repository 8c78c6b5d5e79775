package indicator

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// Render draws the current animation frame into dst, scaled to fit its
// bounds. Existing pixels are composited over, not cleared.
func (s *Spinner) Render(dst *image.RGBA) {
	s.RenderFrame(dst, s.Frame())
}

// RenderFrame draws the spinner with spoke head as the brightest one.
// Trailing spokes fade towards the minimum opacity.
func (s *Spinner) RenderFrame(dst *image.RGBA, head int) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	head = ((head % SpokeCount) + SpokeCount) % SpokeCount

	cx, cy := float64(w)/2, float64(h)/2
	outer := math.Min(cx, cy)
	inner := outer * 0.45
	half := outer * 0.08

	base := s.color()
	z := vector.NewRasterizer(w, h)
	for i := 0; i < SpokeCount; i++ {
		angle := 2*math.Pi*float64(i)/SpokeCount - math.Pi/2
		dx, dy := math.Cos(angle), math.Sin(angle)
		nx, ny := -dy*half, dx*half

		z.Reset(w, h)
		z.MoveTo(float32(cx+dx*inner+nx), float32(cy+dy*inner+ny))
		z.LineTo(float32(cx+dx*outer+nx), float32(cy+dy*outer+ny))
		z.LineTo(float32(cx+dx*outer-nx), float32(cy+dy*outer-ny))
		z.LineTo(float32(cx+dx*inner-nx), float32(cy+dy*inner-ny))
		z.ClosePath()

		age := (head - i + SpokeCount) % SpokeCount
		src := image.NewUniform(base.WithAlpha(base.Alpha() * spokeOpacity(age)))
		z.Draw(dst, b, src, image.Point{})
	}
}

// spokeOpacity fades from 1 at the head to 0.15 for the oldest spoke.
func spokeOpacity(age int) float64 {
	return 1 - 0.85*float64(age)/float64(SpokeCount-1)
}

// NewFrame allocates a transparent image sized for the spinner at scale
// device pixels per point.
func (s *Spinner) NewFrame(scale float64) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	px := int(math.Ceil(s.Size.Extent() * scale))
	return image.NewRGBA(image.Rect(0, 0, px, px))
}
