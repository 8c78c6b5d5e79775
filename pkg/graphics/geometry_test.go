package graphics

import (
	"image/color"
	"testing"
)

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(0, -50, 320, 50)
	if r.Width() != 320 || r.Height() != 50 {
		t.Errorf("size = %vx%v, want 320x50", r.Width(), r.Height())
	}
	if r.Origin() != (Offset{Y: -50}) {
		t.Errorf("origin = %v, want {0 -50}", r.Origin())
	}
	if got := r.Center(); got != (Offset{X: 160, Y: -25}) {
		t.Errorf("center = %v", got)
	}
}

func TestRectOverlaps(t *testing.T) {
	content := RectFromLTWH(0, 0, 320, 1000)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"footer below content", RectFromLTWH(0, 1000, 320, 50), false},
		{"footer overlapping", RectFromLTWH(0, 980, 320, 50), true},
		{"header above content", RectFromLTWH(0, -50, 320, 50), false},
	}
	for _, tt := range tests {
		if got := content.Overlaps(tt.other); got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(80, 0, 50); got != 50 {
		t.Errorf("Clamp(80, 0, 50) = %v", got)
	}
	if got := Clamp(-1, 0, 50); got != 0 {
		t.Errorf("Clamp(-1, 0, 50) = %v", got)
	}
}

func TestColorImplementsImageColor(t *testing.T) {
	var c color.Color = RGB(255, 0, 0)
	r, g, b, a := c.RGBA()
	if r != 0xFFFF || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("RGBA() = %x %x %x %x", r, g, b, a)
	}
	half := ColorWhite.WithAlpha(0.5)
	_, _, _, a = half.RGBA()
	if a != 0x80*0x101 {
		t.Errorf("half alpha = %x, want %x", a, 0x80*0x101)
	}
}
