package graphics

import "math"

// Color packs a non-premultiplied color as 0xAARRGGBB.
type Color uint32

// Predefined colors.
const (
	ColorBlack = Color(0xFF000000)
	ColorWhite = Color(0xFFFFFFFF)
	// ColorSystemGray is the default spinner tint.
	ColorSystemGray = Color(0xFF8E8E93)
)

// RGB returns the opaque color with the given channels.
func RGB(r, g, b uint8) Color {
	return Color(0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) channel(shift uint) uint32 { return uint32(c>>shift) & 0xFF }

// RGBA satisfies image/color.Color: 16-bit channels, premultiplied by alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = c.channel(24)
	premul := func(v uint32) uint32 { return v * a / 0xFF * 0x101 }
	return premul(c.channel(16)), premul(c.channel(8)), premul(c.channel(0)), a * 0x101
}

// Alpha returns the opacity in [0, 1].
func (c Color) Alpha() float64 {
	return float64(c.channel(24)) / 0xFF
}

// WithAlpha replaces the opacity, clamping a to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	byteAlpha := uint32(math.Round(Clamp(a, 0, 1) * 0xFF))
	return Color(byteAlpha<<24 | uint32(c)&0x00FFFFFF)
}
