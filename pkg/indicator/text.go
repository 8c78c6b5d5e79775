package indicator

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/refreshable/pkg/graphics"
	"github.com/go-drift/refreshable/pkg/refresh"
	"github.com/go-drift/refreshable/pkg/semantics"
)

// DefaultTextColor is the label color used when TextIndicator.Color is zero.
const DefaultTextColor = graphics.Color(0xFFA0A0A0)

// spinnerGap separates the spinner's center from the label's left edge.
const spinnerGap = 16

// TextIndicator is pull-to-refresh feedback that shows a status label next
// to a spinner.
type TextIndicator struct {
	// Spinner is drawn to the left of the label. Defaults to a small spinner.
	Spinner *Spinner
	// Color is the label color.
	Color graphics.Color
	// Face renders the label. Defaults to basicfont.Face7x13.
	Face font.Face

	title   string
	visible bool
}

// NewTextIndicator returns a hidden indicator with a small spinner.
func NewTextIndicator() *TextIndicator {
	return &TextIndicator{Spinner: &Spinner{Size: SpinnerSizeSmall}}
}

// Title returns the label text for the current state.
func (t *TextIndicator) Title() string { return t.title }

// Visible reports whether the label is shown.
func (t *TextIndicator) Visible() bool { return t.visible }

func (t *TextIndicator) OnStateChange(state refresh.State) {
	switch state {
	case refresh.Idle:
		t.visible = false
	case refresh.Pulling:
		t.visible = true
		t.title = "Pulling"
	case refresh.ReleaseToLoad:
		t.title = "Release to start refresh"
	case refresh.Loading:
		t.title = "Loading..."
	}
	t.spinner().OnStateChange(state)
}

func (t *TextIndicator) OnAnimationStart() {
	t.visible = true
	t.spinner().OnAnimationStart()
}

func (t *TextIndicator) OnAnimationEnd() {
	t.visible = false
	t.spinner().OnAnimationEnd()
}

func (t *TextIndicator) spinner() *Spinner {
	if t.Spinner == nil {
		t.Spinner = &Spinner{Size: SpinnerSizeSmall}
	}
	return t.Spinner
}

func (t *TextIndicator) face() font.Face {
	if t.Face == nil {
		return basicfont.Face7x13
	}
	return t.Face
}

// Render draws the label centered in dst with the spinner on its left.
// Nothing is drawn while hidden.
func (t *TextIndicator) Render(dst *image.RGBA) {
	if !t.visible || t.title == "" {
		return
	}
	b := dst.Bounds()
	face := t.face()
	textWidth := font.MeasureString(face, t.title).Ceil()
	metrics := face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()

	left := b.Min.X + (b.Dx()-textWidth)/2
	baseline := b.Min.Y + (b.Dy()-textHeight)/2 + metrics.Ascent.Ceil()

	col := t.Color
	if col == 0 {
		col = DefaultTextColor
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(left, baseline),
	}
	d.DrawString(t.title)

	sp := t.spinner()
	extent := int(sp.Size.Extent())
	cx := left - spinnerGap
	cy := b.Min.Y + b.Dy()/2
	area := image.Rect(cx-extent/2, cy-extent/2, cx+extent/2, cy+extent/2).Intersect(b)
	if area.Empty() {
		return
	}
	sp.Render(dst.SubImage(area).(*image.RGBA))
}

// DescribeSemanticsConfiguration implements semantics.SemanticsDescriber.
func (t *TextIndicator) DescribeSemanticsConfiguration(config *semantics.SemanticsConfiguration) bool {
	if !t.visible {
		return false
	}
	config.Properties.Label = t.title
	config.Properties.Flags = config.Properties.Flags.Set(semantics.SemanticsIsLiveRegion)
	return true
}
