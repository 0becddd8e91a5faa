package float

import "github.com/grindlemire/go-float/internal/geom"

// Viewport is the visible area floating content must stay inside, with a
// minimum Padding kept from every edge. Negative or NaN fields are treated
// as zero.
type Viewport struct {
	Width, Height float64
	Padding       float64
}

// Viewport returns v, so a fixed Viewport can be used as a ViewportProvider.
func (v Viewport) Viewport() Viewport {
	return v
}

// Bounds returns the area content may occupy: the viewport inset by its
// padding. The result is empty when the padding consumes the viewport.
func (v Viewport) Bounds() Rect {
	v = v.sanitized()
	return geom.NewRect(0, 0, v.Width, v.Height).Inset(geom.EdgeAll(v.Padding))
}

func (v Viewport) sanitized() Viewport {
	return Viewport{
		Width:   geom.NonNegative(v.Width),
		Height:  geom.NonNegative(v.Height),
		Padding: geom.NonNegative(v.Padding),
	}
}

// ViewportProvider supplies the current viewport. It is queried on every
// recompute, so implementations should return live dimensions.
type ViewportProvider interface {
	Viewport() Viewport
}

// ViewportFunc adapts a function to ViewportProvider.
type ViewportFunc func() Viewport

// Viewport calls f.
func (f ViewportFunc) Viewport() Viewport {
	return f()
}
