package float

import "fmt"

// Position is the computed top-left corner of the floating content, in the
// same coordinate space as the anchor Rect.
type Position struct {
	Top, Left float64

	// Arrow is nil unless an arrow was requested.
	Arrow *Arrow
}

// Arrow locates the caret that points from the content back at the anchor.
// Top and Left are relative to the content's top-left corner and describe
// the top-left of a square arrow box. Rotation is in degrees: 0 points down,
// 180 up, 90 left and -90 right.
type Arrow struct {
	Top, Left float64
	Rotation  float64
}

// Rect returns the content box at this position.
func (p Position) Rect(content Size) Rect {
	return NewRect(p.Left, p.Top, content.Width, content.Height)
}

// Equal reports whether two positions are identical, arrows included.
func (p Position) Equal(other Position) bool {
	if p.Top != other.Top || p.Left != other.Left {
		return false
	}
	if p.Arrow == nil || other.Arrow == nil {
		return p.Arrow == nil && other.Arrow == nil
	}
	return *p.Arrow == *other.Arrow
}

// String formats the position for logs and the CLI.
func (p Position) String() string {
	if p.Arrow == nil {
		return fmt.Sprintf("top=%g left=%g", p.Top, p.Left)
	}
	return fmt.Sprintf("top=%g left=%g arrow(top=%g left=%g rotation=%g)",
		p.Top, p.Left, p.Arrow.Top, p.Arrow.Left, p.Arrow.Rotation)
}
