package geom

import "math"

// Size is a width/height pair, typically the measured size of floating content.
type Size struct {
	Width, Height float64
}

// NewSize creates a Size with the given dimensions.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// NonNegative returns s with negative or NaN dimensions replaced by zero.
func (s Size) NonNegative() Size {
	return Size{Width: NonNegative(s.Width), Height: NonNegative(s.Height)}
}

// NonNegative returns v, or zero when v is negative or NaN.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
