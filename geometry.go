// geometry.go re-exports geometry types from internal/geom.
// Any changes to internal/geom types must be mirrored here.
package float

import "github.com/grindlemire/go-float/internal/geom"

// Rect represents a rectangle in window coordinates.
type Rect = geom.Rect

// Size represents a width/height pair.
type Size = geom.Size

// Point represents an x/y coordinate.
type Point = geom.Point

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = geom.Edges

// NewRect creates a Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return geom.NewRect(x, y, width, height)
}

// NewSize creates a Size with the given dimensions.
func NewSize(width, height float64) Size {
	return geom.NewSize(width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return geom.EdgeAll(n)
}
