package geom

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}
