// Package geom holds the float64 geometry primitives shared by the
// positioning engine: rectangles, sizes, points and edge insets, all in a
// single window coordinate space with the origin at the top-left.
//
// Types are re-exported through the root float package for public consumption.
package geom
