// Package canvas is a fixed-size grid of runes with box-drawing helpers,
// used to render text previews of floating-element placements.
package canvas
