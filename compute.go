package float

import (
	"math"

	"github.com/grindlemire/go-float/internal/debug"
	"github.com/grindlemire/go-float/internal/geom"
)

// Options configures a single placement computation. It is also the
// configuration a Coordinator is opened with.
type Options struct {
	// Placement selects the anchor side and the alignment along it.
	Placement Placement

	// Offset is the gap between the anchor and the content (or the arrow,
	// when one is shown).
	Offset float64

	// ArrowSize is the side length of the square arrow box. It widens the
	// gap between anchor and content only when ShowArrow is set.
	ArrowSize float64
	ShowArrow bool

	// BoundaryPadding, when positive, replaces the viewport's own padding.
	BoundaryPadding float64
}

func (o Options) arrowSize() float64 {
	if !o.ShowArrow {
		return 0
	}
	return geom.NonNegative(o.ArrowSize)
}

// ComputePosition places content of the given size next to anchor.
//
// The content sits on the placement's side of the anchor, separated by
// offset plus arrowSize, and is aligned along that side. The result is then
// clamped so the content keeps viewport.Padding from every edge; on an axis
// where the content is larger than the viewport minus padding it is pinned
// flush at the padding instead. An arrow is computed when arrowSize is
// positive.
//
// ComputePosition never fails. Negative or NaN sizes, padding, offset and
// arrow size are treated as zero.
func ComputePosition(anchor Rect, content Size, placement Placement, viewport Viewport, arrowSize, offset float64) Position {
	return Compute(anchor, content, viewport, Options{
		Placement: placement,
		Offset:    offset,
		ArrowSize: arrowSize,
		ShowArrow: arrowSize > 0,
	})
}

// Compute is ComputePosition driven by an Options value.
func Compute(anchor Rect, content Size, viewport Viewport, opts Options) Position {
	if !opts.Placement.Valid() {
		debug.Log("Compute: invalid placement %d, using top", int(opts.Placement))
		opts.Placement = Top
	}
	viewport = resolvedViewport(viewport, opts)
	anchor = sanitizeRect(anchor)
	content = content.NonNegative()

	arrow := opts.arrowSize()
	gap := geom.NonNegative(opts.Offset) + arrow

	pos := BasePosition(anchor, content, opts.Placement, gap)
	pos.Left = clampAxis(pos.Left, content.Width, viewport.Width, viewport.Padding)
	pos.Top = clampAxis(pos.Top, content.Height, viewport.Height, viewport.Padding)

	if opts.ShowArrow {
		pos.Arrow = arrowFor(opts.Placement.Side(), anchor, content, pos, arrow)
	}
	if bounds := viewport.Bounds(); !bounds.ContainsRect(pos.Rect(content)) {
		debug.Log("Compute: content %gx%g exceeds bounds %gx%g, pinned at padding",
			content.Width, content.Height, bounds.Width, bounds.Height)
	}
	return pos
}

// resolvedViewport applies the BoundaryPadding override to viewport and
// sanitizes it. Compute and Preview both measure against its result.
func resolvedViewport(viewport Viewport, opts Options) Viewport {
	if opts.BoundaryPadding > 0 {
		viewport.Padding = opts.BoundaryPadding
	}
	return viewport.sanitized()
}

// BasePosition returns the unclamped position of content placed against
// anchor with the given gap. It is the first step of Compute and is useful
// for diagnostics; most callers want Compute.
func BasePosition(anchor Rect, content Size, placement Placement, gap float64) Position {
	var pos Position

	side := placement.Side()
	switch side {
	case SideTop:
		pos.Top = anchor.Y - content.Height - gap
	case SideBottom:
		pos.Top = anchor.Bottom() + gap
	case SideLeft:
		pos.Left = anchor.X - content.Width - gap
	case SideRight:
		pos.Left = anchor.Right() + gap
	}

	if side.Vertical() {
		pos.Left = alignAxis(placement.Align(), anchor.X, anchor.Width, content.Width)
	} else {
		pos.Top = alignAxis(placement.Align(), anchor.Y, anchor.Height, content.Height)
	}
	return pos
}

// alignAxis positions a span of length extent against the anchor span
// [start, start+length) on the cross axis.
func alignAxis(align Alignment, start, length, extent float64) float64 {
	switch align {
	case AlignStart:
		return start
	case AlignEnd:
		return start + length - extent
	default:
		return start + (length-extent)/2
	}
}

// clampAxis keeps [v, v+extent) inside [padding, size-padding]. When the
// range is inverted the content cannot fit and is pinned at padding.
func clampAxis(v, extent, size, padding float64) float64 {
	return clampRange(v, padding, size-extent-padding)
}

// clampRange clamps v into [lo, hi], returning lo when hi < lo or v is NaN.
func clampRange(v, lo, hi float64) float64 {
	if hi < lo || v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// arrowFor places the arrow on the content edge facing the anchor, lined up
// with the anchor's center. It runs after clamping so the arrow follows the
// content box, and it never leaves that box's edge.
func arrowFor(side Side, anchor Rect, content Size, pos Position, size float64) *Arrow {
	a := &Arrow{Rotation: side.Rotation()}
	center := anchor.Center()

	switch side {
	case SideTop:
		a.Top = content.Height
		a.Left = clampRange(center.X-pos.Left-size/2, 0, content.Width-size)
	case SideBottom:
		a.Top = -size
		a.Left = clampRange(center.X-pos.Left-size/2, 0, content.Width-size)
	case SideLeft:
		a.Left = content.Width
		a.Top = clampRange(center.Y-pos.Top-size/2, 0, content.Height-size)
	case SideRight:
		a.Left = -size
		a.Top = clampRange(center.Y-pos.Top-size/2, 0, content.Height-size)
	}
	return a
}

// sanitizeRect zeroes NaN coordinates and negative or NaN dimensions so the
// clamp below always has ordered inputs.
func sanitizeRect(r Rect) Rect {
	if math.IsNaN(r.X) {
		r.X = 0
	}
	if math.IsNaN(r.Y) {
		r.Y = 0
	}
	r.Width = geom.NonNegative(r.Width)
	r.Height = geom.NonNegative(r.Height)
	return r
}
