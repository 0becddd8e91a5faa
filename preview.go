package float

import (
	"math"

	"github.com/grindlemire/go-float/internal/canvas"
)

// maxPreviewCells bounds each preview dimension so a pixel-sized viewport
// doesn't allocate an enormous grid.
const maxPreviewCells = 500

// Preview computes the position of content next to anchor and draws the
// scene as text, one cell per unit: the viewport frame titled with the
// placement name, the anchor (single border), the content (rounded border)
// and, if requested, an arrow glyph pointing at the anchor. It is meant for
// terminals and debugging output.
func Preview(anchor Rect, content Size, viewport Viewport, opts Options) string {
	pos := Compute(anchor, content, viewport, opts)
	viewport = resolvedViewport(viewport, opts)

	width := cells(viewport.Width)
	height := cells(viewport.Height)
	c := canvas.New(width, height)

	c.Box(0, 0, width, height, canvas.BorderASCII)
	if opts.Placement.Valid() {
		drawTitle(c, opts.Placement.String())
	}
	drawRect(c, anchor, canvas.BorderSingle)
	drawRect(c, pos.Rect(content.NonNegative()), canvas.BorderRounded)

	if pos.Arrow != nil {
		x := int(math.Round(pos.Left + pos.Arrow.Left))
		y := int(math.Round(pos.Top + pos.Arrow.Top))
		c.Set(x, y, arrowGlyph(opts.Placement.Side()))
	}
	return c.String()
}

func drawRect(c *canvas.Canvas, r Rect, style canvas.BorderStyle) {
	r = sanitizeRect(r).Round()
	c.Box(int(r.X), int(r.Y), int(r.Width), int(r.Height), style)
}

// drawTitle writes the placement name into the top frame edge when it fits
// between the corners with a dash on each side.
func drawTitle(c *canvas.Canvas, name string) {
	title := " " + name + " "
	if 2+len(title)+1 > c.Width() {
		return
	}
	c.Text(2, 0, title)
}

// arrowGlyph returns the character pointing from content on side s back at
// the anchor.
func arrowGlyph(s Side) rune {
	switch s {
	case SideBottom:
		return '^'
	case SideLeft:
		return '>'
	case SideRight:
		return '<'
	default:
		return 'v'
	}
}

func cells(v float64) int {
	if math.IsInf(v, 0) || v > maxPreviewCells {
		return maxPreviewCells
	}
	return int(math.Round(v))
}
