package canvas

import "strings"

// Canvas is a 2D grid of runes. Writes outside the grid are dropped.
type Canvas struct {
	cells  []rune
	width  int
	height int
}

// New creates a canvas of the given dimensions filled with spaces.
// Negative dimensions are treated as zero.
func New(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)

	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = ' '
	}
	return &Canvas{cells: cells, width: width, height: height}
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	return c.width
}

// idx converts (x, y) to a slice index, or -1 when out of bounds.
func (c *Canvas) idx(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return -1
	}
	return y*c.width + x
}

// Set writes r at (x, y).
func (c *Canvas) Set(x, y int, r rune) {
	if i := c.idx(x, y); i >= 0 {
		c.cells[i] = r
	}
}

// Box draws the outline of the w x h rectangle at (x, y). A box one cell
// wide or tall degenerates to a line; an empty box draws nothing.
func (c *Canvas) Box(x, y, w, h int, style BorderStyle) {
	if w <= 0 || h <= 0 || style == BorderNone {
		return
	}
	ch := style.Chars()
	right := x + w - 1
	bottom := y + h - 1

	// Loops are clipped to the grid so oversized boxes stay cheap.
	for col := max(x+1, 0); col < min(right, c.width); col++ {
		c.Set(col, y, ch.Top)
		c.Set(col, bottom, ch.Bottom)
	}
	for row := max(y+1, 0); row < min(bottom, c.height); row++ {
		c.Set(x, row, ch.Left)
		c.Set(right, row, ch.Right)
	}

	switch {
	case w == 1 && h == 1:
		c.Set(x, y, ch.TopLeft)
	case h == 1:
		c.Set(x, y, ch.Top)
		c.Set(right, y, ch.Top)
	case w == 1:
		c.Set(x, y, ch.Left)
		c.Set(x, bottom, ch.Left)
	default:
		c.Set(x, y, ch.TopLeft)
		c.Set(right, y, ch.TopRight)
		c.Set(x, bottom, ch.BottomLeft)
		c.Set(right, bottom, ch.BottomRight)
	}
}

// Text writes s starting at (x, y), one rune per cell, and returns the number
// of cells written inside the canvas.
func (c *Canvas) Text(x, y int, s string) int {
	written := 0
	col := x
	for _, r := range s {
		if c.idx(col, y) >= 0 {
			c.Set(col, y, r)
			written++
		}
		col++
	}
	return written
}

// String returns the canvas rows joined by newlines, with trailing spaces
// trimmed from each row.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		row := string(c.cells[y*c.width : (y+1)*c.width])
		sb.WriteString(strings.TrimRight(row, " "))
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
