package geom

import (
	"math"
	"testing"
)

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.X != 5 {
		t.Errorf("NewRect().X = %v, want 5", r.X)
	}
	if r.Y != 10 {
		t.Errorf("NewRect().Y = %v, want 10", r.Y)
	}
	if r.Width != 20 {
		t.Errorf("NewRect().Width = %v, want 20", r.Width)
	}
	if r.Height != 15 {
		t.Errorf("NewRect().Height = %v, want 15", r.Height)
	}
}

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  float64
		bottom float64
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
		"zero size": {
			rect:   NewRect(5, 5, 0, 0),
			right:  5,
			bottom: 5,
		},
		"fractional": {
			rect:   NewRect(0.5, 1.25, 2, 3),
			right:  2.5,
			bottom: 4.25,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
		})
	}
}

func TestRect_Center(t *testing.T) {
	r := NewRect(100, 200, 50, 30)
	want := Point{X: 125, Y: 215}
	if got := r.Center(); got != want {
		t.Errorf("Center() = %+v, want %+v", got, want)
	}
}

func TestRect_IsEmpty(t *testing.T) {
	type tc struct {
		rect  Rect
		empty bool
	}

	tests := map[string]tc{
		"normal":          {rect: NewRect(0, 0, 10, 10), empty: false},
		"zero width":      {rect: NewRect(0, 0, 0, 10), empty: true},
		"zero height":     {rect: NewRect(0, 0, 10, 0), empty: true},
		"negative width":  {rect: NewRect(0, 0, -1, 10), empty: true},
		"negative height": {rect: NewRect(0, 0, 10, -1), empty: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.IsEmpty(); got != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestRect_ContainsRect(t *testing.T) {
	type tc struct {
		outer, inner Rect
		contains     bool
	}

	tests := map[string]tc{
		"fully inside":    {outer: NewRect(0, 0, 100, 100), inner: NewRect(10, 10, 20, 20), contains: true},
		"same rect":       {outer: NewRect(0, 0, 10, 10), inner: NewRect(0, 0, 10, 10), contains: true},
		"overflow right":  {outer: NewRect(0, 0, 10, 10), inner: NewRect(5, 0, 10, 10), contains: false},
		"empty inner":     {outer: NewRect(0, 0, 10, 10), inner: NewRect(50, 50, 0, 0), contains: true},
		"empty outer":     {outer: NewRect(0, 0, 0, 0), inner: NewRect(0, 0, 1, 1), contains: false},
		"overflow bottom": {outer: NewRect(0, 0, 10, 10), inner: NewRect(0, 9, 1, 2), contains: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.outer.ContainsRect(tt.inner); got != tt.contains {
				t.Errorf("ContainsRect(%+v) = %v, want %v", tt.inner, got, tt.contains)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		rect  Rect
		edges Edges
		want  Rect
	}

	tests := map[string]tc{
		"uniform": {
			rect:  NewRect(10, 10, 100, 50),
			edges: EdgeAll(8),
			want:  NewRect(18, 18, 84, 34),
		},
		"uneven": {
			rect:  NewRect(0, 0, 40, 20),
			edges: Edges{Top: 1, Right: 2, Bottom: 3, Left: 4},
			want:  NewRect(4, 1, 34, 16),
		},
		"negative expands": {
			rect:  NewRect(3, 4, 5, 6),
			edges: EdgeAll(-1),
			want:  NewRect(2, 3, 7, 8),
		},
		"zero": {
			rect:  NewRect(3, 4, 5, 6),
			edges: Edges{},
			want:  NewRect(3, 4, 5, 6),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.edges); got != tt.want {
				t.Errorf("Inset(%+v) = %+v, want %+v", tt.edges, got, tt.want)
			}
		})
	}
}

func TestRect_Round(t *testing.T) {
	type tc struct {
		rect     Rect
		expected Rect
	}

	tests := map[string]tc{
		"already whole": {
			rect:     NewRect(1, 2, 3, 4),
			expected: NewRect(1, 2, 3, 4),
		},
		"half values round away from zero": {
			rect:     NewRect(0.5, 0.5, 2, 2),
			expected: NewRect(1, 1, 2, 2),
		},
		"edges rounded independently": {
			rect:     NewRect(0.4, 0.4, 2.2, 2.2),
			expected: NewRect(0, 0, 3, 3),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Round(); got != tt.expected {
				t.Errorf("Round() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestNonNegative(t *testing.T) {
	type tc struct {
		in   float64
		want float64
	}

	tests := map[string]tc{
		"positive": {in: 3.5, want: 3.5},
		"zero":     {in: 0, want: 0},
		"negative": {in: -2, want: 0},
		"NaN":      {in: math.NaN(), want: 0},
		"+Inf":     {in: math.Inf(1), want: math.Inf(1)},
		"-Inf":     {in: math.Inf(-1), want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := NonNegative(tt.in); got != tt.want {
				t.Errorf("NonNegative(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	s := Size{Width: -1, Height: math.NaN()}.NonNegative()
	if s != (Size{}) {
		t.Errorf("Size.NonNegative() = %+v, want zero", s)
	}
}
