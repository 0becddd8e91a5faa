package float

import (
	"fmt"
	"math"
	"testing"
)

func TestComputePosition_Scenarios(t *testing.T) {
	type tc struct {
		anchor    Rect
		content   Size
		placement Placement
		viewport  Viewport
		offset    float64
		wantTop   float64
		wantLeft  float64
	}

	tests := map[string]tc{
		"bottom centered below anchor": {
			anchor:    NewRect(100, 200, 50, 30),
			content:   NewSize(120, 60),
			placement: Bottom,
			viewport:  Viewport{Width: 400, Height: 800, Padding: 8},
			offset:    8,
			wantTop:   238,
			wantLeft:  65,
		},
		"top-start above anchor": {
			anchor:    NewRect(100, 200, 50, 30),
			content:   NewSize(120, 60),
			placement: TopStart,
			viewport:  Viewport{Width: 400, Height: 800, Padding: 8},
			offset:    8,
			wantTop:   132,
			wantLeft:  100,
		},
		"anchor near right edge clamps left": {
			anchor:    NewRect(380, 200, 50, 30),
			content:   NewSize(120, 60),
			placement: Bottom,
			viewport:  Viewport{Width: 400, Height: 800, Padding: 8},
			offset:    8,
			wantTop:   238,
			wantLeft:  272,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ComputePosition(tt.anchor, tt.content, tt.placement, tt.viewport, 0, tt.offset)
			if got.Top != tt.wantTop || got.Left != tt.wantLeft {
				t.Errorf("ComputePosition() = %s, want top=%g left=%g", got, tt.wantTop, tt.wantLeft)
			}
			if got.Arrow != nil {
				t.Errorf("ComputePosition() arrow = %+v, want nil without arrow size", *got.Arrow)
			}
		})
	}
}

func TestComputePosition_ClampOnlyMovesAlongSide(t *testing.T) {
	anchor := NewRect(380, 200, 50, 30)
	content := NewSize(120, 60)

	base := BasePosition(anchor, content, Bottom, 8)
	if base.Left+content.Width <= 392 {
		t.Fatalf("BasePosition().Left = %g, want it to overflow the padded viewport", base.Left)
	}

	got := ComputePosition(anchor, content, Bottom, Viewport{Width: 400, Height: 800, Padding: 8}, 0, 8)
	if got.Top != base.Top {
		t.Errorf("Top = %g, want unclamped %g", got.Top, base.Top)
	}
	if got.Top < anchor.Bottom() {
		t.Errorf("Top = %g, want content to stay below the anchor (bottom %g)", got.Top, anchor.Bottom())
	}
}

func TestBasePosition_SideFidelity(t *testing.T) {
	anchor := NewRect(100, 200, 50, 30)
	content := NewSize(120, 60)
	const gap = 8

	for _, p := range Placements() {
		t.Run(p.String(), func(t *testing.T) {
			got := BasePosition(anchor, content, p, gap)
			switch p.Side() {
			case SideTop:
				if got.Top+content.Height+gap != anchor.Y {
					t.Errorf("top + height + gap = %g, want anchor.Y %g", got.Top+content.Height+gap, anchor.Y)
				}
			case SideBottom:
				if got.Top != anchor.Bottom()+gap {
					t.Errorf("Top = %g, want anchor bottom + gap %g", got.Top, anchor.Bottom()+gap)
				}
			case SideLeft:
				if got.Left+content.Width+gap != anchor.X {
					t.Errorf("left + width + gap = %g, want anchor.X %g", got.Left+content.Width+gap, anchor.X)
				}
			case SideRight:
				if got.Left != anchor.Right()+gap {
					t.Errorf("Left = %g, want anchor right + gap %g", got.Left, anchor.Right()+gap)
				}
			}
		})
	}
}

func TestBasePosition_AlignmentFidelity(t *testing.T) {
	anchor := NewRect(100, 200, 50, 30)
	content := NewSize(120, 60)

	for _, p := range Placements() {
		t.Run(p.String(), func(t *testing.T) {
			got := BasePosition(anchor, content, p, 8)
			box := got.Rect(content)

			var gotStart, gotEnd, gotCenter, wantStart, wantEnd, wantCenter float64
			if p.Side().Vertical() {
				gotStart, gotEnd, gotCenter = box.X, box.Right(), box.Center().X
				wantStart, wantEnd, wantCenter = anchor.X, anchor.Right(), anchor.Center().X
			} else {
				gotStart, gotEnd, gotCenter = box.Y, box.Bottom(), box.Center().Y
				wantStart, wantEnd, wantCenter = anchor.Y, anchor.Bottom(), anchor.Center().Y
			}

			switch p.Align() {
			case AlignStart:
				if gotStart != wantStart {
					t.Errorf("content start edge = %g, want anchor start edge %g", gotStart, wantStart)
				}
			case AlignEnd:
				if gotEnd != wantEnd {
					t.Errorf("content end edge = %g, want anchor end edge %g", gotEnd, wantEnd)
				}
			case AlignCenter:
				if gotCenter != wantCenter {
					t.Errorf("content center = %g, want anchor center %g", gotCenter, wantCenter)
				}
			}
		})
	}
}

func TestCompute_Containment(t *testing.T) {
	viewport := Viewport{Width: 400, Height: 300, Padding: 8}

	anchors := []Rect{
		NewRect(0, 0, 20, 10),
		NewRect(190, 140, 20, 20),
		NewRect(395, 295, 30, 30),
		NewRect(-100, -50, 10, 10),
		NewRect(1000, 1000, 0, 0),
		NewRect(150.5, 20.5, 99, 40),
	}
	contents := []Size{
		NewSize(0, 0),
		NewSize(120, 60),
		NewSize(384, 284),
		NewSize(385, 285),
		NewSize(1000, 20),
		NewSize(20, 1000),
	}

	check := func(t *testing.T, pos, extent, size, padding float64, axis string) {
		t.Helper()
		if extent <= size-2*padding {
			if pos < padding || pos+extent > size-padding {
				t.Errorf("%s = %g with extent %g escapes [%g, %g]", axis, pos, extent, padding, size-padding)
			}
			return
		}
		if pos != padding {
			t.Errorf("%s = %g for oversized extent %g, want flush %g", axis, pos, extent, padding)
		}
	}

	for ai, anchor := range anchors {
		for ci, content := range contents {
			for _, p := range Placements() {
				name := fmt.Sprintf("anchor%d/content%d/%s", ai, ci, p)
				t.Run(name, func(t *testing.T) {
					got := Compute(anchor, content, viewport, Options{Placement: p, Offset: 4, ArrowSize: 6, ShowArrow: true})
					check(t, got.Left, content.Width, viewport.Width, viewport.Padding, "Left")
					check(t, got.Top, content.Height, viewport.Height, viewport.Padding, "Top")

					bounds := viewport.Bounds()
					fits := content.Width <= bounds.Width && content.Height <= bounds.Height
					if fits && !bounds.ContainsRect(got.Rect(content)) {
						t.Errorf("content %+v at %s not inside bounds %+v", content, got, bounds)
					}
				})
			}
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	anchor := NewRect(33.3, 71.7, 12.1, 9.9)
	content := NewSize(101.01, 57.5)
	viewport := Viewport{Width: 320.5, Height: 480.25, Padding: 6}

	for _, p := range Placements() {
		opts := Options{Placement: p, Offset: 3.3, ArrowSize: 5, ShowArrow: true}
		a := Compute(anchor, content, viewport, opts)
		b := Compute(anchor, content, viewport, opts)
		if !a.Equal(b) {
			t.Errorf("%s: Compute() = %s then %s, want identical results", p, a, b)
		}
	}
}

func TestCompute_Arrow(t *testing.T) {
	type tc struct {
		anchor    Rect
		content   Size
		placement Placement
		want      Position
	}

	viewport := Viewport{Width: 400, Height: 800, Padding: 8}

	tests := map[string]tc{
		"bottom points up at anchor center": {
			anchor:    NewRect(100, 200, 50, 30),
			content:   NewSize(120, 60),
			placement: Bottom,
			want:      Position{Top: 246, Left: 65, Arrow: &Arrow{Top: -8, Left: 56, Rotation: 180}},
		},
		"top sits below content": {
			anchor:    NewRect(100, 200, 50, 30),
			content:   NewSize(120, 60),
			placement: Top,
			want:      Position{Top: 124, Left: 65, Arrow: &Arrow{Top: 60, Left: 56, Rotation: 0}},
		},
		"left sits on right edge": {
			anchor:    NewRect(200, 200, 50, 30),
			content:   NewSize(120, 60),
			placement: LeftStart,
			want:      Position{Top: 200, Left: 64, Arrow: &Arrow{Top: 11, Left: 120, Rotation: -90}},
		},
		"right sits on left edge": {
			anchor:    NewRect(100, 200, 50, 30),
			content:   NewSize(120, 60),
			placement: RightEnd,
			want:      Position{Top: 170, Left: 166, Arrow: &Arrow{Top: 41, Left: -8, Rotation: 90}},
		},
		"clamped content keeps arrow on its edge": {
			anchor:    NewRect(380, 200, 50, 30),
			content:   NewSize(120, 60),
			placement: Bottom,
			want:      Position{Top: 246, Left: 272, Arrow: &Arrow{Top: -8, Left: 112, Rotation: 180}},
		},
		"content narrower than arrow": {
			anchor:    NewRect(100, 200, 50, 30),
			content:   NewSize(4, 4),
			placement: Bottom,
			want:      Position{Top: 246, Left: 123, Arrow: &Arrow{Top: -8, Left: 0, Rotation: 180}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ComputePosition(tt.anchor, tt.content, tt.placement, viewport, 8, 8)
			if !got.Equal(tt.want) {
				t.Errorf("ComputePosition() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCompute_ShowArrowGatesArrowSize(t *testing.T) {
	anchor := NewRect(100, 200, 50, 30)
	content := NewSize(120, 60)
	viewport := Viewport{Width: 400, Height: 800, Padding: 8}

	hidden := Compute(anchor, content, viewport, Options{Placement: Bottom, Offset: 8, ArrowSize: 8})
	if hidden.Arrow != nil {
		t.Errorf("Arrow = %+v, want nil when ShowArrow is false", *hidden.Arrow)
	}
	if hidden.Top != 238 {
		t.Errorf("Top = %g, want 238 (arrow size ignored)", hidden.Top)
	}

	zero := Compute(anchor, content, viewport, Options{Placement: Bottom, Offset: 8, ShowArrow: true})
	if zero.Arrow == nil {
		t.Fatal("Arrow = nil, want an arrow when ShowArrow is set")
	}
	if zero.Top != 238 {
		t.Errorf("Top = %g, want 238 for a zero-size arrow", zero.Top)
	}
}

func TestCompute_Degenerate(t *testing.T) {
	type tc struct {
		anchor   Rect
		content  Size
		viewport Viewport
		opts     Options
		want     Position
	}

	tests := map[string]tc{
		"negative viewport treated as zero": {
			anchor:   NewRect(10, 10, 5, 5),
			content:  NewSize(10, 10),
			viewport: Viewport{Width: -10, Height: -10, Padding: -5},
			opts:     Options{Placement: Bottom},
			want:     Position{Top: 0, Left: 0},
		},
		"zero content still positioned": {
			anchor:   NewRect(100, 100, 20, 20),
			content:  NewSize(0, 0),
			viewport: Viewport{Width: 400, Height: 400},
			opts:     Options{Placement: Right, Offset: 4},
			want:     Position{Top: 110, Left: 124},
		},
		"negative content and offset treated as zero": {
			anchor:   NewRect(100, 100, 20, 20),
			content:  NewSize(-5, -5),
			viewport: Viewport{Width: 400, Height: 400},
			opts:     Options{Placement: Right, Offset: -4},
			want:     Position{Top: 110, Left: 120},
		},
		"NaN anchor origin treated as zero": {
			anchor:   Rect{X: math.NaN(), Y: math.NaN(), Width: 10, Height: 10},
			content:  NewSize(20, 20),
			viewport: Viewport{Width: 100, Height: 100, Padding: 2},
			opts:     Options{Placement: BottomStart},
			want:     Position{Top: 10, Left: 2},
		},
		"anchor off screen pins to far edge": {
			anchor:   NewRect(5000, -5000, 10, 10),
			content:  NewSize(20, 20),
			viewport: Viewport{Width: 100, Height: 100, Padding: 2},
			opts:     Options{Placement: Top},
			want:     Position{Top: 2, Left: 78},
		},
		"content larger than viewport is flush": {
			anchor:   NewRect(50, 50, 10, 10),
			content:  NewSize(200, 200),
			viewport: Viewport{Width: 100, Height: 100, Padding: 4},
			opts:     Options{Placement: LeftEnd},
			want:     Position{Top: 4, Left: 4},
		},
		"boundary padding overrides viewport padding": {
			anchor:   NewRect(0, 0, 10, 10),
			content:  NewSize(20, 20),
			viewport: Viewport{Width: 100, Height: 100, Padding: 2},
			opts:     Options{Placement: BottomStart, BoundaryPadding: 12},
			want:     Position{Top: 12, Left: 12},
		},
		"invalid placement falls back to top": {
			anchor:   NewRect(40, 50, 20, 10),
			content:  NewSize(20, 10),
			viewport: Viewport{Width: 100, Height: 100},
			opts:     Options{Placement: Placement(42), Offset: 1},
			want:     Position{Top: 39, Left: 40},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Compute(tt.anchor, tt.content, tt.viewport, tt.opts)
			if !got.Equal(tt.want) {
				t.Errorf("Compute() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestViewport_Bounds(t *testing.T) {
	type tc struct {
		viewport Viewport
		want     Rect
	}

	tests := map[string]tc{
		"padded":            {viewport: Viewport{Width: 400, Height: 300, Padding: 8}, want: NewRect(8, 8, 384, 284)},
		"no padding":        {viewport: Viewport{Width: 40, Height: 30}, want: NewRect(0, 0, 40, 30)},
		"negative padding":  {viewport: Viewport{Width: 40, Height: 30, Padding: -5}, want: NewRect(0, 0, 40, 30)},
		"padding too large": {viewport: Viewport{Width: 10, Height: 10, Padding: 8}, want: NewRect(8, 8, -6, -6)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.viewport.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolvedViewport(t *testing.T) {
	type tc struct {
		viewport Viewport
		opts     Options
		want     Viewport
	}

	tests := map[string]tc{
		"viewport padding kept": {
			viewport: Viewport{Width: 400, Height: 300, Padding: 8},
			want:     Viewport{Width: 400, Height: 300, Padding: 8},
		},
		"boundary padding overrides": {
			viewport: Viewport{Width: 400, Height: 300, Padding: 8},
			opts:     Options{BoundaryPadding: 12},
			want:     Viewport{Width: 400, Height: 300, Padding: 12},
		},
		"negative boundary padding ignored": {
			viewport: Viewport{Width: 400, Height: 300, Padding: 8},
			opts:     Options{BoundaryPadding: -4},
			want:     Viewport{Width: 400, Height: 300, Padding: 8},
		},
		"sanitized": {
			viewport: Viewport{Width: -1, Height: math.NaN(), Padding: -3},
			want:     Viewport{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := resolvedViewport(tt.viewport, tt.opts); got != tt.want {
				t.Errorf("resolvedViewport() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPreview_UsesBoundaryPadding(t *testing.T) {
	viewport := Viewport{Width: 20, Height: 8}
	opts := Options{Placement: Bottom, BoundaryPadding: 1}
	anchor := NewRect(14, 1, 4, 2)
	content := NewSize(6, 2)

	withOpts := Preview(anchor, content, viewport, opts)
	viewport.Padding = 1
	opts.BoundaryPadding = 0
	withViewport := Preview(anchor, content, viewport, opts)

	if withOpts != withViewport {
		t.Errorf("Preview() with BoundaryPadding =\n%s\nwant same as viewport padding\n%s", withOpts, withViewport)
	}
}
