package float

import (
	"fmt"
	"strings"
)

// Side is the edge of the anchor the floating content sits against.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// String returns the lowercase side name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Vertical returns true for the top and bottom sides, where the content is
// stacked above or below the anchor and aligned along the x axis.
func (s Side) Vertical() bool {
	return s == SideTop || s == SideBottom
}

// Rotation returns the arrow rotation in degrees for content on this side.
// An unrotated arrow points down, which is what content above the anchor needs.
func (s Side) Rotation() float64 {
	switch s {
	case SideBottom:
		return 180
	case SideLeft:
		return -90
	case SideRight:
		return 90
	default:
		return 0
	}
}

// Alignment positions the content along the anchor's edge.
type Alignment int

const (
	// AlignCenter centers the content on the anchor.
	AlignCenter Alignment = iota
	// AlignStart lines the content up with the anchor's left (or top) edge.
	AlignStart
	// AlignEnd lines the content up with the anchor's right (or bottom) edge.
	AlignEnd
)

// String returns "center", "start" or "end".
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// Placement is one of the twelve supported side and alignment combinations.
// The zero value is Top.
type Placement int

const (
	Top Placement = iota
	TopStart
	TopEnd
	Bottom
	BottomStart
	BottomEnd
	Left
	LeftStart
	LeftEnd
	Right
	RightStart
	RightEnd

	placementCount
)

var placementNames = [placementCount]string{
	"top", "top-start", "top-end",
	"bottom", "bottom-start", "bottom-end",
	"left", "left-start", "left-end",
	"right", "right-start", "right-end",
}

// NewPlacement combines a side and an alignment.
func NewPlacement(side Side, align Alignment) Placement {
	return Placement(int(side)*3 + int(align))
}

// Placements returns all twelve placements in declaration order.
func Placements() []Placement {
	out := make([]Placement, 0, placementCount)
	for p := Top; p < placementCount; p++ {
		out = append(out, p)
	}
	return out
}

// Valid reports whether p is one of the twelve declared placements.
func (p Placement) Valid() bool {
	return p >= Top && p < placementCount
}

// Side returns the anchor edge the content is placed against.
func (p Placement) Side() Side {
	if !p.Valid() {
		return SideTop
	}
	return Side(int(p) / 3)
}

// Align returns the alignment along the anchor edge.
func (p Placement) Align() Alignment {
	if !p.Valid() {
		return AlignCenter
	}
	return Alignment(int(p) % 3)
}

// String returns the kebab-case placement name, e.g. "bottom-start".
func (p Placement) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Placement(%d)", int(p))
	}
	return placementNames[p]
}

// ParsePlacement parses a kebab-case placement name. Matching ignores case
// and surrounding whitespace, and "-center" is accepted as an alias for the
// unsuffixed name.
func ParsePlacement(s string) (Placement, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(name, "-center")
	for i, n := range placementNames {
		if n == name {
			return Placement(i), nil
		}
	}
	return Top, fmt.Errorf("unknown placement %q (want one of %s)", s, strings.Join(placementNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (p Placement) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid placement %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParsePlacement.
func (p *Placement) UnmarshalText(text []byte) error {
	parsed, err := ParsePlacement(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
