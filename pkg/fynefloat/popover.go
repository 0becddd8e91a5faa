package fynefloat

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"

	float "github.com/grindlemire/go-float"
)

// Popover shows one piece of floating content next to whichever object it
// is opened at.
type Popover struct {
	coord    *float.Coordinator
	renderer *Renderer
	opts     float.Options
}

// NewPopover creates a closed popover. content is shown in layer, and
// viewportObject is any object on the same canvas; its canvas bounds the
// content.
func NewPopover(layer *fyne.Container, content, viewportObject fyne.CanvasObject, opts float.Options) (*Popover, error) {
	switch {
	case layer == nil:
		return nil, errors.New("fynefloat: nil layer")
	case content == nil:
		return nil, errors.New("fynefloat: nil content")
	case viewportObject == nil:
		return nil, errors.New("fynefloat: nil viewport object")
	}

	r := NewRenderer(layer, content)
	coord, err := float.NewCoordinator(
		Viewport{Object: viewportObject},
		float.WithRenderer(r),
		float.WithName("fynefloat"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating popover: %w", err)
	}

	return &Popover{coord: coord, renderer: r, opts: opts}, nil
}

// ShowAt opens the popover next to anchor, closing it first if it is
// already open elsewhere.
func (p *Popover) ShowAt(anchor fyne.CanvasObject) {
	p.coord.Close()
	p.coord.Open(Anchor{Object: anchor}, p.opts)
}

// Dismiss closes the popover.
func (p *Popover) Dismiss() {
	p.coord.Close()
}

// Visible reports whether the popover is positioned on screen.
func (p *Popover) Visible() bool {
	return p.coord.Phase() == float.Positioned
}

// Refresh re-reads the content's size, re-measures the anchor and re-reads
// the canvas size. Call it after the content changes, the window is resized
// or the anchor scrolls.
func (p *Popover) Refresh() {
	p.renderer.Sync()
	p.coord.Remeasure()
	p.coord.RefreshViewport()
}

// SetOptions changes the placement options, repositioning an open popover.
func (p *Popover) SetOptions(opts float.Options) {
	p.opts = opts
	p.coord.SetOptions(opts)
}

// Coordinator exposes the underlying coordinator, e.g. to Subscribe.
func (p *Popover) Coordinator() *float.Coordinator {
	return p.coord
}
