package fynefloat

import (
	"fyne.io/fyne/v2"

	float "github.com/grindlemire/go-float"
)

// currentDriver returns the running app's driver, or nil outside an app.
func currentDriver() fyne.Driver {
	app := fyne.CurrentApp()
	if app == nil {
		return nil
	}
	return app.Driver()
}

// Anchor measures a canvas object for a Coordinator.
type Anchor struct {
	Object fyne.CanvasObject
}

// Measure reports the object's absolute position and size. It reports
// nothing when the object is nil or no app is running, which leaves the
// Coordinator waiting for a measurement.
func (a Anchor) Measure(report func(float.Rect)) {
	if a.Object == nil {
		return
	}
	d := currentDriver()
	if d == nil {
		return
	}

	pos := d.AbsolutePositionForObject(a.Object)
	size := a.Object.Size()
	report(float.NewRect(float64(pos.X), float64(pos.Y), float64(size.Width), float64(size.Height)))
}

// Viewport reports the size of the canvas containing Object.
type Viewport struct {
	Object  fyne.CanvasObject
	Padding float32
}

// Viewport returns the canvas size, or an empty viewport when Object is not
// on a canvas yet.
func (v Viewport) Viewport() float.Viewport {
	if v.Object == nil {
		return float.Viewport{}
	}
	d := currentDriver()
	if d == nil {
		return float.Viewport{}
	}
	cnv := d.CanvasForObject(v.Object)
	if cnv == nil {
		return float.Viewport{}
	}

	size := cnv.Size()
	return float.Viewport{
		Width:   float64(size.Width),
		Height:  float64(size.Height),
		Padding: float64(v.Padding),
	}
}

// Renderer places content inside layer, a container without a layout that
// is stacked above the rest of the window.
type Renderer struct {
	layer   *fyne.Container
	content fyne.CanvasObject

	// report is the Coordinator's callback from the last Mount, and
	// reported the MinSize it was last given.
	report   func(float.Size)
	reported fyne.Size
}

// NewRenderer creates a renderer that shows content in layer.
func NewRenderer(layer *fyne.Container, content fyne.CanvasObject) *Renderer {
	return &Renderer{layer: layer, content: content}
}

// Mount adds the content to the layer hidden and reports its minimum size.
func (r *Renderer) Mount(report func(float.Size)) {
	r.content.Hide()
	size := r.content.MinSize()
	r.content.Resize(size)
	r.attach()

	r.report = report
	r.reported = size
	report(toSize(size))
}

// Show moves the content to p and makes it visible. p is in canvas
// coordinates, so the layer's own absolute position is subtracted.
//
// If the content's MinSize changed since it was last reported, the new size
// is reported instead and the Coordinator calls Show again with a position
// computed for it.
func (r *Renderer) Show(p float.Position) {
	if r.Sync() {
		return
	}

	var origin fyne.Position
	if d := currentDriver(); d != nil {
		origin = d.AbsolutePositionForObject(r.layer)
	}

	r.attach()
	r.content.Resize(r.reported)
	r.content.Move(fyne.NewPos(float32(p.Left)-origin.X, float32(p.Top)-origin.Y))
	r.content.Show()
	r.layer.Refresh()
}

// Hide removes the content from the layer.
func (r *Renderer) Hide() {
	r.report = nil
	r.content.Hide()
	r.layer.Remove(r.content)
}

// Sync reports the content's MinSize to the Coordinator if it differs from
// the last reported size. It returns whether a report was made. Call it after
// changing the content; Popover.Refresh does so.
func (r *Renderer) Sync() bool {
	if r.report == nil {
		return false
	}
	size := r.content.MinSize()
	if size == r.reported {
		return false
	}

	r.reported = size
	r.report(toSize(size))
	return true
}

// Mounted reports whether the content is currently in the layer.
func (r *Renderer) Mounted() bool {
	for _, o := range r.layer.Objects {
		if o == r.content {
			return true
		}
	}
	return false
}

func (r *Renderer) attach() {
	if !r.Mounted() {
		r.layer.Add(r.content)
	}
}

func toSize(s fyne.Size) float.Size {
	return float.NewSize(float64(s.Width), float64(s.Height))
}
