package float

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-float/internal/debug"
)

// Anchor is the element floating content is positioned against.
//
// Measure asks the platform for the anchor's rectangle in window
// coordinates and calls report with it, synchronously or later from the UI
// goroutine. If the anchor is gone before a measurement completes, Measure
// may simply never call report.
type Anchor interface {
	Measure(report func(Rect))
}

// AnchorFunc adapts a function to Anchor.
type AnchorFunc func(report func(Rect))

// Measure calls f.
func (f AnchorFunc) Measure(report func(Rect)) {
	f(report)
}

// Renderer displays the floating content on behalf of a Coordinator.
type Renderer interface {
	// Mount attaches the content without showing it so it can be laid out.
	// The renderer calls report with the content size after layout, and
	// again whenever the content's size changes.
	Mount(report func(Size))

	// Show reveals the content at p, or moves it there if already visible.
	// It may be called without a preceding Mount when the content size was
	// supplied directly through OnContentLaidOut.
	Show(p Position)

	// Hide removes the content. Close calls it when the content was mounted
	// or shown during the cycle.
	Hide()
}

// Phase is the Coordinator's position in the measurement protocol.
type Phase int

const (
	// Closed is the initial phase; nothing is measured or shown.
	Closed Phase = iota
	// MeasuringAnchor waits for the anchor's rectangle.
	MeasuringAnchor
	// AwaitingContentLayout waits for the mounted content's size.
	AwaitingContentLayout
	// Positioned means a Position has been published and the content is visible.
	Positioned
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Closed:
		return "Closed"
	case MeasuringAnchor:
		return "MeasuringAnchor"
	case AwaitingContentLayout:
		return "AwaitingContentLayout"
	case Positioned:
		return "Positioned"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Coordinator sequences anchor and content measurements for one floating
// element and recomputes its Position whenever either input changes.
//
// A Coordinator is not safe for concurrent use. All methods, and every
// report callback handed to an Anchor or Renderer, must run on the same
// goroutine (normally the UI event loop). Independent floating elements use
// independent Coordinators.
type Coordinator struct {
	name     string
	viewport ViewportProvider
	renderer Renderer

	opts   Options
	anchor Anchor

	// generation tags every open cycle. Close advances it so reports from
	// a previous cycle can be recognised and dropped.
	generation uint64

	anchorRect Rect
	hasAnchor  bool
	content    Size
	hasContent bool
	mounted    bool

	batch    Batcher
	phase    *State[Phase]
	position *State[Position]
}

// NewCoordinator creates a closed Coordinator that reads the viewport from
// the given provider on every recompute.
func NewCoordinator(viewport ViewportProvider, opts ...CoordinatorOption) (*Coordinator, error) {
	if viewport == nil {
		return nil, errors.New("float: nil viewport provider")
	}

	c := &Coordinator{
		name:     "float",
		viewport: viewport,
	}
	c.phase = NewBatchedState(&c.batch, Closed)
	c.position = NewBatchedState(&c.batch, Position{})

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("configuring coordinator: %w", err)
		}
	}

	if c.renderer != nil {
		c.position.Bind(c.renderer.Show)
	}
	return c, nil
}

// Open starts a new cycle: it records opts and asks anchor to measure
// itself. Open is a no-op unless the Coordinator is Closed.
//
// There is no timeout. If the anchor never reports, for example because it
// was unmounted, the Coordinator stays in MeasuringAnchor and the content
// never appears; callers pair Close with unmount.
func (c *Coordinator) Open(anchor Anchor, opts Options) {
	if phase := c.phase.Get(); phase != Closed {
		debug.Log("%s: Open ignored in phase %s", c.name, phase)
		return
	}

	c.anchor = anchor
	c.opts = opts
	debug.Log("%s: Open generation=%d placement=%s", c.name, c.generation, opts.Placement)
	c.setPhase(MeasuringAnchor)
	c.measureAnchor()
}

// Close ends the current cycle, discards all measurements, hides the
// content and advances the generation. Closing a closed Coordinator does
// nothing.
func (c *Coordinator) Close() {
	phase := c.phase.Get()
	if phase == Closed {
		return
	}

	shown := c.mounted || phase == Positioned
	c.generation++
	c.anchor = nil
	c.anchorRect, c.hasAnchor = Rect{}, false
	c.content, c.hasContent = Size{}, false
	c.mounted = false

	debug.Log("%s: Close from %s, generation now %d", c.name, phase, c.generation)
	// Hide before announcing Closed: a phase observer may open the next
	// cycle, and its content must not be hidden by this one.
	if shown && c.renderer != nil {
		c.renderer.Hide()
	}
	c.setPhase(Closed)
}

// OnAnchorMeasured records the anchor's rectangle for generation gen.
//
// Reports for a stale generation, or while Closed, are dropped. Without a
// content size yet, the Coordinator moves to AwaitingContentLayout and
// mounts the content; otherwise it recomputes and publishes a Position.
// Calling it again while Positioned (scroll, rotation) recomputes in place.
func (c *Coordinator) OnAnchorMeasured(gen uint64, r Rect) {
	if !c.current(gen, "anchor") {
		return
	}

	c.anchorRect = r
	c.hasAnchor = true

	if c.hasContent {
		c.recompute()
		return
	}
	if c.phase.Get() == MeasuringAnchor {
		c.setPhase(AwaitingContentLayout)
	}
	c.mount()
}

// OnContentLaidOut records the content size for generation gen. Stale
// reports are dropped. Once an anchor rectangle is also known the
// Coordinator recomputes and publishes a Position; a size that arrives
// first is kept until the anchor reports.
func (c *Coordinator) OnContentLaidOut(gen uint64, s Size) {
	if !c.current(gen, "content") {
		return
	}

	c.content = s.NonNegative()
	c.hasContent = true

	if c.hasAnchor {
		c.recompute()
	}
}

// Remeasure asks the current anchor to measure itself again, e.g. after a
// scroll. The resulting report recomputes without waiting for the content.
func (c *Coordinator) Remeasure() {
	if c.phase.Get() == Closed {
		return
	}
	c.measureAnchor()
}

// RefreshViewport re-reads the viewport and recomputes if Positioned.
// Call it on window resize or rotation.
func (c *Coordinator) RefreshViewport() {
	if c.phase.Get() == Positioned {
		c.recompute()
	}
}

// SetOptions replaces the placement configuration of the open cycle and
// recomputes if Positioned. While Closed it does nothing; the next Open
// supplies its own Options.
func (c *Coordinator) SetOptions(opts Options) {
	if c.phase.Get() == Closed {
		debug.Log("%s: SetOptions ignored while closed", c.name)
		return
	}
	c.opts = opts
	if c.phase.Get() == Positioned {
		c.recompute()
	}
}

// Phase returns the current phase.
func (c *Coordinator) Phase() Phase {
	return c.phase.Get()
}

// Generation returns the tag of the current open cycle. Callers that
// deliver measurements through OnAnchorMeasured or OnContentLaidOut pass it
// back so late reports can be told apart.
func (c *Coordinator) Generation() uint64 {
	return c.generation
}

// Options returns the configuration of the current cycle.
func (c *Coordinator) Options() Options {
	return c.opts
}

// Position returns the last published position. ok is false unless the
// Coordinator is Positioned.
func (c *Coordinator) Position() (p Position, ok bool) {
	if c.phase.Get() != Positioned {
		return Position{}, false
	}
	return c.position.Get(), true
}

// Subscribe registers fn to receive every published Position.
func (c *Coordinator) Subscribe(fn func(Position)) Unbind {
	return c.position.Bind(fn)
}

// OnPhaseChange registers fn to receive every phase transition.
func (c *Coordinator) OnPhaseChange(fn func(Phase)) Unbind {
	return c.phase.Bind(fn)
}

// current reports whether a measurement tagged gen belongs to the open cycle.
func (c *Coordinator) current(gen uint64, what string) bool {
	if phase := c.phase.Get(); phase == Closed {
		debug.Log("%s: dropped %s report for generation %d while closed", c.name, what, gen)
		return false
	}
	if gen != c.generation {
		debug.Log("%s: dropped stale %s report (generation %d, current %d)", c.name, what, gen, c.generation)
		return false
	}
	return true
}

func (c *Coordinator) measureAnchor() {
	if c.anchor == nil {
		debug.Log("%s: no anchor to measure", c.name)
		return
	}
	gen := c.generation
	c.anchor.Measure(func(r Rect) {
		c.OnAnchorMeasured(gen, r)
	})
}

func (c *Coordinator) mount() {
	if c.mounted || c.renderer == nil {
		return
	}
	c.mounted = true
	gen := c.generation
	debug.Log("%s: mounting content for generation %d", c.name, gen)
	c.renderer.Mount(func(s Size) {
		c.OnContentLaidOut(gen, s)
	})
}

// recompute runs the resolver on the latest measurements and publishes the
// result. Phase and position bindings fire together after both are updated.
func (c *Coordinator) recompute() {
	pos := Compute(c.anchorRect, c.content, c.viewport.Viewport(), c.opts)
	debug.Log("%s: positioned %s (anchor=%+v content=%+v)", c.name, pos, c.anchorRect, c.content)

	c.batch.Batch(func() {
		c.position.Set(pos)
		c.setPhase(Positioned)
	})
}

func (c *Coordinator) setPhase(p Phase) {
	if c.phase.Get() == p {
		return
	}
	c.phase.Set(p)
}
