package float

import (
	"context"
	"os"
	"os/signal"

	"github.com/grindlemire/go-float/internal/debug"
)

// Fallback terminal dimensions used when the size cannot be queried.
const (
	DefaultTerminalWidth  = 80
	DefaultTerminalHeight = 24
)

// TerminalViewport is a ViewportProvider backed by a terminal. Its units are
// character cells, so anchors and content measured in cells can be positioned
// directly.
type TerminalViewport struct {
	fd int

	// Padding is the number of cells kept clear at every edge.
	Padding float64
}

// NewTerminalViewport creates a viewport for the terminal attached to fd,
// typically int(os.Stdout.Fd()).
func NewTerminalViewport(fd int, padding float64) *TerminalViewport {
	return &TerminalViewport{fd: fd, Padding: padding}
}

// Viewport queries the terminal size. It falls back to 80x24 when fd is not
// a terminal.
func (t *TerminalViewport) Viewport() Viewport {
	width, height, err := getTerminalSize(t.fd)
	if err != nil || width <= 0 || height <= 0 {
		debug.Log("TerminalViewport: size query on fd %d failed (%v), using %dx%d",
			t.fd, err, DefaultTerminalWidth, DefaultTerminalHeight)
		width, height = DefaultTerminalWidth, DefaultTerminalHeight
	}
	return Viewport{Width: float64(width), Height: float64(height), Padding: t.Padding}
}

// Watch sends the new viewport every time the terminal is resized, until ctx
// is done, and then closes the channel. Resizes that arrive while the
// receiver is busy are coalesced. On platforms without resize signals the
// channel only closes.
//
// A Coordinator is not safe for concurrent use, so receive from the channel
// on the UI goroutine and call RefreshViewport there.
func (t *TerminalViewport) Watch(ctx context.Context) <-chan Viewport {
	out := make(chan Viewport)
	sig := make(chan os.Signal, 1)
	notifyResize(sig)

	go func() {
		defer close(out)
		defer signal.Stop(sig)

		for {
			select {
			case <-ctx.Done():
				return
			case <-sig:
			}

			vp := t.Viewport()
			debug.Log("TerminalViewport: resized to %gx%g", vp.Width, vp.Height)
			select {
			case out <- vp:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
