package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	float "github.com/grindlemire/go-float"
)

// positionJSON is the -json output of compute.
type positionJSON struct {
	Placement string     `json:"placement"`
	Top       float64    `json:"top"`
	Left      float64    `json:"left"`
	Fits      bool       `json:"fits"`
	Arrow     *arrowJSON `json:"arrow,omitempty"`
}

type arrowJSON struct {
	Top      float64 `json:"top"`
	Left     float64 `json:"left"`
	Rotation float64 `json:"rotation"`
}

// runCompute implements the compute subcommand.
func runCompute(args []string, cfg config, out io.Writer) error {
	a, err := parsePlacementArgs("compute", args, cfg, out)
	if errors.Is(err, errHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	vp := a.viewportFor()
	pos := float.Compute(a.anchor, a.content, vp, a.opts)

	if !a.json {
		_, err := fmt.Fprintln(out, pos)
		return err
	}

	res := positionJSON{
		Placement: a.opts.Placement.String(),
		Top:       pos.Top,
		Left:      pos.Left,
		Fits:      vp.Bounds().ContainsRect(pos.Rect(a.content)),
	}
	if pos.Arrow != nil {
		res.Arrow = &arrowJSON{Top: pos.Arrow.Top, Left: pos.Arrow.Left, Rotation: pos.Arrow.Rotation}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encoding position: %w", err)
	}
	return nil
}

// viewportFor returns the -viewport size, or the terminal size when the flag
// was not given.
func (a *placementArgs) viewportFor() float.Viewport {
	if a.hasViewport {
		return float.Viewport{Width: a.viewport.Width, Height: a.viewport.Height, Padding: a.padding}
	}
	return float.NewTerminalViewport(int(os.Stdout.Fd()), a.padding).Viewport()
}

// runPlacements implements the placements subcommand.
func runPlacements(out io.Writer) {
	for _, p := range float.Placements() {
		fmt.Fprintln(out, p)
	}
}
