package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	float "github.com/grindlemire/go-float"
)

// placementArgs is the parsed command line shared by compute and preview.
type placementArgs struct {
	anchor   float.Rect
	content  float.Size
	viewport float.Size
	padding  float64
	opts     float.Options
	json     bool
	watch    bool

	hasAnchor   bool
	hasContent  bool
	hasViewport bool
}

// errHelp is returned after usage was printed for -h.
var errHelp = errors.New("help requested")

func parsePlacementArgs(name string, args []string, cfg config, out io.Writer) (*placementArgs, error) {
	a := &placementArgs{opts: cfg.options()}
	var arrow float64

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Func("anchor", "anchor rectangle as x,y,w,h", func(s string) error {
		r, err := parseRect(s)
		a.anchor, a.hasAnchor = r, err == nil
		return err
	})
	fs.Func("content", "content size as w,h", func(s string) error {
		sz, err := parseSize(s)
		a.content, a.hasContent = sz, err == nil
		return err
	})
	fs.Func("viewport", "viewport size as w,h", func(s string) error {
		sz, err := parseSize(s)
		a.viewport, a.hasViewport = sz, err == nil
		return err
	})
	fs.TextVar(&a.opts.Placement, "placement", cfg.Placement, "placement name")
	fs.Float64Var(&a.padding, "padding", cfg.Padding, "minimum distance from the viewport edges")
	fs.Float64Var(&a.opts.Offset, "offset", cfg.Offset, "gap between anchor and content")
	fs.Float64Var(&arrow, "arrow", cfg.Arrow, "arrow size, 0 for none")
	fs.BoolVar(&a.json, "json", false, "print JSON")
	fs.BoolVar(&a.watch, "watch", false, "redraw on terminal resize")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(out)
			fs.PrintDefaults()
			return nil, errHelp
		}
		return nil, fmt.Errorf("parsing %s flags: %w", name, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if !a.hasAnchor {
		return nil, errors.New("-anchor is required")
	}
	if !a.hasContent {
		return nil, errors.New("-content is required")
	}

	a.opts.ArrowSize = arrow
	a.opts.ShowArrow = arrow > 0
	return a, nil
}

// parseRect parses "x,y,w,h".
func parseRect(s string) (float.Rect, error) {
	n, err := parseNumbers(s, 4)
	if err != nil {
		return float.Rect{}, err
	}
	if n[2] < 0 || n[3] < 0 {
		return float.Rect{}, fmt.Errorf("negative size in %q", s)
	}
	return float.NewRect(n[0], n[1], n[2], n[3]), nil
}

// parseSize parses "w,h".
func parseSize(s string) (float.Size, error) {
	n, err := parseNumbers(s, 2)
	if err != nil {
		return float.Size{}, err
	}
	if n[0] < 0 || n[1] < 0 {
		return float.Size{}, fmt.Errorf("negative size in %q", s)
	}
	return float.NewSize(n[0], n[1]), nil
}

func parseNumbers(s string, want int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d comma-separated numbers, got %q", want, s)
	}

	nums := make([]float64, want)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", strings.TrimSpace(p), err)
		}
		nums[i] = v
	}
	return nums, nil
}
