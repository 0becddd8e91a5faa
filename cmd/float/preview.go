package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	float "github.com/grindlemire/go-float"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// runPreview implements the preview subcommand.
func runPreview(args []string, cfg config, out io.Writer) error {
	a, err := parsePlacementArgs("preview", args, cfg, out)
	if errors.Is(err, errHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if a.json {
		return errors.New("-json is not supported by preview")
	}

	if !a.watch {
		return drawPreview(out, a, a.viewportFor())
	}
	if a.hasViewport {
		return errors.New("-watch follows the terminal size and cannot be combined with -viewport")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return watchPreview(ctx, out, a, float.NewTerminalViewport(int(os.Stdout.Fd()), a.padding))
}

// watchPreview redraws the preview each time the terminal is resized until
// ctx is done.
func watchPreview(ctx context.Context, out io.Writer, a *placementArgs, tv *float.TerminalViewport) error {
	resizes := tv.Watch(ctx)

	fmt.Fprint(out, clearScreen)
	if err := drawPreview(out, a, tv.Viewport()); err != nil {
		return err
	}
	for vp := range resizes {
		fmt.Fprint(out, clearScreen)
		if err := drawPreview(out, a, vp); err != nil {
			return err
		}
	}
	return nil
}

func drawPreview(out io.Writer, a *placementArgs, vp float.Viewport) error {
	fmt.Fprintln(out, float.Preview(a.anchor, a.content, vp, a.opts))
	_, err := fmt.Fprintln(out, float.Compute(a.anchor, a.content, vp, a.opts))
	return err
}
