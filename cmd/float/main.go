// Package main provides the float CLI for computing and previewing
// floating-element positions.
//
// Usage:
//
//	float compute [flags]     Print the position of content next to an anchor
//	float preview [flags]     Draw the placement as text
//	float placements          List placement names
//	float help                Show help
//
// Examples:
//
//	float compute -anchor 100,200,50,30 -content 120,60 -viewport 400,800 -padding 8 -offset 8
//	float compute -anchor 380,200,50,30 -content 120,60 -viewport 400,800 -json
//	float preview -anchor 10,3,8,3 -content 20,4 -placement bottom-start -arrow 1
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-float/internal/debug"
)

const version = "0.1.0"

const usage = `float - position floating content next to an anchor

Usage:
  float <command> [flags]

Commands:
  compute     Print the computed position
  preview     Draw the anchor, content and viewport as text
  placements  List the placement names
  version     Print version information
  help        Show this help message

Flags (compute, preview):
  -anchor x,y,w,h     Anchor rectangle (required)
  -content w,h        Content size (required)
  -viewport w,h       Viewport size (default: current terminal size)
  -placement name     Placement, e.g. top, bottom-start, right-end
  -padding n          Minimum distance from the viewport edges
  -offset n           Gap between anchor and content
  -arrow n            Arrow size; 0 disables the arrow
  -json               Print JSON (compute only)
  -watch              Redraw on terminal resize until interrupted (preview only)

Environment:
  FLOAT_PLACEMENT, FLOAT_OFFSET, FLOAT_PADDING, FLOAT_ARROW set flag
  defaults. FLOAT_DEBUG names a debug log file. A .env file in the working
  directory is loaded first if present.

Examples:
  float compute -anchor 100,200,50,30 -content 120,60 -viewport 400,800 -offset 8
  float preview -anchor 10,3,8,3 -content 20,4 -placement bottom-start -arrow 1
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	cfg, err := loadConfig(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Debug != "" {
		if err := debug.Init(cfg.Debug); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer debug.Close()
	}

	switch command {
	case "compute":
		err = runCompute(args, cfg, os.Stdout)
	case "preview":
		err = runPreview(args, cfg, os.Stdout)
	case "placements":
		runPlacements(os.Stdout)
	case "version":
		fmt.Printf("float version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		debug.Close()
		os.Exit(1)
	}
}
