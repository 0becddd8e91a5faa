// Package float positions floating content (tooltips, popovers, dropdown
// menus) next to an anchor element and keeps it inside the viewport.
//
// Two layers are provided. Compute is a pure function: given the anchor's
// rectangle, the content's size, a Viewport and Options it returns the
// content's top-left corner and, optionally, an arrow pointing back at the
// anchor. Content that would overflow is clamped to the viewport padding on
// each axis; it is never flipped to the opposite side.
//
//	pos := float.Compute(
//	    float.NewRect(100, 200, 50, 30), // anchor
//	    float.NewSize(120, 60),          // content
//	    float.Viewport{Width: 400, Height: 800, Padding: 8},
//	    float.Options{Placement: float.Bottom, Offset: 8},
//	)
//	// pos.Top == 238, pos.Left == 65
//
// A Coordinator drives Compute for UI toolkits where measuring is
// asynchronous. It asks an Anchor for its rectangle, mounts the content
// through a Renderer to learn its size, and publishes a Position once both
// are known:
//
//	c, err := float.NewCoordinator(viewport, float.WithRenderer(r))
//	if err != nil {
//	    return err
//	}
//	c.Open(anchor, float.Options{Placement: float.TopStart, Offset: 4})
//	...
//	c.Close()
//
// Measurements from a cycle that was closed are recognised by their
// generation and ignored, so a slow callback can never move content that
// belongs to a newer cycle.
//
// Debug logging goes to the file named by FLOAT_DEBUG.
package float
