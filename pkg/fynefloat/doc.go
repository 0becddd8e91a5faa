// Package fynefloat connects float's Coordinator to fyne widgets.
//
// Anchor measures a fyne.CanvasObject in canvas coordinates, Viewport reports
// the size of the canvas an object lives on, and Renderer shows floating
// content inside a layer container that has no layout. Popover wires all
// three together:
//
//	layer := container.NewWithoutLayout()
//	root := container.NewStack(mainContent, layer)
//	pop, err := fynefloat.NewPopover(layer, menu, root, float.Options{
//	    Placement: float.BottomStart,
//	    Offset:    4,
//	})
//	button.OnTapped = func() { pop.ShowAt(button) }
//
// All calls must be made on fyne's UI goroutine.
package fynefloat
