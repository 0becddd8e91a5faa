//go:build windows

package float

import (
	"os"

	"golang.org/x/sys/windows"
)

// getTerminalSize returns the visible console window dimensions in cells.
func getTerminalSize(fd int) (width, height int, err error) {
	h := windows.Handle(fd)
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return 0, 0, err
	}

	width = int(info.Window.Right - info.Window.Left + 1)
	height = int(info.Window.Bottom - info.Window.Top + 1)
	return width, height, nil
}

// notifyResize does nothing; consoles do not signal resizes.
func notifyResize(chan<- os.Signal) {}
