//go:build !unix && !windows

package float

import (
	"errors"
	"os"
)

func getTerminalSize(fd int) (width, height int, err error) {
	return 0, 0, errors.New("terminal size not supported on this platform")
}

func notifyResize(chan<- os.Signal) {}
