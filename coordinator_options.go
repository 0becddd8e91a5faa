package float

import (
	"errors"
	"strings"
)

// CoordinatorOption is a functional option for configuring a Coordinator.
type CoordinatorOption func(*Coordinator) error

// WithRenderer sets the renderer that mounts, shows and hides the content.
// Without one, positions are only published to Subscribe callbacks and
// content sizes must be delivered through OnContentLaidOut.
func WithRenderer(r Renderer) CoordinatorOption {
	return func(c *Coordinator) error {
		if r == nil {
			return errors.New("renderer must not be nil")
		}
		c.renderer = r
		return nil
	}
}

// WithName sets the tag used for this coordinator in debug log lines.
// Default is "float".
func WithName(name string) CoordinatorOption {
	return func(c *Coordinator) error {
		name = strings.TrimSpace(name)
		if name == "" {
			return errors.New("name must not be empty")
		}
		c.name = name
		return nil
	}
}
