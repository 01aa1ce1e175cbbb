package ansibanner

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by grid accessors when a coordinate falls
// outside the grid. Only effects that define wraparound (roll) translate
// coordinates back into range; everything else reports this error.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// EmptyTextError is returned when the text handed to the compositor has no
// printable, non-blank characters to draw.
type EmptyTextError struct {
	Text string
}

func (e *EmptyTextError) Error() string {
	return fmt.Sprintf("no renderable characters in %q", e.Text)
}

// ColorParseError describes a malformed `#RRGGBB` colour string.
type ColorParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ColorParseError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

func (e *ColorParseError) Unwrap() error { return e.Err }

// ConfigError reports an out-of-range or inconsistent configuration value.
// It is raised when a component is constructed, never at render time.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErrorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
