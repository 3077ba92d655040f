package colorterm

import (
	"errors"
	"fmt"
)

// Component names reported by ParseError.
const (
	ComponentRed   = "red"
	ComponentGreen = "green"
	ComponentBlue  = "blue"
)

var componentNames = [3]string{ComponentRed, ComponentGreen, ComponentBlue}

// ErrUnknownFormat is returned by Parse when the input is neither decimal nor hex RGB text.
var ErrUnknownFormat = errors.New("unknown color format")

// ParseError reports which RGB component of an input could not be parsed.
type ParseError struct {
	Component string // "red", "green" or "blue"
	Input     string // the text that was parsed
	Err       error  // underlying strconv error, nil when the component is missing
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("missing %s component in '%s'", e.Component, e.Input)
	}
	return fmt.Sprintf("unable to parse %s component for '%s': %v", e.Component, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
