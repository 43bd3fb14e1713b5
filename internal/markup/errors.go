package markup

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument is returned when the source holds no element.
var ErrEmptyDocument = errors.New("markup: document has no root element")

// ErrMultipleRoots is returned when a second top-level element appears.
var ErrMultipleRoots = errors.New("markup: document has more than one root element")

// ParseError describes why a markup source could not be turned into a tree.
type ParseError struct {
	Path string
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	loc := e.Path
	if loc == "" {
		loc = "<input>"
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", loc, e.Msg)
	}
	return fmt.Sprintf("%s: %v", loc, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
