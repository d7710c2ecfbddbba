package palette

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable means the colour file could not be opened or read, or held no usable line
	ErrSourceUnavailable = errors.New("colour source unavailable")
	// ErrFieldCount means a line has fewer than the four R G B Name fields
	ErrFieldCount = errors.New("expected R G B Name")
)

// ParseError describes one malformed line of a colour file.
// The loader skips such lines and keeps going.
type ParseError struct {
	Line int    // 1-based
	Text string // raw line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// sourceError ties ErrSourceUnavailable to the offending path
type sourceError struct {
	Path string
	Err  error
}

func (e *sourceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", ErrSourceUnavailable, e.Path)
	}
	return fmt.Sprintf("%v: %s: %v", ErrSourceUnavailable, e.Path, e.Err)
}

func (e *sourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

func (e *sourceError) Unwrap() error {
	return e.Err
}
