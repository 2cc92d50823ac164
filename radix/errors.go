package radix

import (
	"errors"
	"fmt"
)

// Route registration errors. Every error returned by Tree.Add is a
// *RouteError whose Kind is one of these.
var (
	ErrInvalidPath  = errors.New("invalid path")
	ErrInvalidRegex = errors.New("invalid regex")
	ErrDuplicate    = errors.New("duplicate route")
)

// Pattern syntax errors, wrapped by *ParseError.
var (
	ErrEmptyPattern      = errors.New("empty pattern")
	ErrMissingParamName  = errors.New("missing param name")
	ErrUnterminatedRegex = errors.New("unterminated regex")
	ErrEmptyRegex        = errors.New("empty regex")
)

// ParseError reports a malformed route pattern.
type ParseError struct {
	Pattern string
	Offset  int
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d in pattern '%s'", e.Err, e.Offset, e.Pattern)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RouteError is returned when a route can not be added to the tree.
// The tree is left untouched.
type RouteError struct {
	Kind  error
	Path  string
	Regex string // only set when Kind is ErrInvalidRegex
	Err   error

	// Registered pattern a duplicate collides with.
	Conflict string
}

func (e *RouteError) Error() string {
	switch {
	case e.Kind == ErrInvalidRegex:
		return fmt.Sprintf("%s '%s' in path '%s': %s", e.Kind, e.Regex, e.Path, e.Err)
	case e.Conflict != "" && e.Conflict != e.Path:
		return fmt.Sprintf("%s '%s': conflicts with '%s'", e.Kind, e.Path, e.Conflict)
	case e.Err != nil:
		return fmt.Sprintf("%s '%s': %s", e.Kind, e.Path, e.Err)
	default:
		return fmt.Sprintf("%s '%s'", e.Kind, e.Path)
	}
}

func (e *RouteError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}
