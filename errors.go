package router

import "errors"

var (
	// ErrEmptyMethod is returned when registering a route without method.
	ErrEmptyMethod = errors.New("method must not be empty")

	// ErrNilHandler is returned when registering a nil handler.
	ErrNilHandler = errors.New("handler must not be nil")
)
