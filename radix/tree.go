package radix

import (
	"slices"

	"github.com/valyala/bytebufferpool"
)

// New returns an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{
		root: newNode[T](root, ""),
	}
}

// Add registers value under the given route pattern.
//
// The pattern is parsed and its regexes compiled before the tree is touched,
// so a failed Add leaves the tree as it was. Registering the same pattern
// twice, or a pattern that only differs from a registered one by its param
// names, fails with ErrDuplicate and keeps the first value.
//
// WARNING: Not concurrency-safe!
func (t *Tree[T]) Add(pattern string, value T) error {
	segments, err := parseSegments(pattern)
	if err != nil {
		return &RouteError{Kind: ErrInvalidPath, Path: pattern, Err: err}
	}

	for i := range segments {
		if segments[i].kind != regexSegment {
			continue
		}

		re, err := compileRegex(segments[i].value)
		if err != nil {
			return &RouteError{Kind: ErrInvalidRegex, Path: pattern, Regex: segments[i].value, Err: err}
		}

		segments[i].re = re
	}

	// The insertion pops segments from the tail
	slices.Reverse(segments)

	// Names do not take part in matching, a pattern differing from a
	// registered one only by its names could never be reached
	if l := t.root.lookup(segments); l != nil {
		return &RouteError{Kind: ErrDuplicate, Path: pattern, Conflict: l.pattern}
	}

	if !t.root.insert(segments, &leaf[T]{value: value, pattern: pattern}) {
		return &RouteError{Kind: ErrDuplicate, Path: pattern}
	}

	t.size++

	return nil
}

// Matches looks up the value registered for path. Static segments win over
// regex segments, which win over params, which win over catch-alls.
// An empty path never matches.
func (t *Tree[T]) Matches(path string) (Match[T], bool) {
	if len(path) == 0 {
		return Match[T]{}, false
	}

	b := acquireBinder()
	defer releaseBinder(b)

	l := t.root.match(path, b)
	if l == nil {
		return Match[T]{}, false
	}

	return Match[T]{
		Params:  b.params(),
		Value:   l.value,
		Pattern: l.pattern,
	}, true
}

// FindCaseInsensitivePath makes a case-insensitive lookup of the given path
// and writes the case-corrected path into buf.
// It can optionally also fix trailing slashes.
// It returns whether the lookup was successful, buf is left untouched if not.
func (t *Tree[T]) FindCaseInsensitivePath(path string, fixTrailingSlash bool, buf *bytebufferpool.ByteBuffer) bool {
	if len(path) == 0 {
		return false
	}

	start := len(buf.B)

	if t.root.findInsensitive(path, buf) {
		return true
	}

	buf.B = buf.B[:start]

	if !fixTrailingSlash || path == "/" {
		return false
	}

	if path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	} else {
		path += "/"
	}

	if t.root.findInsensitive(path, buf) {
		return true
	}

	buf.B = buf.B[:start]

	return false
}

// Len returns the number of registered routes.
func (t *Tree[T]) Len() int {
	return t.size
}
