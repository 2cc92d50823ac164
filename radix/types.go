package radix

import (
	"regexp"
	"sync"
)

type nodeType uint8

type node[T any] struct {
	nType nodeType

	// Shared literal prefix for static nodes, param name for param, regex
	// and catch-all nodes (may be empty when unnamed).
	name string

	// First byte of each static child, parallel to children.
	indices  []byte
	children []*node[T]

	paramChildren []*node[T]
	regexChildren []*node[T]
	catchAll      *node[T]

	re   *pathRegex
	data *leaf[T]
}

// leaf is the payload of a node where a registered route terminates.
type leaf[T any] struct {
	value   T
	pattern string
}

type pathRegex struct {
	source string
	re     *regexp.Regexp
}

type segmentKind uint8

const (
	staticSegment segmentKind = iota
	paramSegment
	catchAllSegment
	regexSegment
)

type segment struct {
	kind  segmentKind
	name  string
	value string // literal text or regex source

	re *pathRegex
}

// Tree is a radix tree of route patterns to values.
//
// Build it with Add and then share it for lookups. Matches is safe for
// concurrent use as long as no Add runs at the same time.
type Tree[T any] struct {
	root *node[T]
	size int
}

// Param is a single path parameter bound by a lookup.
type Param struct {
	Key   string
	Value string
}

// Params is the ordered list of parameters bound by a lookup, in the order
// they appear in the path.
type Params []Param

// Match is the result of a successful lookup.
type Match[T any] struct {
	Params  Params
	Value   T
	Pattern string
}

type span struct {
	name  string
	value string
}

type binder struct {
	spans []span
}

var binderPool = sync.Pool{
	New: func() any {
		return &binder{spans: make([]span, 0, 8)}
	},
}
