package radix

import (
	"strings"

	"github.com/valyala/bytebufferpool"
)

func newNode[T any](nType nodeType, name string) *node[T] {
	return &node[T]{nType: nType, name: name}
}

// findStaticChild returns the position of the static child starting with c.
func (n *node[T]) findStaticChild(c byte) int {
	for i, index := range n.indices {
		if index == c {
			return i
		}
	}

	return -1
}

func (n *node[T]) addStaticChild(child *node[T]) {
	n.indices = append(n.indices, child.name[0])
	n.children = append(n.children, child)
}

// insert adds the leaf under the given segments, which are stored last
// segment first. It returns false if the route is already registered.
func (n *node[T]) insert(segments []segment, l *leaf[T]) bool {
	if len(segments) == 0 {
		if n.data != nil {
			return false
		}

		n.data = l

		return true
	}

	seg := segments[len(segments)-1]
	segments = segments[:len(segments)-1]

	switch seg.kind {
	case staticSegment:
		return n.insertStatic(segments, seg.value, l)
	case paramSegment:
		return n.insertParam(segments, seg.name, l)
	case catchAllSegment:
		return n.insertCatchAll(seg.name, l)
	case regexSegment:
		return n.insertRegex(segments, seg.name, seg.re, l)
	default:
		panic("invalid segment kind")
	}
}

func (n *node[T]) insertStatic(segments []segment, name string, l *leaf[T]) bool {
	pos := n.findStaticChild(name[0])
	if pos < 0 {
		child := newNode[T](static, name)
		n.addStaticChild(child)

		return child.insert(segments, l)
	}

	child := n.children[pos]
	i := longestCommonPrefix(child.name, name)

	switch {
	case i < len(child.name):
		// Splits edge because has the same prefix
		child.split(i)

		if i < len(name) {
			sibling := newNode[T](static, name[i:])
			child.addStaticChild(sibling)

			return sibling.insert(segments, l)
		}

		return child.insert(segments, l)

	case i < len(name):
		// The child label is a prefix of the literal, the next level
		// resolves the remainder
		return child.insertStatic(segments, name[i:], l)

	default:
		return child.insert(segments, l)
	}
}

// split truncates the label to its first i bytes and moves everything the
// node held into a single static child labeled with the rest.
func (n *node[T]) split(i int) {
	suffix := &node[T]{
		nType:         static,
		name:          n.name[i:],
		indices:       n.indices,
		children:      n.children,
		paramChildren: n.paramChildren,
		regexChildren: n.regexChildren,
		catchAll:      n.catchAll,
		data:          n.data,
	}

	*n = node[T]{
		nType:    n.nType,
		name:     n.name[:i],
		indices:  []byte{suffix.name[0]},
		children: []*node[T]{suffix},
	}
}

func (n *node[T]) insertParam(segments []segment, name string, l *leaf[T]) bool {
	for _, child := range n.paramChildren {
		if child.name == name {
			return child.insert(segments, l)
		}
	}

	child := newNode[T](param, name)
	n.paramChildren = append(n.paramChildren, child)

	return child.insert(segments, l)
}

func (n *node[T]) insertCatchAll(name string, l *leaf[T]) bool {
	if n.catchAll != nil {
		return false
	}

	n.catchAll = newNode[T](catchAll, name)
	n.catchAll.data = l

	return true
}

func (n *node[T]) insertRegex(segments []segment, name string, re *pathRegex, l *leaf[T]) bool {
	for _, child := range n.regexChildren {
		if child.name == name && child.re.source == re.source {
			return child.insert(segments, l)
		}
	}

	child := newNode[T](regex, name)
	child.re = re
	n.regexChildren = append(n.regexChildren, child)

	return child.insert(segments, l)
}

// lookup walks the segments, stored last segment first, without creating
// nodes and returns the leaf of an already registered pattern with the same
// shape. Param and regex names are ignored, so /:a/x and /:b/x collide.
func (n *node[T]) lookup(segments []segment) *leaf[T] {
	if len(segments) == 0 {
		return n.data
	}

	seg := segments[len(segments)-1]
	segments = segments[:len(segments)-1]

	switch seg.kind {
	case staticSegment:
		return n.lookupStatic(segments, seg.value)

	case paramSegment:
		for _, child := range n.paramChildren {
			if l := child.lookup(segments); l != nil {
				return l
			}
		}

	case catchAllSegment:
		if n.catchAll != nil {
			return n.catchAll.data
		}

	case regexSegment:
		for _, child := range n.regexChildren {
			if child.re.source != seg.value {
				continue
			}

			if l := child.lookup(segments); l != nil {
				return l
			}
		}
	}

	return nil
}

func (n *node[T]) lookupStatic(segments []segment, text string) *leaf[T] {
	pos := n.findStaticChild(text[0])
	if pos < 0 {
		return nil
	}

	child := n.children[pos]

	switch {
	case !strings.HasPrefix(text, child.name):
		return nil
	case len(text) > len(child.name):
		return child.lookupStatic(segments, text[len(child.name):])
	default:
		return child.lookup(segments)
	}
}

// match walks the subtree looking for the leaf of path. Alternatives are
// tried static, regex, param and catch-all, and the first one that reaches a
// leaf wins. Bindings of a failed alternative are dropped before the next one.
func (n *node[T]) match(path string, b *binder) *leaf[T] {
	if len(path) == 0 {
		if n.catchAll != nil {
			b.push(n.catchAll.name, path)
			return n.catchAll.data
		}

		return n.data
	}

	mark := b.mark()

	if pos := n.findStaticChild(path[0]); pos >= 0 {
		child := n.children[pos]

		if strings.HasPrefix(path, child.name) {
			if l := child.match(path[len(child.name):], b); l != nil {
				return l
			}

			b.reset(mark)
		}
	}

	for _, child := range n.regexChildren {
		end := child.re.prefixLen(path)
		if end < 0 {
			continue
		}

		if len(child.name) > 0 {
			b.push(child.name, path[:end])
		}

		if l := child.match(path[end:], b); l != nil {
			return l
		}

		b.reset(mark)
	}

	if len(n.paramChildren) > 0 {
		end := segmentEndIndex(path)

		for _, child := range n.paramChildren {
			b.push(child.name, path[:end])

			if l := child.match(path[end:], b); l != nil {
				return l
			}

			b.reset(mark)
		}
	}

	if n.catchAll != nil {
		b.push(n.catchAll.name, path)
		return n.catchAll.data
	}

	return nil
}

// findInsensitive is like match but compares static labels case-insensitively
// and writes the corrected path into buf.
func (n *node[T]) findInsensitive(path string, buf *bytebufferpool.ByteBuffer) bool {
	if len(path) == 0 {
		return n.catchAll != nil || n.data != nil
	}

	mark := len(buf.B)

	for _, child := range n.children {
		if len(path) < len(child.name) || !strings.EqualFold(path[:len(child.name)], child.name) {
			continue
		}

		buf.WriteString(child.name) // nolint:errcheck

		if child.findInsensitive(path[len(child.name):], buf) {
			return true
		}

		buf.B = buf.B[:mark]
	}

	for _, child := range n.regexChildren {
		end := child.re.prefixLen(path)
		if end < 0 {
			continue
		}

		buf.WriteString(path[:end]) // nolint:errcheck

		if child.findInsensitive(path[end:], buf) {
			return true
		}

		buf.B = buf.B[:mark]
	}

	if len(n.paramChildren) > 0 {
		end := segmentEndIndex(path)

		for _, child := range n.paramChildren {
			buf.WriteString(path[:end]) // nolint:errcheck

			if child.findInsensitive(path[end:], buf) {
				return true
			}

			buf.B = buf.B[:mark]
		}
	}

	if n.catchAll != nil {
		buf.WriteString(path) // nolint:errcheck
		return true
	}

	return false
}
