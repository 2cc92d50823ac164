package radix

import (
	"fmt"
	"strings"
)

func (t nodeType) String() string {
	switch t {
	case root:
		return "root"
	case static:
		return "static"
	case regex:
		return "regex"
	case param:
		return "param"
	case catchAll:
		return "catchAll"
	default:
		return "unknown"
	}
}

// String renders the tree, one node per line, children indented under their
// parent in lookup priority order.
func (t *Tree[T]) String() string {
	sb := new(strings.Builder)
	t.root.dump(sb, 0)

	return sb.String()
}

func (n *node[T]) dump(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.nType.String())

	if n.nType != root {
		fmt.Fprintf(sb, " %q", n.name)
	}

	if n.re != nil {
		fmt.Fprintf(sb, " <%s>", n.re.source)
	}

	if n.data != nil {
		fmt.Fprintf(sb, " => %s", n.data.pattern)
	}

	sb.WriteByte('\n')

	for _, child := range n.children {
		child.dump(sb, depth+1)
	}

	for _, child := range n.regexChildren {
		child.dump(sb, depth+1)
	}

	for _, child := range n.paramChildren {
		child.dump(sb, depth+1)
	}

	if n.catchAll != nil {
		n.catchAll.dump(sb, depth+1)
	}
}
