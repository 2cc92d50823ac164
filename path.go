package router

import (
	"path"
	"strings"
)

// normalizePath forces a leading slash and merges repeated slashes.
// Regex constraints are copied verbatim.
func normalizePath(p string) string {
	if len(p) > 0 && p[0] == '/' && !strings.Contains(p, "//") {
		return p
	}

	var sb strings.Builder
	sb.Grow(len(p) + 1)

	if len(p) == 0 || p[0] != '/' {
		sb.WriteByte('/')
	}

	inRegex := false

	for i := 0; i < len(p); i++ {
		c := p[i]

		switch {
		case inRegex:
			inRegex = c != '>'
		case c == '<':
			inRegex = true
		case c == '/' && i > 0 && p[i-1] == '/':
			continue
		}

		sb.WriteByte(c)
	}

	return sb.String()
}

// cleanPath is the URL version of path.Clean, it returns a canonical URL path
// for p, eliminating . and .. elements and repeated slashes.
// A trailing slash is kept.
func cleanPath(p string) string {
	if len(p) == 0 {
		return "/"
	}

	cleaned := path.Clean("/" + p)

	if p[len(p)-1] == '/' && cleaned != "/" {
		cleaned += "/"
	}

	return cleaned
}
