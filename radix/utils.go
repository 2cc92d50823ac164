package radix

import (
	"regexp"
	"strings"
)

// longestCommonPrefix returns the length in bytes of the common prefix of a and b.
func longestCommonPrefix(a, b string) int {
	limit := min(len(a), len(b))

	i := 0
	for i < limit && a[i] == b[i] {
		i++
	}

	return i
}

// segmentEndIndex returns the index where the segment ends from the given path
func segmentEndIndex(path string) int {
	if end := strings.IndexByte(path, '/'); end >= 0 {
		return end
	}

	return len(path)
}

// compileRegex compiles a regex anchored at the start of the remaining path.
func compileRegex(source string) (*pathRegex, error) {
	re, err := regexp.Compile("^(?:" + source + ")")
	if err != nil {
		return nil, err
	}

	return &pathRegex{source: source, re: re}, nil
}

// prefixLen returns the length of the regex match at the start of path, or -1
// when there is none.
func (r *pathRegex) prefixLen(path string) int {
	loc := r.re.FindStringIndex(path)
	if loc == nil {
		return -1
	}

	return loc[1]
}

func (r *pathRegex) String() string {
	return r.source
}
