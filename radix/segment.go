package radix

import "strings"

// parseSegments splits a route pattern into its segments, first segment first.
//
// Syntax:
//
//	/users/:id         named param, stops at the next '/'
//	/items/:id<\d+>    named param constrained by a regex
//	/static/<.*\.png>  unnamed regex
//	/files/*path       catch-all, consumes the rest of the pattern
func parseSegments(pattern string) ([]segment, error) {
	if len(pattern) == 0 {
		return nil, &ParseError{Pattern: pattern, Err: ErrEmptyPattern}
	}

	segments := make([]segment, 0, 4)

	for i := 0; i < len(pattern); {
		switch pattern[i] {
		case paramDelim:
			end := i + 1
			for end < len(pattern) && !isParamNameEnd(pattern[end]) {
				end++
			}

			if end == i+1 {
				return nil, &ParseError{Pattern: pattern, Offset: i, Err: ErrMissingParamName}
			}

			name := pattern[i+1 : end]

			if end < len(pattern) && pattern[end] == regexStart {
				re, next, err := scanRegex(pattern, end)
				if err != nil {
					return nil, err
				}

				segments = append(segments, segment{kind: regexSegment, name: name, value: re})
				i = next

				continue
			}

			segments = append(segments, segment{kind: paramSegment, name: name})
			i = end

		case catchAllDelim:
			// Nothing after a catch-all is parsed
			segments = append(segments, segment{kind: catchAllSegment, name: pattern[i+1:]})
			i = len(pattern)

		case regexStart:
			re, next, err := scanRegex(pattern, i)
			if err != nil {
				return nil, err
			}

			segments = append(segments, segment{kind: regexSegment, value: re})
			i = next

		default:
			end := i + 1
			for end < len(pattern) && !isWildStart(pattern[end]) {
				end++
			}

			segments = append(segments, segment{kind: staticSegment, value: pattern[i:end]})
			i = end
		}
	}

	return segments, nil
}

// scanRegex reads the regex delimited by '<' at start and the first '>'.
// It returns the regex source and the index right after the closing '>'.
func scanRegex(pattern string, start int) (string, int, error) {
	end := strings.IndexByte(pattern[start+1:], regexEnd)

	switch {
	case end < 0:
		return "", 0, &ParseError{Pattern: pattern, Offset: start, Err: ErrUnterminatedRegex}
	case end == 0:
		return "", 0, &ParseError{Pattern: pattern, Offset: start, Err: ErrEmptyRegex}
	}

	return pattern[start+1 : start+1+end], start + end + 2, nil
}

func isParamNameEnd(c byte) bool {
	return c == '/' || c == regexStart || c == catchAllDelim
}

func isWildStart(c byte) bool {
	return c == paramDelim || c == catchAllDelim || c == regexStart
}
