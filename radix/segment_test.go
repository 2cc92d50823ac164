package radix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseSegments(t *testing.T) {
	segments, err := parseSegments(`/a/:b/:re<\d+>/:ui/ef/<\d+>/*jkl`)
	require.NoError(t, err)

	assert.Equal(t, []segment{
		{kind: staticSegment, value: "/a/"},
		{kind: paramSegment, name: "b"},
		{kind: staticSegment, value: "/"},
		{kind: regexSegment, name: "re", value: `\d+`},
		{kind: staticSegment, value: "/"},
		{kind: paramSegment, name: "ui"},
		{kind: staticSegment, value: "/ef/"},
		{kind: regexSegment, value: `\d+`},
		{kind: staticSegment, value: "/"},
		{kind: catchAllSegment, name: "jkl"},
	}, segments)
}

func Test_parseSegmentsCatchAll(t *testing.T) {
	tests := []struct {
		pattern string
		want    []segment
	}{
		{
			pattern: "*",
			want:    []segment{{kind: catchAllSegment}},
		},
		{
			pattern: "/files/*path",
			want: []segment{
				{kind: staticSegment, value: "/files/"},
				{kind: catchAllSegment, name: "path"},
			},
		},
		{
			// nothing after the catch-all is parsed
			pattern: "/files/*path/:id<x",
			want: []segment{
				{kind: staticSegment, value: "/files/"},
				{kind: catchAllSegment, name: "path/:id<x"},
			},
		},
		{
			pattern: `/static/<.*\.png>`,
			want: []segment{
				{kind: staticSegment, value: "/static/"},
				{kind: regexSegment, value: `.*\.png`},
			},
		},
		{
			pattern: "/:a*rest",
			want: []segment{
				{kind: staticSegment, value: "/"},
				{kind: paramSegment, name: "a"},
				{kind: catchAllSegment, name: "rest"},
			},
		},
	}

	for _, test := range tests {
		segments, err := parseSegments(test.pattern)
		require.NoError(t, err, test.pattern)
		assert.Equal(t, test.want, segments, test.pattern)
	}
}

func Test_parseSegmentsErrors(t *testing.T) {
	tests := []struct {
		pattern string
		offset  int
		err     error
	}{
		{pattern: "", offset: 0, err: ErrEmptyPattern},
		{pattern: "/a/:", offset: 3, err: ErrMissingParamName},
		{pattern: "/a/:/b", offset: 3, err: ErrMissingParamName},
		{pattern: "/a/:<\\d+>", offset: 3, err: ErrMissingParamName},
		{pattern: "/a/:id<\\d+", offset: 6, err: ErrUnterminatedRegex},
		{pattern: "/a/<\\d+", offset: 3, err: ErrUnterminatedRegex},
		{pattern: "/a/<>", offset: 3, err: ErrEmptyRegex},
		{pattern: "/a/:id<>/b", offset: 6, err: ErrEmptyRegex},
	}

	for _, test := range tests {
		_, err := parseSegments(test.pattern)
		require.Error(t, err, test.pattern)
		assert.ErrorIs(t, err, test.err, test.pattern)

		var perr *ParseError
		require.True(t, errors.As(err, &perr), test.pattern)
		assert.Equal(t, test.offset, perr.Offset, test.pattern)
		assert.Equal(t, test.pattern, perr.Pattern)
	}
}

func Test_longestCommonPrefix(t *testing.T) {
	assert.Equal(t, 1, longestCommonPrefix("abc", "a"))
	assert.Equal(t, 2, longestCommonPrefix("abc", "ab"))
	assert.Equal(t, 0, longestCommonPrefix("abc", "dbc"))
	assert.Equal(t, 3, longestCommonPrefix("abc", "abc"))
	assert.Equal(t, 0, longestCommonPrefix("", "abc"))
}

func Test_segmentEndIndex(t *testing.T) {
	assert.Equal(t, 3, segmentEndIndex("abc/def"))
	assert.Equal(t, 3, segmentEndIndex("abc"))
	assert.Equal(t, 0, segmentEndIndex("/abc"))
}

func Test_compileRegexIsAnchored(t *testing.T) {
	re, err := compileRegex(`\d+`)
	require.NoError(t, err)

	assert.Equal(t, 3, re.prefixLen("123/abc"))
	assert.Equal(t, -1, re.prefixLen("abc/123"))
	assert.Equal(t, `\d+`, re.String())

	// alternations must stay anchored as a whole
	re, err = compileRegex(`a|b`)
	require.NoError(t, err)
	assert.Equal(t, -1, re.prefixLen("xb"))

	_, err = compileRegex(`(`)
	assert.Error(t, err)
}
