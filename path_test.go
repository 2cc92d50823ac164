package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_normalizePath(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{"", "/"},
		{"/", "/"},
		{"//", "/"},
		{"a/b", "/a/b"},
		{"/a/b", "/a/b"},
		{"//a///b//", "/a/b/"},
		{"/users//:id", "/users/:id"},
		{"/files//*filepath", "/files/*filepath"},
		{"/re/<a//b>//c", "/re/<a//b>/c"},
		{"/re/:p<[/]{2}>//x", "/re/:p<[/]{2}>/x"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, normalizePath(test.path), test.path)
	}
}

func Test_cleanPath(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{"", "/"},
		{"/", "/"},
		{"abc", "/abc"},
		{"/abc/", "/abc/"},
		{"/a//b", "/a/b"},
		{"/a/./b", "/a/b"},
		{"/a/../b/", "/b/"},
		{"/../a", "/a"},
		{"/a/..", "/"},
		{"/a/../", "/"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, cleanPath(test.path), test.path)
	}
}
