// Copyright 2020-present Sergio Andres Virviescas Santana, fasthttp
// Use of this source code is governed by a BSD-style license that can be found
// in the LICENSE file.

// Package radix is a compressed radix tree for HTTP route patterns with named
// params, regex constrained params and catch-all wildcards.
package radix

const (
	root nodeType = iota
	static
	regex
	param
	catchAll
)

// Pattern delimiters.
const (
	paramDelim    = ':'
	catchAllDelim = '*'
	regexStart    = '<'
	regexEnd      = '>'
)
