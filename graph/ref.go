// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

// Package graph builds the directed reference graph over a project's
// documents: one edge per $ref, from the node that carries it to the
// node it names.
package graph

import (
	"path"
	"strings"
)

// ParseRef normalises a literal $ref string found in originURI into an
// absolute target URI and fragment pointer. Forms handled: an HTTP(S)
// URL, a same-document fragment ("#/..."), an absolute path ("/..."),
// a relative path resolved against originURI's directory with "."/".."
// segments, and a bare "#" meaning the document root.
func ParseRef(originURI, ref string) (targetURI, pointer string) {
	if ref == "" {
		return originURI, ""
	}
	if ref == "#" {
		return originURI, ""
	}

	hashIdx := strings.IndexByte(ref, '#')
	pathPart, fragPart := ref, ""
	if hashIdx >= 0 {
		pathPart, fragPart = ref[:hashIdx], ref[hashIdx+1:]
	}

	switch {
	case pathPart == "":
		// same-document fragment
		return originURI, fragPart
	case strings.HasPrefix(pathPart, "http://"), strings.HasPrefix(pathPart, "https://"):
		return pathPart, fragPart
	case strings.HasPrefix(pathPart, "/"):
		return pathPart, fragPart
	default:
		base := path.Dir(originURI)
		joined := path.Join(base, pathPart)
		return joined, fragPart
	}
}

// GraphNode identifies one addressable position: a document URI paired
// with a JSON Pointer within it.
type GraphNode struct {
	URI     string
	Pointer string
}
