// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package ir

import (
	"strings"

	"github.com/go-openapi/jsonpointer"
)

// SplitPointer decomposes a JSON Pointer (RFC 6901) into its unescaped
// segments. The root pointer "" yields an empty slice.
func SplitPointer(p string) []string {
	if p == "" {
		return nil
	}
	raw := strings.Split(strings.TrimPrefix(p, "/"), "/")
	segs := make([]string, len(raw))
	for i, s := range raw {
		segs[i] = jsonpointer.Unescape(s)
	}
	return segs
}

// JoinPointer re-escapes and joins segments into a JSON Pointer. Joining
// the result of SplitPointer always reproduces the original well-formed
// pointer: JoinPointer(SplitPointer(p)) == p.
func JoinPointer(segs []string) string {
	if len(segs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range segs {
		b.WriteByte('/')
		b.WriteString(jsonpointer.Escape(s))
	}
	return b.String()
}

// AppendSegment returns the pointer formed by appending one escaped
// segment to parent, per IR invariant (i): a child's pointer extends its
// parent's by exactly one segment.
func AppendSegment(parent, segment string) string {
	return parent + "/" + jsonpointer.Escape(segment)
}
