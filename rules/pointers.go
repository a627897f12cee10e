// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

// Package rules holds the bundled rule bodies oaslint ships: the
// scenarios a rule author's first read of the engine ought to cover,
// written against the same ruleapi/engine surface a third-party rule
// package would use.
package rules

import (
	"github.com/oaslint/oaslint/engine"
	"github.com/oaslint/oaslint/ruleapi"
	"github.com/oaslint/oaslint/visitor"
)

// parentOf returns the pointer one level up from p, and the final
// segment that named the child, for rules that need to highlight the
// key of an entry rather than its value.
func parentOf(p string) (parentPointer, key string) {
	segs := ruleapi.SplitPointer(p)
	if len(segs) == 0 {
		return "", ""
	}
	return ruleapi.JoinPointer(segs[:len(segs)-1]), segs[len(segs)-1]
}

// childPointer appends one escaped segment to p.
func childPointer(p, segment string) string {
	return ruleapi.JoinPointer(append(ruleapi.SplitPointer(p), segment))
}

// reportKey reports a diagnostic over the key-range of key within the
// object at parentPointer, for events whose own pointer names a value
// rather than the map entry that introduces it (path items, component
// entries).
func reportKey(ctx *engine.Context, uri, parentPointer, key, message string) {
	ctx.ReportAt(visitor.Event{URI: uri, Pointer: parentPointer}, key, message)
}
