// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package ruleapi

import "github.com/oaslint/oaslint/ir"

// SplitPointer and JoinPointer are the rule-facing names for the IR's
// RFC 6901 pointer codec; rules operate through ruleapi rather than
// importing ir directly.
func SplitPointer(p string) []string { return ir.SplitPointer(p) }
func JoinPointer(segs []string) string { return ir.JoinPointer(segs) }
