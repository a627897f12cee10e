// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package ruleapi

import "github.com/oaslint/oaslint/diagnostic"

// FixBuilder accumulates JSON-Patch operations against one document and
// produces a diagnostic.FilePatch. Patches built this way are advisory:
// the engine attaches them to a diagnostic but never applies them.
type FixBuilder struct {
	uri string
	ops []diagnostic.PatchOp
}

// NewFixBuilder starts a fix against uri.
func NewFixBuilder(uri string) *FixBuilder {
	return &FixBuilder{uri: uri}
}

// AddOp appends a raw JSON-Patch operation.
func (b *FixBuilder) AddOp(op, path string, value any) *FixBuilder {
	b.ops = append(b.ops, diagnostic.PatchOp{Op: op, Path: path, Value: value})
	return b
}

// AddAtPath adds value at the JSON Pointer path.
func (b *FixBuilder) AddAtPath(path string, value any) *FixBuilder {
	return b.AddOp("add", path, value)
}

// SetAtPath replaces the value at the JSON Pointer path.
func (b *FixBuilder) SetAtPath(path string, value any) *FixBuilder {
	return b.AddOp("replace", path, value)
}

// RemoveAtPath removes the value at the JSON Pointer path.
func (b *FixBuilder) RemoveAtPath(path string) *FixBuilder {
	return b.AddOp("remove", path, nil)
}

// AddField adds value as a new field under the object at parentPointer.
func (b *FixBuilder) AddField(parentPointer, field string, value any) *FixBuilder {
	return b.AddAtPath(joinField(parentPointer, field), value)
}

// SetField replaces the value of an existing field under the object at
// parentPointer.
func (b *FixBuilder) SetField(parentPointer, field string, value any) *FixBuilder {
	return b.SetAtPath(joinField(parentPointer, field), value)
}

// RemoveField removes field from the object at parentPointer.
func (b *FixBuilder) RemoveField(parentPointer, field string) *FixBuilder {
	return b.RemoveAtPath(joinField(parentPointer, field))
}

// HasOps reports whether any operation has been added.
func (b *FixBuilder) HasOps() bool {
	return len(b.ops) > 0
}

// Build returns the accumulated FilePatch, or nil if no operations were
// added.
func (b *FixBuilder) Build() *diagnostic.FilePatch {
	if !b.HasOps() {
		return nil
	}
	return &diagnostic.FilePatch{URI: b.uri, Ops: append([]diagnostic.PatchOp(nil), b.ops...)}
}

func joinField(parentPointer, field string) string {
	return JoinPointer(append(SplitPointer(parentPointer), field))
}
