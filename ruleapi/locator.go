// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package ruleapi

import (
	"github.com/oaslint/oaslint/diagnostic"
	"github.com/oaslint/oaslint/document"
	"github.com/oaslint/oaslint/ir"
)

// DocSource resolves a URI to its Document, or nil if unknown. Ranges
// are always computed through a Locator backed by the same DocSource
// the rest of a project run uses, so two rules reporting on the same
// node produce identical ranges.
type DocSource func(uri string) *document.Document

// Locator converts byte offsets and pointers into LSP-style ranges.
type Locator struct {
	docs DocSource
}

// NewLocator returns a Locator backed by docs.
func NewLocator(docs DocSource) *Locator {
	return &Locator{docs: docs}
}

// OffsetToRange converts a [start, end) byte span in uri into a Range,
// or false if uri is unknown.
func (l *Locator) OffsetToRange(uri string, start, end int) (diagnostic.Range, bool) {
	doc := l.docs(uri)
	if doc == nil {
		return diagnostic.Range{}, false
	}
	return rangeFromOffsets(doc, start, end), true
}

// Locate returns the value range of the node at pointer within uri.
func (l *Locator) Locate(uri, pointer string) (diagnostic.Range, bool) {
	doc := l.docs(uri)
	if doc == nil {
		return diagnostic.Range{}, false
	}
	n := ir.FindByPointer(doc.Root, pointer)
	if n == nil {
		return diagnostic.Range{}, false
	}
	return rangeFromOffsets(doc, n.Loc.Start, n.Loc.End), true
}

// FindKeyRange locates keyName within the object at parentPointer and
// returns the range of the key itself, falling back to the value's
// range, then the node's own range, per the lookup's fallback contract.
func (l *Locator) FindKeyRange(uri, parentPointer, keyName string) (diagnostic.Range, bool) {
	doc := l.docs(uri)
	if doc == nil {
		return diagnostic.Range{}, false
	}
	parent := ir.FindByPointer(doc.Root, parentPointer)
	if parent == nil {
		return diagnostic.Range{}, false
	}
	child := parent.Child(keyName)
	if child == nil {
		return diagnostic.Range{}, false
	}
	if child.Loc.HasKeyRange() {
		return rangeFromOffsets(doc, child.Loc.KeyStart, child.Loc.KeyEnd), true
	}
	if child.Loc.ValEnd > child.Loc.ValStart {
		return rangeFromOffsets(doc, child.Loc.ValStart, child.Loc.ValEnd), true
	}
	return rangeFromOffsets(doc, child.Loc.Start, child.Loc.End), true
}

func rangeFromOffsets(doc *document.Document, start, end int) diagnostic.Range {
	sl, sc := doc.Lines.Position(start)
	el, ec := doc.Lines.Position(end)
	return diagnostic.Range{
		Start: diagnostic.Position{Line: sl - 1, Character: sc - 1},
		End:   diagnostic.Position{Line: el - 1, Character: ec - 1},
	}
}
