// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package ruleapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oaslint/oaslint/document"
)

func docSourceFor(docs ...*document.Document) DocSource {
	m := make(map[string]*document.Document, len(docs))
	for _, d := range docs {
		m[d.URI] = d
	}
	return func(uri string) *document.Document { return m[uri] }
}

func TestLocator_OffsetToRange(t *testing.T) {
	raw := []byte("openapi: 3.0.0\ninfo:\n  title: Pets\n")
	doc, err := document.Load("/proj/a.yaml", raw, time.Now())
	require.NoError(t, err)

	loc := NewLocator(docSourceFor(doc))
	r, ok := loc.OffsetToRange("/proj/a.yaml", 0, 7)
	require.True(t, ok)
	assert.Equal(t, 0, r.Start.Line)
	assert.Equal(t, 0, r.Start.Character)

	_, ok = loc.OffsetToRange("/proj/missing.yaml", 0, 1)
	assert.False(t, ok)
}

func TestLocator_Locate(t *testing.T) {
	raw := []byte("openapi: 3.0.0\ninfo:\n  title: Pets\n")
	doc, err := document.Load("/proj/a.yaml", raw, time.Now())
	require.NoError(t, err)

	loc := NewLocator(docSourceFor(doc))
	r, ok := loc.Locate("/proj/a.yaml", "/info/title")
	require.True(t, ok)
	assert.Equal(t, 2, r.Start.Line)

	_, ok = loc.Locate("/proj/a.yaml", "/missing")
	assert.False(t, ok)

	_, ok = loc.Locate("/proj/missing.yaml", "/info/title")
	assert.False(t, ok)
}

func TestLocator_FindKeyRange_KeyRangePresent(t *testing.T) {
	raw := []byte("openapi: 3.0.0\ninfo:\n  title: Pets\n  version: \"1.0\"\n")
	doc, err := document.Load("/proj/a.yaml", raw, time.Now())
	require.NoError(t, err)

	loc := NewLocator(docSourceFor(doc))
	r, ok := loc.FindKeyRange("/proj/a.yaml", "/info", "title")
	require.True(t, ok)
	assert.Equal(t, 2, r.Start.Line)
}

func TestLocator_FindKeyRange_MissingParentOrChild(t *testing.T) {
	raw := []byte("openapi: 3.0.0\ninfo:\n  title: Pets\n")
	doc, err := document.Load("/proj/a.yaml", raw, time.Now())
	require.NoError(t, err)

	loc := NewLocator(docSourceFor(doc))
	_, ok := loc.FindKeyRange("/proj/a.yaml", "/missing", "title")
	assert.False(t, ok)

	_, ok = loc.FindKeyRange("/proj/a.yaml", "/info", "missing")
	assert.False(t, ok)

	_, ok = loc.FindKeyRange("/proj/missing.yaml", "/info", "title")
	assert.False(t, ok)
}

func TestLocator_FindKeyRange_ValueRangeFallback(t *testing.T) {
	raw := []byte("title: Pets\n")
	doc, err := document.Load("/proj/a.yaml", raw, time.Now())
	require.NoError(t, err)

	// A child with no key range (simulating a map-entry form the lowerers
	// never actually produce, but that the fallback contract still covers)
	// falls back to its value range.
	child := doc.NodeAt("/title")
	require.NotNil(t, child)
	child.Loc.KeyStart, child.Loc.KeyEnd = 0, 0

	loc := NewLocator(docSourceFor(doc))
	r, ok := loc.FindKeyRange("/proj/a.yaml", "", "title")
	require.True(t, ok)
	assert.Equal(t, 0, r.Start.Line)
	assert.Equal(t, child.Loc.ValStart, r.Start.Character)
}
