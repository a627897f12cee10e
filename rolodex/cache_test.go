// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package rolodex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oaslint/oaslint/document"
)

func docFor(t *testing.T, uri, raw string) *document.Document {
	t.Helper()
	d, err := document.Load(uri, []byte(raw), time.Now())
	require.NoError(t, err)
	return d
}

func TestProjectCache_PutGetInvalidate(t *testing.T) {
	docs := map[string]*document.Document{
		"/proj/a.yaml": docFor(t, "/proj/a.yaml", "openapi: 3.0.0\ninfo:\n  title: A\n"),
		"/proj/b.yaml": docFor(t, "/proj/b.yaml", "name: limit\nin: query\n"),
	}
	ctx := Build(docs, []string{"/proj/a.yaml"}, "3.0", ModeProjectAware)

	cache := NewProjectCache()
	_, ok := cache.Get(ctx.Key)
	assert.False(t, ok)

	cache.Put(ctx)
	got, ok := cache.Get(ctx.Key)
	require.True(t, ok)
	assert.Same(t, ctx, got)

	cache.Invalidate("/proj/b.yaml")
	_, ok = cache.Get(ctx.Key)
	assert.False(t, ok)
}

func TestProjectCache_InvalidateIgnoresUnrelatedURI(t *testing.T) {
	docs := map[string]*document.Document{
		"/proj/a.yaml": docFor(t, "/proj/a.yaml", "openapi: 3.0.0\ninfo:\n  title: A\n"),
	}
	ctx := Build(docs, []string{"/proj/a.yaml"}, "3.0", ModeProjectAware)

	cache := NewProjectCache()
	cache.Put(ctx)
	cache.Invalidate("/proj/unrelated.yaml")

	_, ok := cache.Get(ctx.Key)
	assert.True(t, ok)
}
