// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package rolodex

import "golang.org/x/sync/syncmap"

// ProjectCache caches assembled ProjectContexts by their Key, so
// repeated resolution of the same document set (by content hash) skips
// rebuilding the graph, resolver and index. Safe for concurrent use:
// lookups are lock-free, writes serialise per key.
type ProjectCache struct {
	m syncmap.Map
}

// NewProjectCache returns an empty cache.
func NewProjectCache() *ProjectCache {
	return &ProjectCache{}
}

// Get returns the cached context for key, and true, or nil and false.
func (c *ProjectCache) Get(key uint64) (*ProjectContext, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	return v.(*ProjectContext), true
}

// Put stores ctx under its own Key.
func (c *ProjectCache) Put(ctx *ProjectContext) {
	c.m.Store(ctx.Key, ctx)
}

// Invalidate evicts every cached context that has uri among its
// participating documents, the "invalidation on any constituent's
// change evicts the entry and all others that contained that URI"
// contract.
func (c *ProjectCache) Invalidate(uri string) {
	var stale []uint64
	c.m.Range(func(k, v any) bool {
		ctx := v.(*ProjectContext)
		if _, ok := ctx.Docs[uri]; ok {
			stale = append(stale, k.(uint64))
		}
		return true
	})
	for _, k := range stale {
		c.m.Delete(k)
	}
}
