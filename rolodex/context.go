// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

// Package rolodex assembles the multi-document project context a lint
// run operates over: the document set, its reference graph and
// resolver, the derived project index, and the root(s) driving the
// run. It also owns root discovery across a workspace and the caches
// keyed on document content hash.
package rolodex

import (
	"sort"

	"github.com/oaslint/oaslint/classify"
	"github.com/oaslint/oaslint/document"
	"github.com/oaslint/oaslint/graph"
	"github.com/oaslint/oaslint/internal/contenthash"
	"github.com/oaslint/oaslint/ir"
	"github.com/oaslint/oaslint/projindex"
	"github.com/oaslint/oaslint/refresolve"
)

// Mode describes how a ProjectContext was assembled.
type Mode int

const (
	// ModeProjectAware means the input resolved to exactly one root.
	ModeProjectAware Mode = iota
	// ModeMultiRoot means a fragment is reachable from several roots;
	// each is linted independently and the caller merges diagnostics.
	ModeMultiRoot
	// ModeFragment means no owning root was found; only single-file
	// rules may run.
	ModeFragment
)

// ProjectContext is the immutable bundle a lint run operates over.
type ProjectContext struct {
	Docs     map[string]*document.Document
	Graph    *graph.Graph
	Resolver *refresolve.Resolver
	Index    *projindex.Index
	RootUris []string
	Version  string
	Mode     Mode

	// Key is the stable cache key derived from the participating
	// documents' {uri, hash} pairs.
	Key uint64
}

// DocSource adapts this context's document map to callers that key on
// URI and need a *document.Document (the ruleapi/Locator shape).
func (p *ProjectContext) DocSource() func(uri string) *document.Document {
	return func(uri string) *document.Document {
		return p.Docs[uri]
	}
}

// irDocSource adapts this context's document map to refresolve.DocSource.
func (p *ProjectContext) irDocSource() refresolve.DocSource {
	return func(uri string) *ir.Node {
		d, ok := p.Docs[uri]
		if !ok {
			return nil
		}
		return d.Root
	}
}

// Build assembles a ProjectContext from an already-loaded document set.
// docs must contain every document transitively reachable from
// rootUris; Build does not itself perform discovery or I/O.
func Build(docs map[string]*document.Document, rootUris []string, version string, mode Mode) *ProjectContext {
	pc := &ProjectContext{
		Docs:     docs,
		RootUris: append([]string(nil), rootUris...),
		Version:  version,
		Mode:     mode,
	}

	g := graph.New()
	for uri, d := range docs {
		graph.BuildFromIR(g, uri, d.Root)
	}
	pc.Graph = g
	pc.Resolver = refresolve.New(pc.irDocSource(), refresolve.DefaultMaxDepth)

	roots := make(map[string]*ir.Node, len(rootUris))
	for _, uri := range rootUris {
		if d, ok := docs[uri]; ok {
			roots[uri] = d.Root
		}
	}
	pc.Index = projindex.Build(roots)

	pairs := make([]contenthash.URIHash, 0, len(docs))
	for uri, d := range docs {
		pairs = append(pairs, contenthash.URIHash{URI: uri, Hash: d.Hash})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].URI < pairs[j].URI })
	pc.Key = contenthash.ProjectKey(pairs)

	return pc
}

// IsRootDocument reports whether a document's IR root classifies as a
// project root, the predicate workspace scanning and root discovery
// use to find candidate roots.
func IsRootDocument(d *document.Document) bool {
	return classify.Classify(d.Root) == classify.KindRoot
}
