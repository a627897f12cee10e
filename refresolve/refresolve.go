// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

// Package refresolve dereferences $ref strings into IR nodes, following
// chains of refs-to-refs to a bounded depth and recording the origin
// site of every successfully resolved value.
package refresolve

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/oaslint/oaslint/graph"
	"github.com/oaslint/oaslint/ir"
)

// DefaultMaxDepth bounds chain-following before a CycleError is raised.
const DefaultMaxDepth = 32

// UnresolvedRefError means a $ref names a document or pointer the
// resolver has no knowledge of.
type UnresolvedRefError struct {
	OriginURI string
	Ref       string
	TargetURI string
	Pointer   string
}

func (e *UnresolvedRefError) Error() string {
	return "unresolved $ref " + e.Ref + " in " + e.OriginURI
}

// CycleError means following a chain of refs-to-refs exceeded MaxDepth
// without landing on a non-ref value.
type CycleError struct {
	OriginURI string
	Ref       string
	MaxDepth  int
}

func (e *CycleError) Error() string {
	return "ref chain from " + e.Ref + " in " + e.OriginURI + " exceeded max depth"
}

// DocSource resolves a URI to the root IR node of its document, or nil
// if the document is not part of the project.
type DocSource func(uri string) *ir.Node

// Resolver dereferences $ref strings against a project's documents.
type Resolver struct {
	docs     DocSource
	maxDepth int

	mu       sync.Mutex
	originOf map[graph.GraphNode]graph.GraphNode
}

// New returns a Resolver backed by docs, following ref chains up to
// maxDepth (DefaultMaxDepth if <= 0).
func New(docs DocSource, maxDepth int) *Resolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Resolver{docs: docs, maxDepth: maxDepth, originOf: map[graph.GraphNode]graph.GraphNode{}}
}

// Deref resolves ref as found in originURI to its target IR node,
// following chains of $ref-only objects until a non-ref value is
// reached. Returns *UnresolvedRefError for a dangling ref, *CycleError
// if the chain exceeds the configured depth.
func (r *Resolver) Deref(originURI, ref string) (*ir.Node, error) {
	site := graph.GraphNode{URI: originURI, Pointer: ""}
	return r.derefChain(site, originURI, ref, 0)
}

func (r *Resolver) derefChain(site graph.GraphNode, originURI, ref string, depth int) (*ir.Node, error) {
	if depth >= r.maxDepth {
		return nil, &CycleError{OriginURI: originURI, Ref: ref, MaxDepth: r.maxDepth}
	}

	targetURI, pointer := graph.ParseRef(originURI, ref)
	root := r.docs(targetURI)
	if root == nil {
		return nil, &UnresolvedRefError{OriginURI: originURI, Ref: ref, TargetURI: targetURI, Pointer: pointer}
	}

	target := ir.FindByPointer(root, pointer)
	if target == nil {
		return nil, &UnresolvedRefError{OriginURI: originURI, Ref: ref, TargetURI: targetURI, Pointer: pointer}
	}

	targetNode := graph.GraphNode{URI: targetURI, Pointer: pointer}
	r.recordOrigin(targetNode, site)

	if target.Kind == ir.KindObject {
		if refChild := target.Child("$ref"); refChild != nil {
			if next, ok := refChild.StringValue(); ok {
				return r.derefChain(targetNode, targetURI, next, depth+1)
			}
		}
	}
	return target, nil
}

func (r *Resolver) recordOrigin(target, site graph.GraphNode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.originOf[target] = site
}

// OriginOf returns the site whose $ref most recently resolved to
// target, and true, or the zero value and false if target has not been
// resolved through this Resolver.
func (r *Resolver) OriginOf(target graph.GraphNode) (graph.GraphNode, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	site, ok := r.originOf[target]
	return site, ok
}

// IsUnresolved reports whether err is an *UnresolvedRefError.
func IsUnresolved(err error) bool {
	var e *UnresolvedRefError
	return errors.As(err, &e)
}

// IsCycle reports whether err is a *CycleError.
func IsCycle(err error) bool {
	var e *CycleError
	return errors.As(err, &e)
}
