// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package graph

import (
	"github.com/oaslint/oaslint/ir"
)

// Edge is one $ref relationship: From names the node containing the
// $ref, To names the node it points at. RefString is the literal ref
// text, kept for diagnostics.
type Edge struct {
	From      GraphNode
	To        GraphNode
	RefString string
}

// Graph is the directed reference graph for a project. It may contain
// cycles and holds edges only for syntactically valid $ref strings;
// whether an edge's target actually exists in any known document is a
// resolver concern, not a graph concern.
type Graph struct {
	forward map[GraphNode][]Edge
	reverse map[GraphNode][]Edge
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		forward: make(map[GraphNode][]Edge),
		reverse: make(map[GraphNode][]Edge),
	}
}

// AddEdge records one $ref relationship.
func (g *Graph) AddEdge(e Edge) {
	g.forward[e.From] = append(g.forward[e.From], e)
	g.reverse[e.To] = append(g.reverse[e.To], e)
}

// ReferencesFrom returns the edges whose From is n: the refs n's node
// contains.
func (g *Graph) ReferencesFrom(n GraphNode) []Edge {
	return g.forward[n]
}

// DependentsOf returns the edges whose To is n: the refs that point at
// n.
func (g *Graph) DependentsOf(n GraphNode) []Edge {
	return g.reverse[n]
}

// HasCycle reports whether n participates in a reference cycle, i.e.
// whether a chain of ReferencesFrom edges starting at n returns to n.
func (g *Graph) HasCycle(n GraphNode) bool {
	visited := map[GraphNode]bool{}
	var dfs func(cur GraphNode) bool
	dfs = func(cur GraphNode) bool {
		for _, e := range g.forward[cur] {
			if e.To == n {
				return true
			}
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			if dfs(e.To) {
				return true
			}
		}
		return false
	}
	return dfs(n)
}

// ReferencedURIs returns the distinct external document URIs root's IR
// references via $ref, excluding uri itself (same-document fragments).
// Used by workspace loaders to discover a document's transitive closure
// without needing a graph already built over the target documents.
func ReferencedURIs(uri string, root *ir.Node) []string {
	seen := map[string]bool{}
	var out []string
	ir.Walk(root, func(n *ir.Node) bool {
		if n.Kind != ir.KindObject {
			return true
		}
		refChild := n.Child("$ref")
		if refChild == nil {
			return true
		}
		refStr, ok := refChild.StringValue()
		if !ok {
			return true
		}
		targetURI, _ := ParseRef(uri, refStr)
		if targetURI == uri || seen[targetURI] {
			return true
		}
		seen[targetURI] = true
		out = append(out, targetURI)
		return true
	})
	return out
}

// BuildFromIR scans root's IR for every node carrying a literal $ref
// string child and adds one edge per occurrence, with From set to the
// object node containing the $ref (not the $ref node itself).
func BuildFromIR(g *Graph, uri string, root *ir.Node) {
	ir.Walk(root, func(n *ir.Node) bool {
		if n.Kind != ir.KindObject {
			return true
		}
		refChild := n.Child("$ref")
		if refChild == nil {
			return true
		}
		refStr, ok := refChild.StringValue()
		if !ok {
			return true
		}
		targetURI, pointer := ParseRef(uri, refStr)
		g.AddEdge(Edge{
			From:      GraphNode{URI: uri, Pointer: n.Pointer},
			To:        GraphNode{URI: targetURI, Pointer: pointer},
			RefString: refStr,
		})
		return true
	})
}
