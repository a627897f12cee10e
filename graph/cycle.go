// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package graph

import "github.com/oaslint/oaslint/ir"

var polymorphicKeywords = map[string]bool{
	"oneOf": true, "anyOf": true, "allOf": true,
}

// isPolymorphicSite reports whether pointer passes through a
// oneOf/anyOf/allOf composition segment, meaning a $ref found there
// names one branch of a union rather than a strict containment
// relationship.
func isPolymorphicSite(pointer string) bool {
	for _, seg := range ir.SplitPointer(pointer) {
		if polymorphicKeywords[seg] {
			return true
		}
	}
	return false
}

// Cycles walks every edge reachable from each node with outgoing edges
// and reports each node that lies on a cycle, split into polymorphic
// (participates in a oneOf/anyOf/allOf branch, usually a benign
// recursive schema) and non-polymorphic (usually a real structural
// problem) groups. Every node on a cycle is listed on its own; the
// members of one cycle are not merged into a single entry.
func (g *Graph) Cycles() (polymorphic, nonPolymorphic []GraphNode) {
	seen := map[GraphNode]bool{}
	for n := range g.forward {
		if seen[n] {
			continue
		}
		if !g.HasCycle(n) {
			continue
		}
		seen[n] = true
		if cyclePassesPolymorphicSite(g, n) {
			polymorphic = append(polymorphic, n)
		} else {
			nonPolymorphic = append(nonPolymorphic, n)
		}
	}
	return polymorphic, nonPolymorphic
}

func cyclePassesPolymorphicSite(g *Graph, n GraphNode) bool {
	visited := map[GraphNode]bool{n: true}
	var dfs func(cur GraphNode) bool
	dfs = func(cur GraphNode) bool {
		for _, e := range g.forward[cur] {
			if isPolymorphicSite(e.From.Pointer) {
				return true
			}
			if e.To == n {
				continue
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
