// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/oaslint/oaslint/diagnostic"
	"github.com/oaslint/oaslint/graph"
	"github.com/oaslint/oaslint/ir"
	"github.com/oaslint/oaslint/projindex"
	"github.com/oaslint/oaslint/refresolve"
	"github.com/oaslint/oaslint/rolodex"
	"github.com/oaslint/oaslint/ruleapi"
	"github.com/oaslint/oaslint/visitor"
)

// Context is the per-rule handle passed to a rule's check factory and
// closed over by its visitor callbacks. It accumulates the rule's
// diagnostics and gives callbacks read access to the project: the
// reference graph, resolver, derived index, and raw document access
// through an Accessor/Locator pair that shares range computation with
// every other rule in the run.
type Context struct {
	ruleID   string
	severity diagnostic.Severity
	project  *rolodex.ProjectContext
	locator  *ruleapi.Locator

	diags []*diagnostic.Diagnostic
}

func newContext(ruleID string, severity diagnostic.Severity, project *rolodex.ProjectContext, locator *ruleapi.Locator) *Context {
	return &Context{ruleID: ruleID, severity: severity, project: project, locator: locator}
}

// Report emits a diagnostic at an explicit range.
func (c *Context) Report(uri string, rng diagnostic.Range, message string) {
	c.diags = append(c.diags, &diagnostic.Diagnostic{
		URI:      uri,
		Range:    rng,
		Severity: c.severity,
		Message:  message,
		RuleID:   c.ruleID,
		Source:   "oaslint",
	})
}

// ReportAt locates the key-range of field within ev's node, falling
// back to the field's value range and then ev's own node range, and
// reports a diagnostic there.
func (c *Context) ReportAt(ev visitor.Event, field, message string) {
	rng, ok := c.locator.FindKeyRange(ev.URI, ev.Pointer, field)
	if !ok {
		rng, ok = c.locator.Locate(ev.URI, ev.Pointer)
	}
	if !ok {
		rng = diagnostic.Range{}
	}
	c.Report(ev.URI, rng, message)
}

// ReportHere reports a diagnostic over ev's own node range.
func (c *Context) ReportHere(ev visitor.Event, message string) {
	rng, _ := c.locator.Locate(ev.URI, ev.Pointer)
	c.Report(ev.URI, rng, message)
}

// Fix attaches patch to the most recently reported diagnostic. If
// nothing has been reported yet, the fix is discarded.
func (c *Context) Fix(patch *diagnostic.FilePatch) {
	if patch == nil || len(c.diags) == 0 {
		return
	}
	last := c.diags[len(c.diags)-1]
	last.Fixes = append(last.Fixes, patch)
}

// FindKeyRange exposes the key-range lookup directly, for rules that
// need a range without also reporting through it.
func (c *Context) FindKeyRange(uri, parentPointer, keyName string) (diagnostic.Range, bool) {
	return c.locator.FindKeyRange(uri, parentPointer, keyName)
}

// Locate returns the value range of the node at pointer within uri.
func (c *Context) Locate(uri, pointer string) (diagnostic.Range, bool) {
	return c.locator.Locate(uri, pointer)
}

// OffsetToRange converts a byte span within uri into a Range.
func (c *Context) OffsetToRange(uri string, start, end int) (diagnostic.Range, bool) {
	return c.locator.OffsetToRange(uri, start, end)
}

// Accessor wraps node with the typed getters rule bodies use to read
// field values without panicking on absence or a type mismatch.
func (c *Context) Accessor(node *ir.Node) ruleapi.Accessor {
	return ruleapi.Wrap(node)
}

// FindByPath evaluates a JSONPath expression against the document at
// uri, returning every matching IR node.
func (c *Context) FindByPath(uri, jsonPath string) ([]*ir.Node, error) {
	doc := c.project.Docs[uri]
	if doc == nil {
		return nil, nil
	}
	return ruleapi.FindByPath(doc, jsonPath)
}

// Index returns the project's derived operations/components/tags view.
func (c *Context) Index() *projindex.Index {
	return c.project.Index
}

// Resolver returns the project's $ref resolver.
func (c *Context) Resolver() *refresolve.Resolver {
	return c.project.Resolver
}

// Graph returns the project's reference graph.
func (c *Context) Graph() *graph.Graph {
	return c.project.Graph
}

// Mode reports how the underlying project context was assembled
// (project-aware, multi-root, or fragment).
func (c *Context) Mode() rolodex.Mode {
	return c.project.Mode
}

// RootURIs returns the project's root document URIs.
func (c *Context) RootURIs() []string {
	return c.project.RootUris
}
