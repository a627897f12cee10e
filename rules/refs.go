// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"

	"github.com/oaslint/oaslint/diagnostic"
	"github.com/oaslint/oaslint/engine"
	"github.com/oaslint/oaslint/refresolve"
	"github.com/oaslint/oaslint/visitor"
)

// UnresolvedRef flags a $ref that names a document or pointer no
// document in the project provides, across file boundaries as readily
// as within one document.
func UnresolvedRef() engine.Rule {
	return engine.DefineRule(engine.Meta{
		ID:              "unresolved-ref",
		Type:            engine.TypeProblem,
		Description:     "a $ref must resolve to a value within the project",
		DefaultSeverity: diagnostic.SeverityError,
		Scope:           engine.ScopeCrossFile,
	}, func(ctx *engine.Context) visitor.Events {
		return visitor.Events{
			Reference: func(ev visitor.ReferenceEvent) {
				_, err := ctx.Resolver().Deref(ev.URI, ev.Ref)
				if err == nil || !refresolve.IsUnresolved(err) {
					return
				}
				reportOnRefValue(ctx, ev, fmt.Sprintf("unresolved reference %q", ev.Ref))
			},
		}
	})
}

// RefCycle flags a $ref chain that never lands on a non-ref value
// within the resolver's bounded chase depth.
func RefCycle() engine.Rule {
	return engine.DefineRule(engine.Meta{
		ID:              "ref-cycle",
		Type:            engine.TypeProblem,
		Description:     "a $ref chain must not cycle back on itself",
		DefaultSeverity: diagnostic.SeverityError,
		Scope:           engine.ScopeCrossFile,
	}, func(ctx *engine.Context) visitor.Events {
		return visitor.Events{
			Reference: func(ev visitor.ReferenceEvent) {
				_, err := ctx.Resolver().Deref(ev.URI, ev.Ref)
				if err == nil || !refresolve.IsCycle(err) {
					return
				}
				reportOnRefValue(ctx, ev, fmt.Sprintf("reference cycle following %q", ev.Ref))
			},
		}
	})
}

// reportOnRefValue reports message over the range of the $ref string
// value itself, rather than the object that carries it, so an editor
// underlines the broken reference text and not its surrounding braces.
func reportOnRefValue(ctx *engine.Context, ev visitor.ReferenceEvent, message string) {
	refPointer := childPointer(ev.Pointer, "$ref")
	rng, ok := ctx.Locate(ev.URI, refPointer)
	if !ok {
		rng, _ = ctx.Locate(ev.URI, ev.Pointer)
	}
	ctx.Report(ev.URI, rng, message)
}
