// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

// Package engine drives rule execution over a project context: it
// dispatches visitor events to each rule's callbacks, resolves
// effective severities, isolates a misbehaving rule from the rest of
// the run, and returns a sorted diagnostic set.
package engine

import (
	"github.com/oaslint/oaslint/diagnostic"
	"github.com/oaslint/oaslint/ruleapi"
	"github.com/oaslint/oaslint/visitor"
)

// Scope controls whether a rule runs when a document has no owning
// root. Defaults to ScopeSingleFile when a Meta leaves it unset.
type Scope string

const (
	ScopeSingleFile Scope = "single-file"
	ScopeCrossFile  Scope = "cross-file"
)

// RuleType mirrors ESLint's problem/suggestion split: a problem is a
// likely bug, a suggestion is a style preference.
type RuleType string

const (
	TypeProblem    RuleType = "problem"
	TypeSuggestion RuleType = "suggestion"
)

// Meta describes a rule for registration, documentation, and config
// validation. ID must be non-empty and unique within a rule set.
type Meta struct {
	ID              string
	Number          int
	Type            RuleType
	Description     string
	DefaultSeverity diagnostic.Severity
	Scope           Scope
	ConfigSchema    ruleapi.ConfigSchema
}

func (m Meta) scope() Scope {
	if m.Scope == "" {
		return ScopeSingleFile
	}
	return m.Scope
}

// Rule is one registered lint rule: its metadata plus the factory the
// engine calls once per project run to obtain the rule's private state
// handle (if any) and its visitor.Events callback map. Rule authors
// never build one directly; use DefineRule, DefineStatefulRule, or
// DefineGenericRule.
type Rule struct {
	Meta Meta

	newState func() any
	check    func(ctx *Context, state any) visitor.Events
}

// DefineRule registers a stateless rule observing full OpenAPI
// documents: Root, Info, Tag, PathItem, Operation, Parameter,
// RequestBody, Response, Schema, Reference, Component, Example, and
// Project.
func DefineRule(meta Meta, check func(ctx *Context) visitor.Events) Rule {
	return Rule{
		Meta:  meta,
		check: func(ctx *Context, _ any) visitor.Events { return check(ctx) },
	}
}

// DefineStatefulRule registers a rule that carries typed, per-run
// private state. newState is called once per project run (the
// "state-allocated" step of a rule's lifecycle); its result is threaded
// into every check call for that run only and discarded afterward.
func DefineStatefulRule[S any](meta Meta, newState func() S, check func(ctx *Context, state S) visitor.Events) Rule {
	return Rule{
		Meta: meta,
		newState: func() any {
			var s S
			if newState != nil {
				s = newState()
			}
			return s
		},
		check: func(ctx *Context, state any) visitor.Events {
			s, _ := state.(S)
			return check(ctx, s)
		},
	}
}

// DefineGenericRule registers a rule for non-OpenAPI files participating
// in a project (arbitrary JSON/YAML siblings): it receives Document
// events only, never Root/PathItem/Operation/etc., since those
// categories assume OpenAPI document shape.
func DefineGenericRule(meta Meta, onDocument func(ctx *Context, ev visitor.Event)) Rule {
	return Rule{
		Meta: meta,
		check: func(ctx *Context, _ any) visitor.Events {
			return visitor.Events{Document: func(ev visitor.Event) { onDocument(ctx, ev) }}
		},
	}
}

// DefineSchema declares a data-only config schema for a rule's
// user-facing options, surfaced to editors and the CLI's config
// validation path.
func DefineSchema(properties map[string]any) ruleapi.ConfigSchema {
	return ruleapi.MapSchema(properties)
}
