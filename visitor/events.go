// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

// Package visitor walks a project's documents in a fixed, deterministic
// order and fires typed events so rules can accumulate state across
// callbacks without re-walking the IR themselves.
package visitor

import "github.com/oaslint/oaslint/ir"

// Event carries the common fields every visitor callback receives.
type Event struct {
	URI     string
	Pointer string
	Node    *ir.Node
}

// RootEvent fires once per root document.
type RootEvent struct {
	Event
	Version string
}

// PathItemEvent fires once per entry in a root's paths object.
type PathItemEvent struct {
	Event
	PathTemplate string
}

// OperationEvent fires once per HTTP-method entry on a path item.
type OperationEvent struct {
	Event
	Method       string
	PathTemplate string
}

// ResponseEvent fires once per entry in a responses map.
type ResponseEvent struct {
	Event
	StatusCode string
}

// ReferenceEvent fires once per node carrying a literal $ref.
type ReferenceEvent struct {
	Event
	Ref string
}

// ComponentEvent fires once per named entry under components/*.
type ComponentEvent struct {
	Event
	Section string
	Name    string
}

// Events is a sparse map of callbacks; a nil field is simply skipped
// during dispatch. Rules construct one of these per check(ctx) call.
type Events struct {
	Document    func(Event)
	Root        func(RootEvent)
	Info        func(Event)
	Tag         func(Event)
	PathItem    func(PathItemEvent)
	Operation   func(OperationEvent)
	Parameter   func(Event)
	RequestBody func(Event)
	Response    func(ResponseEvent)
	Schema      func(Event)
	Reference   func(ReferenceEvent)
	Component   func(ComponentEvent)
	Example     func(Event)
	Project     func()
}

// DocumentInput is one document's contribution to a dispatch run, in the
// order the caller wants Document events fired.
type DocumentInput struct {
	URI     string
	Root    *ir.Node
	IsRoot  bool
	Version string
}
