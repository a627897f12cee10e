// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package visitor

import (
	"github.com/oaslint/oaslint/classify"
	"github.com/oaslint/oaslint/ir"
)

var httpMethods = map[string]bool{
	"get": true, "put": true, "post": true, "delete": true,
	"options": true, "head": true, "patch": true, "trace": true,
}

// Dispatch fires events over docs in the order required of a project
// run: Document for every document; then, for each document in turn,
// Root, Info, Tag, PathItem, Operation and Component only when that
// document is a root (those sections only exist at a root's top
// level), followed by Parameter, RequestBody, Response, Schema,
// Reference and Example for every document regardless of root/fragment
// status, since a fragment can hold any of those in isolation; and
// finally Project exactly once.
func Dispatch(events Events, docs []DocumentInput) {
	for _, d := range docs {
		fire(events.Document, Event{URI: d.URI, Pointer: "", Node: d.Root})
	}

	for _, d := range docs {
		if d.IsRoot {
			dispatchRootStructural(events, d)
		}
		dispatchEveryDocument(events, d)
	}

	if events.Project != nil {
		events.Project()
	}
}

// dispatchRootStructural fires the events that only make sense for a
// document used as a root: the sections the OpenAPI/Arazzo top level
// defines, which a fragment document never has of its own.
func dispatchRootStructural(events Events, d DocumentInput) {
	root := d.Root
	fire(events.Root, RootEvent{Event: Event{URI: d.URI, Pointer: "", Node: root}, Version: d.Version})

	if info := root.Child("info"); info != nil {
		fire(events.Info, Event{URI: d.URI, Pointer: info.Pointer, Node: info})
	}

	if tags := root.Child("tags"); tags != nil && tags.Kind == ir.KindArray {
		for _, tag := range tags.Children {
			fire(events.Tag, Event{URI: d.URI, Pointer: tag.Pointer, Node: tag})
		}
	}

	dispatchPathsAndOperations(events, d)
	dispatchComponents(events, d)
}

// dispatchEveryDocument fires the events that can occur in any
// document, root or fragment: a fragment loaded standalone (e.g. a
// shared schema file) still has parameters, schemas, refs and examples
// worth visiting even though it has no paths/components section of its
// own.
func dispatchEveryDocument(events Events, d DocumentInput) {
	dispatchByPredicate(events.Parameter, d, isParameterNode)
	dispatchByPredicate(events.RequestBody, d, isRequestBodyPointer)
	dispatchResponses(events, d)
	dispatchByPredicate(events.Schema, d, isSchemaNode)
	dispatchReferences(events, d)
	dispatchByPredicate(events.Example, d, isExampleNode)
}

func dispatchPathsAndOperations(events Events, d DocumentInput) {
	paths := d.Root.Child("paths")
	if paths == nil || paths.Kind != ir.KindObject {
		return
	}
	for _, item := range paths.Children {
		if item.Kind != ir.KindObject {
			continue
		}
		fire(events.PathItem, PathItemEvent{
			Event:        Event{URI: d.URI, Pointer: item.Pointer, Node: item},
			PathTemplate: item.Key,
		})
		for _, child := range item.Children {
			if child.Kind != ir.KindObject || !httpMethods[child.Key] {
				continue
			}
			fire(events.Operation, OperationEvent{
				Event:        Event{URI: d.URI, Pointer: child.Pointer, Node: child},
				Method:       child.Key,
				PathTemplate: item.Key,
			})
		}
	}
}

func dispatchResponses(events Events, d DocumentInput) {
	ir.Walk(d.Root, func(n *ir.Node) bool {
		if n.Kind != ir.KindObject {
			return true
		}
		segs := ir.SplitPointer(n.Pointer)
		if len(segs) >= 2 && segs[len(segs)-2] == "responses" {
			fire(events.Response, ResponseEvent{
				Event:      Event{URI: d.URI, Pointer: n.Pointer, Node: n},
				StatusCode: segs[len(segs)-1],
			})
		}
		return true
	})
}

func dispatchReferences(events Events, d DocumentInput) {
	ir.Walk(d.Root, func(n *ir.Node) bool {
		if n.Kind == ir.KindObject {
			if ref, ok := n.Child("$ref").StringValue(); ok {
				fire(events.Reference, ReferenceEvent{
					Event: Event{URI: d.URI, Pointer: n.Pointer, Node: n},
					Ref:   ref,
				})
			}
		}
		return true
	})
}

func dispatchComponents(events Events, d DocumentInput) {
	components := d.Root.Child("components")
	if components == nil || components.Kind != ir.KindObject {
		return
	}
	for _, section := range components.Children {
		if section.Kind != ir.KindObject {
			continue
		}
		for _, entry := range section.Children {
			fire(events.Component, ComponentEvent{
				Event:   Event{URI: d.URI, Pointer: entry.Pointer, Node: entry},
				Section: section.Key,
				Name:    entry.Key,
			})
		}
	}
}

func dispatchByPredicate(cb func(Event), d DocumentInput, pred func(n *ir.Node) bool) {
	if cb == nil {
		return
	}
	ir.Walk(d.Root, func(n *ir.Node) bool {
		if pred(n) {
			cb(Event{URI: d.URI, Pointer: n.Pointer, Node: n})
		}
		return true
	})
}

func isParameterNode(n *ir.Node) bool {
	return classify.Classify(n) == classify.KindParameter
}

func isSchemaNode(n *ir.Node) bool {
	return classify.Classify(n) == classify.KindSchema
}

func isExampleNode(n *ir.Node) bool {
	return classify.Classify(n) == classify.KindExample
}

func isRequestBodyPointer(n *ir.Node) bool {
	if n.Kind != ir.KindObject {
		return false
	}
	segs := ir.SplitPointer(n.Pointer)
	if len(segs) == 0 {
		return false
	}
	if segs[len(segs)-1] == "requestBody" {
		return true
	}
	return len(segs) >= 2 && segs[len(segs)-2] == "requestBodies"
}

func fire[T any](cb func(T), ev T) {
	if cb != nil {
		cb(ev)
	}
}
