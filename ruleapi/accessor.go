// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

// Package ruleapi is the contract rule bodies observe: a typed node
// accessor, pointer helpers, key-range/location lookups, a fix builder,
// and validator combinators.
package ruleapi

import "github.com/oaslint/oaslint/ir"

// Accessor wraps one ir.Node with typed getters that return the zero
// value and false for an absent field or a field of the wrong kind,
// rather than panicking.
type Accessor struct {
	node *ir.Node
}

// Wrap returns an Accessor for node. Wrapping nil is valid; every getter
// reports absence rather than panicking.
func Wrap(node *ir.Node) Accessor {
	return Accessor{node: node}
}

// Node returns the wrapped ir.Node, or nil.
func (a Accessor) Node() *ir.Node {
	return a.node
}

// Has reports whether key is present as a direct child.
func (a Accessor) Has(key string) bool {
	return a.node != nil && a.node.Has(key)
}

// GetString returns the string value of key, and true, or "" and false
// if key is absent or not a string.
func (a Accessor) GetString(key string) (string, bool) {
	if a.node == nil {
		return "", false
	}
	c := a.node.Child(key)
	if c == nil || c.Kind != ir.KindString {
		return "", false
	}
	return c.StringValue()
}

// GetArray returns the Accessor for each element of key, and true, or
// nil and false if key is absent or not an array.
func (a Accessor) GetArray(key string) ([]Accessor, bool) {
	if a.node == nil {
		return nil, false
	}
	c := a.node.Child(key)
	if c == nil || c.Kind != ir.KindArray {
		return nil, false
	}
	out := make([]Accessor, len(c.Children))
	for i, child := range c.Children {
		out[i] = Wrap(child)
	}
	return out, true
}

// GetObject returns an Accessor for key's value, and true, or a
// zero-value Accessor and false if key is absent or not an object.
func (a Accessor) GetObject(key string) (Accessor, bool) {
	if a.node == nil {
		return Accessor{}, false
	}
	c := a.node.Child(key)
	if c == nil || c.Kind != ir.KindObject {
		return Accessor{}, false
	}
	return Wrap(c), true
}

// Raw returns the wrapped node's decoded value: the scalar value itself,
// a map[string]any of the children's Raw values for an object (keyed by
// field name), a []any of them for an array, or nil for an empty wrapper.
func (a Accessor) Raw() any {
	if a.node == nil {
		return nil
	}
	switch a.node.Kind {
	case ir.KindObject:
		m := make(map[string]any, len(a.node.Children))
		for _, c := range a.node.Children {
			m[c.Key] = Wrap(c).Raw()
		}
		return m
	case ir.KindArray:
		arr := make([]any, len(a.node.Children))
		for i, c := range a.node.Children {
			arr[i] = Wrap(c).Raw()
		}
		return arr
	default:
		return a.node.Value
	}
}

// Keys returns the direct child keys of an object node, in source
// order, or nil if the wrapped node is not an object.
func (a Accessor) Keys() []string {
	if a.node == nil || a.node.Kind != ir.KindObject {
		return nil
	}
	keys := make([]string, len(a.node.Children))
	for i, c := range a.node.Children {
		keys[i] = c.Key
	}
	return keys
}
