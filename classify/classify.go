// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

// Package classify tags a document's parsed root with a Kind by pure
// structural inspection, with no dependence on anything but the node
// itself.
package classify

import (
	"github.com/oaslint/oaslint/ir"
)

// Kind is the tag assigned to a document's root IR node.
type Kind string

const (
	KindRoot           Kind = "root"
	KindPathItem       Kind = "path-item"
	KindOperation      Kind = "operation"
	KindComponents     Kind = "components"
	KindSchema         Kind = "schema"
	KindParameter      Kind = "parameter"
	KindResponse       Kind = "response"
	KindSecurityScheme Kind = "security-scheme"
	KindExample        Kind = "example"
	KindUnknown        Kind = "unknown"
)

var httpMethods = map[string]bool{
	"get": true, "put": true, "post": true, "delete": true,
	"options": true, "head": true, "patch": true, "trace": true,
}

var securitySchemeTypes = map[string]bool{
	"apiKey": true, "http": true, "oauth2": true, "openIdConnect": true,
}

// Classify applies the priority-ordered rules to n and returns its tag.
// It depends only on n: equal nodes (same shape, same children keys and
// kinds) yield equal tags regardless of URI, document, or call order.
func Classify(n *ir.Node) Kind {
	if n == nil || n.Kind != ir.KindObject {
		return KindUnknown
	}

	if n.Has("openapi") || n.Has("swagger") {
		return KindRoot
	}
	if n.Has("info") || n.Has("paths") || n.Has("components") || n.Has("webhooks") {
		return KindRoot
	}
	if hasHTTPMethodChild(n) {
		return KindPathItem
	}
	if (n.Has("operationId") || n.Has("summary")) && isObjectChild(n, "responses") {
		return KindOperation
	}
	if n.Has("components") {
		return KindComponents
	}
	if isSecuritySchemeType(n) || n.Has("flows") {
		return KindSecurityScheme
	}
	if (n.Has("value") || n.Has("externalValue")) && (n.Has("summary") || n.Has("description")) {
		return KindExample
	}
	if isStringChild(n, "name") && isStringChild(n, "in") {
		return KindParameter
	}
	if n.Has("description") && (isObjectChild(n, "content") || isObjectChild(n, "schema")) {
		return KindResponse
	}
	if isStringChild(n, "type") || n.Has("$ref") || n.Has("allOf") || n.Has("oneOf") || n.Has("anyOf") {
		return KindSchema
	}
	return KindUnknown
}

func hasHTTPMethodChild(n *ir.Node) bool {
	for _, c := range n.Children {
		if c.Kind == ir.KindObject && httpMethods[c.Key] {
			return true
		}
	}
	return false
}

func isObjectChild(n *ir.Node, key string) bool {
	c := n.Child(key)
	return c != nil && c.Kind == ir.KindObject
}

func isStringChild(n *ir.Node, key string) bool {
	c := n.Child(key)
	return c != nil && c.Kind == ir.KindString
}

func isSecuritySchemeType(n *ir.Node) bool {
	c := n.Child("type")
	if c == nil || c.Kind != ir.KindString {
		return false
	}
	v, _ := c.StringValue()
	return securitySchemeTypes[v]
}
