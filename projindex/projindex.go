// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

// Package projindex builds derived, read-only views over a project's
// documents: operations by id, operations by path, components grouped
// by section, and declared tag names.
package projindex

import (
	orderedmap "github.com/oaslint/oaslint/orderedmap"

	"github.com/oaslint/oaslint/ir"
)

// OperationRef locates one operation occurrence.
type OperationRef struct {
	URI     string
	Pointer string
	Method  string
}

var httpMethods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

var componentSections = []string{
	"schemas", "parameters", "responses", "requestBodies",
	"headers", "securitySchemes", "links", "callbacks", "examples",
}

// Index holds the derived views for one project. It never mutates once
// built; a document change triggers a full rebuild by the owning
// rolodex, not an in-place update.
type Index struct {
	// OperationsByID maps operationId to every occurrence found, so
	// duplicate-id rules can flag collisions instead of silently
	// picking one.
	OperationsByID map[string][]OperationRef

	// OperationsByPath maps a path template string to its path-item
	// pointer.
	OperationsByPath orderedmap.Map[string, string]

	// ComponentsBySection maps a components subsection name (schemas,
	// parameters, ...) to an ordered map from component name to its
	// pointer.
	ComponentsBySection map[string]orderedmap.Map[string, string]

	// TagNames is the set of tag names declared at a root's top-level
	// "tags" array.
	TagNames map[string]bool
}

// New returns an empty Index.
func New() *Index {
	return &Index{
		OperationsByID:      map[string][]OperationRef{},
		OperationsByPath:    orderedmap.New[string, string](),
		ComponentsBySection: map[string]orderedmap.Map[string, string]{},
		TagNames:            map[string]bool{},
	}
}

// Build walks every root document's IR once and populates a fresh
// Index. roots maps each root document's URI to its IR root node.
func Build(roots map[string]*ir.Node) *Index {
	idx := New()
	for uri, root := range roots {
		indexPaths(idx, uri, root)
		indexComponents(idx, uri, root)
		indexTags(idx, root)
	}
	return idx
}

func indexPaths(idx *Index, uri string, root *ir.Node) {
	paths := root.Child("paths")
	if paths == nil || paths.Kind != ir.KindObject {
		return
	}
	for _, pathItem := range paths.Children {
		idx.OperationsByPath.Set(pathItem.Key, pathItem.Pointer)
		for _, method := range httpMethods {
			op := pathItem.Child(method)
			if op == nil {
				continue
			}
			ref := OperationRef{URI: uri, Pointer: op.Pointer, Method: method}
			if opID := op.Child("operationId"); opID != nil {
				if id, ok := opID.StringValue(); ok {
					idx.OperationsByID[id] = append(idx.OperationsByID[id], ref)
				}
			}
		}
	}
}

func indexComponents(idx *Index, _ string, root *ir.Node) {
	components := root.Child("components")
	if components == nil || components.Kind != ir.KindObject {
		return
	}
	for _, section := range componentSections {
		sec := components.Child(section)
		if sec == nil || sec.Kind != ir.KindObject {
			continue
		}
		m, ok := idx.ComponentsBySection[section]
		if !ok {
			m = orderedmap.New[string, string]()
			idx.ComponentsBySection[section] = m
		}
		for _, entry := range sec.Children {
			m.Set(entry.Key, entry.Pointer)
		}
	}
}

func indexTags(idx *Index, root *ir.Node) {
	tags := root.Child("tags")
	if tags == nil || tags.Kind != ir.KindArray {
		return
	}
	for _, tag := range tags.Children {
		if tag.Kind != ir.KindObject {
			continue
		}
		if nameNode := tag.Child("name"); nameNode != nil {
			if name, ok := nameNode.StringValue(); ok {
				idx.TagNames[name] = true
			}
		}
	}
}
