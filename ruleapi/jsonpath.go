// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package ruleapi

import (
	"github.com/oaslint/oaslint/document"
	"github.com/oaslint/oaslint/ir"
	"github.com/oaslint/oaslint/utils"
)

// FindByPath evaluates a JSONPath expression against doc and returns the
// ir.Node matching each result. JSONPath matches are found by parsing
// doc.Raw independently of the IR, then mapped back onto the IR by
// converting each match's line/column into a byte offset and locating
// the deepest node covering it.
func FindByPath(doc *document.Document, jsonPath string) ([]*ir.Node, error) {
	if doc == nil {
		return nil, nil
	}
	matches, err := utils.FindNodes(doc.Raw, jsonPath)
	if err != nil {
		return nil, err
	}
	out := make([]*ir.Node, 0, len(matches))
	for _, m := range matches {
		if m.Line == 0 {
			continue
		}
		offset := doc.Lines.Offset(m.Line, m.Column)
		if n := ir.NodeAtOffset(doc.Root, offset); n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}
