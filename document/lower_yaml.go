// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package document

import (
	"gopkg.in/yaml.v3"

	"github.com/oaslint/oaslint/ir"
)

// yamlLowerer lowers a *yaml.Node CST into ir.Node, tracking anchor
// definitions so later aliases can record the defining pointer.
type yamlLowerer struct {
	uri     string
	raw     []byte
	idx     *LineIndex
	arena   *ir.Arena
	anchors map[string]string // anchor name -> defining pointer
}

// LowerYAML parses raw YAML bytes and lowers the result into an ir.Node
// tree rooted at the document. Returns *ParseError on malformed YAML.
func LowerYAML(uri string, raw []byte) (*ir.Node, *ir.Arena, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, &ParseError{URI: uri, Cause: err}
	}
	arena := ir.NewArena(64)
	l := &yamlLowerer{uri: uri, raw: raw, idx: NewLineIndex(raw), arena: arena, anchors: map[string]string{}}
	if len(doc.Content) == 0 {
		root := arena.New(&ir.Node{URI: uri, Kind: ir.KindNull, Pointer: ""})
		return root, arena, nil
	}
	root := l.lower(doc.Content[0], "", "")
	return root, arena, nil
}

// rangeOf returns a node's raw byte span. yaml.v3 only hands back the
// start (Line, Column); for collections the end is widened from the
// last child elsewhere, and for scalars the raw span can differ from
// len(n.Value) since Value is decoded (quotes stripped, escapes
// resolved, block scalars dedented). scalarEnd recovers the true end
// by scanning the original bytes instead of trusting the decoded
// length.
func (l *yamlLowerer) rangeOf(n *yaml.Node) (start, end int) {
	start = l.idx.Offset(n.Line, n.Column)
	if n.Kind != yaml.ScalarNode {
		length := len(n.Value)
		if length == 0 {
			length = 1
		}
		return start, start + length
	}
	return start, l.scalarEnd(n, start)
}

// scalarEnd returns the offset just past a scalar's raw text.
func (l *yamlLowerer) scalarEnd(n *yaml.Node, start int) int {
	switch n.Style {
	case yaml.DoubleQuotedStyle:
		return l.quotedEnd(start, '"', true)
	case yaml.SingleQuotedStyle:
		return l.quotedEnd(start, '\'', false)
	case yaml.LiteralStyle, yaml.FoldedStyle:
		return l.blockScalarEnd(n, start)
	default:
		length := len(n.Value)
		if length == 0 {
			length = 1
		}
		return start + length
	}
}

// quotedEnd scans from the opening quote at start to its matching
// closing quote, honouring each style's escaping rule: backslash
// escapes for double-quoted scalars, a doubled quote for single-quoted
// ones.
func (l *yamlLowerer) quotedEnd(start int, quote byte, backslashEscapes bool) int {
	raw := l.raw
	i := start + 1
	for i < len(raw) {
		c := raw[i]
		if backslashEscapes && c == '\\' && i+1 < len(raw) {
			i += 2
			continue
		}
		if c == quote {
			if !backslashEscapes && i+1 < len(raw) && raw[i+1] == quote {
				i += 2
				continue
			}
			return i + 1
		}
		i++
	}
	return len(raw)
}

// blockScalarEnd scans a literal (|) or folded (>) block scalar forward
// from start, which falls somewhere on or before the block's first
// content line, to the last line still inside the block. The block's
// indentation is fixed by its own first non-blank content line (YAML's
// rule, not a guess from the indicator's column, since yaml.v3 gives no
// reliable column for the indicator itself); the block ends at the
// first later non-blank line indented less than that.
func (l *yamlLowerer) blockScalarEnd(n *yaml.Node, start int) int {
	raw := l.raw

	pos := start
	for pos < len(raw) && raw[pos] != '\n' {
		pos++
	}
	end := pos
	contentIndent := -1

	for pos < len(raw) {
		pos++ // past the newline
		lineStart := pos
		indent := 0
		for pos < len(raw) && raw[pos] == ' ' {
			pos++
			indent++
		}
		if pos >= len(raw) {
			break
		}
		if raw[pos] == '\n' {
			end = pos
			continue
		}
		if contentIndent == -1 {
			contentIndent = indent
		} else if indent < contentIndent {
			pos = lineStart
			break
		}
		for pos < len(raw) && raw[pos] != '\n' {
			pos++
		}
		end = pos
	}
	return end
}

func (l *yamlLowerer) lower(n *yaml.Node, pointer, key string) *ir.Node {
	if n.Kind == yaml.AliasNode {
		return l.lowerAlias(n, pointer, key)
	}

	start, end := l.rangeOf(n)
	node := &ir.Node{URI: l.uri, Pointer: pointer, Key: key, Loc: ir.Loc{Start: start, End: end}}

	switch n.Kind {
	case yaml.MappingNode:
		node.Kind = ir.KindObject
		node.Children = l.lowerMapping(n, pointer)
		if len(n.Content) > 0 {
			_, lastEnd := l.childRange(n)
			node.Loc.End = lastEnd
		}
	case yaml.SequenceNode:
		node.Kind = ir.KindArray
		node.Children = make([]*ir.Node, 0, len(n.Content))
		for i, item := range n.Content {
			child := l.lower(item, ir.AppendSegment(pointer, itoa(i)), "")
			node.Children = append(node.Children, l.arena.New(child))
		}
		if len(n.Content) > 0 {
			_, lastEnd := l.childRange(n)
			node.Loc.End = lastEnd
		}
	case yaml.ScalarNode:
		node.Kind, node.Value = decodeScalar(n)
	default:
		node.Kind = ir.KindNull
	}

	if n.Anchor != "" {
		l.anchors[n.Anchor] = pointer
	}

	return l.arena.New(node)
}

// childRange returns the full span a mapping/sequence node's content
// occupies, used to widen the parent's own range past its children.
func (l *yamlLowerer) childRange(n *yaml.Node) (start, end int) {
	start, _ = l.rangeOf(n.Content[0])
	last := n.Content[len(n.Content)-1]
	_, end = l.rangeOf(last)
	if last.Kind == yaml.MappingNode || last.Kind == yaml.SequenceNode {
		if len(last.Content) > 0 {
			_, end = l.childRange(last)
		}
	}
	return start, end
}

func (l *yamlLowerer) lowerMapping(n *yaml.Node, pointer string) []*ir.Node {
	children := make([]*ir.Node, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]
		key := keyNode.Value
		childPointer := ir.AppendSegment(pointer, key)

		keyStart, keyEnd := l.rangeOf(keyNode)
		child := l.lower(valNode, childPointer, key)
		child.Loc.KeyStart, child.Loc.KeyEnd = keyStart, keyEnd
		child.Loc.ValStart, child.Loc.ValEnd = child.Loc.Start, child.Loc.End

		children = append(children, child)
	}
	return children
}

func (l *yamlLowerer) lowerAlias(n *yaml.Node, pointer, key string) *ir.Node {
	start, end := l.rangeOf(n)
	node := &ir.Node{URI: l.uri, Pointer: pointer, Key: key, Loc: ir.Loc{Start: start, End: end}}
	if target := n.Alias; target != nil {
		if p, ok := l.anchors[target.Anchor]; ok {
			node.AliasTargetPtr = p
		}
		node.Kind, node.Value = aliasKind(target)
	} else {
		node.Kind = ir.KindNull
	}
	return l.arena.New(node)
}

func aliasKind(target *yaml.Node) (ir.Kind, any) {
	switch target.Kind {
	case yaml.MappingNode:
		return ir.KindObject, nil
	case yaml.SequenceNode:
		return ir.KindArray, nil
	case yaml.ScalarNode:
		return decodeScalar(target)
	default:
		return ir.KindNull, nil
	}
}

func decodeScalar(n *yaml.Node) (ir.Kind, any) {
	switch n.Tag {
	case "!!str":
		return ir.KindString, n.Value
	case "!!int":
		var v int64
		if err := n.Decode(&v); err == nil {
			return ir.KindNumber, float64(v)
		}
		return ir.KindNumber, nil
	case "!!float":
		var v float64
		if err := n.Decode(&v); err == nil {
			return ir.KindNumber, v
		}
		return ir.KindNumber, nil
	case "!!bool":
		var v bool
		if err := n.Decode(&v); err == nil {
			return ir.KindBoolean, v
		}
		return ir.KindBoolean, nil
	case "!!null":
		return ir.KindNull, nil
	default:
		// Quoted scalars and unrecognised tags are treated as strings;
		// a plain scalar with a custom tag still has text worth linting.
		return ir.KindString, n.Value
	}
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
