// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package document

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/oaslint/oaslint/ir"
)

// LowerJSON parses raw JSON bytes into an ir.Node tree. Offsets are
// derived from json.Decoder.InputOffset, which the standard library
// documents as the byte position of the boundary between the most
// recently returned token and the next. Returns *ParseError on
// malformed JSON.
func LowerJSON(uri string, raw []byte) (*ir.Node, *ir.Arena, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	arena := ir.NewArena(64)
	jl := &jsonLowerer{uri: uri, raw: raw, dec: dec, arena: arena}

	node, err := jl.lowerValue("")
	if err != nil {
		if err == io.EOF {
			return arena.New(&ir.Node{URI: uri, Kind: ir.KindNull, Pointer: ""}), arena, nil
		}
		return nil, nil, &ParseError{URI: uri, Offset: int(dec.InputOffset()), Cause: err}
	}
	return node, arena, nil
}

type jsonLowerer struct {
	uri   string
	raw   []byte
	dec   *json.Decoder
	arena *ir.Arena
}

func (jl *jsonLowerer) lowerValue(pointer string) (*ir.Node, error) {
	startOffset := int(jl.dec.InputOffset())
	tok, err := jl.dec.Token()
	if err != nil {
		return nil, err
	}
	start := jl.scalarStart(startOffset)

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return jl.lowerObject(pointer, start)
		case '[':
			return jl.lowerArray(pointer, start)
		default:
			return nil, io.ErrUnexpectedEOF
		}
	case string:
		end := int(jl.dec.InputOffset())
		return jl.arena.New(&ir.Node{URI: jl.uri, Kind: ir.KindString, Pointer: pointer, Value: t, Loc: ir.Loc{Start: start, End: end}}), nil
	case float64:
		end := int(jl.dec.InputOffset())
		return jl.arena.New(&ir.Node{URI: jl.uri, Kind: ir.KindNumber, Pointer: pointer, Value: t, Loc: ir.Loc{Start: start, End: end}}), nil
	case bool:
		end := int(jl.dec.InputOffset())
		return jl.arena.New(&ir.Node{URI: jl.uri, Kind: ir.KindBoolean, Pointer: pointer, Value: t, Loc: ir.Loc{Start: start, End: end}}), nil
	case nil:
		end := int(jl.dec.InputOffset())
		return jl.arena.New(&ir.Node{URI: jl.uri, Kind: ir.KindNull, Pointer: pointer, Loc: ir.Loc{Start: start, End: end}}), nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

// scalarStart advances from the offset just past the previous token to
// the next token's actual first byte by skipping the whitespace/punctuation
// between them, which the decoder has already consumed.
func (jl *jsonLowerer) scalarStart(afterPrevToken int) int {
	i := afterPrevToken
	for i < len(jl.raw) {
		switch jl.raw[i] {
		case ' ', '\t', '\n', '\r', ',', ':':
			i++
			continue
		}
		return i
	}
	return afterPrevToken
}

func (jl *jsonLowerer) lowerObject(pointer string, start int) (*ir.Node, error) {
	var children []*ir.Node
	for jl.dec.More() {
		keyOffset := int(jl.dec.InputOffset())
		keyTok, err := jl.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, io.ErrUnexpectedEOF
		}
		keyStart := jl.scalarStart(keyOffset)
		keyEnd := int(jl.dec.InputOffset())

		childPointer := ir.AppendSegment(pointer, key)
		child, err := jl.lowerValue(childPointer)
		if err != nil {
			return nil, err
		}
		child.Key = key
		child.Loc.KeyStart, child.Loc.KeyEnd = keyStart, keyEnd
		child.Loc.ValStart, child.Loc.ValEnd = child.Loc.Start, child.Loc.End
		children = append(children, child)
	}
	// consume closing '}'
	if _, err := jl.dec.Token(); err != nil {
		return nil, err
	}
	end := int(jl.dec.InputOffset())
	return jl.arena.New(&ir.Node{URI: jl.uri, Kind: ir.KindObject, Pointer: pointer, Children: children, Loc: ir.Loc{Start: start, End: end}}), nil
}

func (jl *jsonLowerer) lowerArray(pointer string, start int) (*ir.Node, error) {
	var children []*ir.Node
	i := 0
	for jl.dec.More() {
		childPointer := ir.AppendSegment(pointer, itoa(i))
		child, err := jl.lowerValue(childPointer)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		i++
	}
	if _, err := jl.dec.Token(); err != nil {
		return nil, err
	}
	end := int(jl.dec.InputOffset())
	return jl.arena.New(&ir.Node{URI: jl.uri, Kind: ir.KindArray, Pointer: pointer, Children: children, Loc: ir.Loc{Start: start, End: end}}), nil
}
