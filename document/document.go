// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package document

import (
	"time"

	"github.com/oaslint/oaslint/internal/contenthash"
	"github.com/oaslint/oaslint/ir"
)

// Document is a single file identified by a normalised URI. Two
// Documents with equal Hash are defined to have structurally identical
// IR; callers use Hash as the cache identity instead of comparing raw
// bytes or re-walking the IR.
type Document struct {
	URI     string
	Format  Format
	Raw     []byte
	Hash    uint64
	ModTime time.Time

	Root  *ir.Node
	Arena *ir.Arena
	Lines *LineIndex
}

// Load parses raw bytes into a Document. uri must already be normalised
// (see NormalizeURI). Returns *ParseError if the bytes are syntactically
// invalid for the detected format.
func Load(uri string, raw []byte, modTime time.Time) (*Document, error) {
	format, err := DetectFormat(uri)
	if err != nil {
		return nil, err
	}

	var root *ir.Node
	var arena *ir.Arena
	switch format {
	case FormatJSON:
		root, arena, err = LowerJSON(uri, raw)
	default:
		root, arena, err = LowerYAML(uri, raw)
	}
	if err != nil {
		return nil, err
	}

	return &Document{
		URI:     uri,
		Format:  format,
		Raw:     raw,
		Hash:    contenthash.OfBytes(raw),
		ModTime: modTime,
		Root:    root,
		Arena:   arena,
		Lines:   NewLineIndex(raw),
	}, nil
}

// NodeAt returns the node at pointer p within this Document's IR, or nil.
func (d *Document) NodeAt(p string) *ir.Node {
	return ir.FindByPointer(d.Root, p)
}
