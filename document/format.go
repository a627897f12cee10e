// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

// Package document loads raw bytes into a Document: a URI, detected
// format, content hash and lowered ir.Node tree, byte offsets intact.
package document

import (
	"strings"

	"github.com/pkg/errors"
)

// Format names the two source syntaxes a Document may be parsed from.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseError is returned when a document's bytes are syntactically
// invalid for its detected format. It carries the best-effort byte
// offset the underlying parser stopped at, used to place the
// "parse-error" synthetic diagnostic.
type ParseError struct {
	URI    string
	Offset int
	Cause  error
}

func (e *ParseError) Error() string {
	return "parse error in " + e.URI + ": " + e.Cause.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// DetectFormat determines a document's format from its URI's file
// extension. Any extension other than .json/.yaml/.yml is rejected.
func DetectFormat(uri string) (Format, error) {
	path := uri
	if i := strings.IndexByte(path, '#'); i >= 0 {
		path = path[:i]
	}
	switch {
	case strings.HasSuffix(path, ".json"):
		return FormatJSON, nil
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return FormatYAML, nil
	default:
		return "", errors.Errorf("document: unsupported extension for %q", uri)
	}
}
