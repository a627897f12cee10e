// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oaslint/oaslint/ir"
)

func TestDetectFormat(t *testing.T) {
	f, err := DetectFormat("a.yaml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = DetectFormat("a.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = DetectFormat("a.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = DetectFormat("a.txt")
	assert.Error(t, err)
}

func TestLoad_YAML(t *testing.T) {
	raw := []byte("openapi: 3.0.0\ninfo:\n  title: Pets\n  version: \"1.0\"\npaths: {}\n")
	doc, err := Load("/proj/a.yaml", raw, time.Now())
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, doc.Format)
	assert.NotZero(t, doc.Hash)

	title := doc.NodeAt("/info/title")
	require.NotNil(t, title)
	v, ok := title.StringValue()
	require.True(t, ok)
	assert.Equal(t, "Pets", v)
	assert.True(t, title.Loc.HasKeyRange())

	version := doc.NodeAt("/info/version")
	require.NotNil(t, version)
	vv, ok := version.StringValue()
	require.True(t, ok)
	assert.Equal(t, "1.0", vv)
	// The raw span of a quoted YAML scalar must include the quote bytes
	// themselves, not just the decoded value's length.
	assert.Equal(t, `"1.0"`, string(raw[version.Loc.ValStart:version.Loc.ValEnd]))
}

func TestLoad_JSON(t *testing.T) {
	raw := []byte(`{"openapi":"3.0.0","info":{"title":"Pets","version":"1.0"},"paths":{}}`)
	doc, err := Load("/proj/a.json", raw, time.Now())
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, doc.Format)

	title := doc.NodeAt("/info/title")
	require.NotNil(t, title)
	v, ok := title.StringValue()
	require.True(t, ok)
	assert.Equal(t, "Pets", v)
	assert.True(t, title.Loc.HasKeyRange())
	assert.Equal(t, "Pets", string(raw[title.Loc.ValStart+1:title.Loc.ValEnd-1]))
}

func TestLoad_ParseError_YAML(t *testing.T) {
	raw := []byte("openapi: [unclosed\n")
	_, err := Load("/proj/bad.yaml", raw, time.Now())
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestLoad_ParseError_JSON(t *testing.T) {
	raw := []byte(`{"openapi": `)
	_, err := Load("/proj/bad.json", raw, time.Now())
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("/proj/a.txt", []byte("x"), time.Now())
	assert.Error(t, err)
}

func TestLoad_ArrayIndicesAsPointerSegments(t *testing.T) {
	raw := []byte("servers:\n  - url: https://a.example.com\n  - url: http://b.example.com\n")
	doc, err := Load("/proj/a.yaml", raw, time.Now())
	require.NoError(t, err)

	first := doc.NodeAt("/servers/0/url")
	require.NotNil(t, first)
	v, _ := first.StringValue()
	assert.Equal(t, "https://a.example.com", v)

	second := doc.NodeAt("/servers/1/url")
	require.NotNil(t, second)
	v, _ = second.StringValue()
	assert.Equal(t, "http://b.example.com", v)
}

func TestLoad_PointerEscaping(t *testing.T) {
	raw := []byte("paths:\n  /users/{id}:\n    get:\n      summary: get user\n")
	doc, err := Load("/proj/a.yaml", raw, time.Now())
	require.NoError(t, err)

	node := doc.NodeAt("/paths/~1users~1{id}/get")
	require.NotNil(t, node)
	assert.Equal(t, ir.KindObject, node.Kind)
}
