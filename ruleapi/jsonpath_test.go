// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package ruleapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oaslint/oaslint/document"
	"github.com/oaslint/oaslint/ir"
)

func TestFindByPath_MatchesMapToIRNodes(t *testing.T) {
	raw := []byte("openapi: 3.0.0\n" +
		"info:\n" +
		"  title: Pets\n" +
		"  version: \"1.0\"\n")
	doc, err := document.Load("/proj/a.yaml", raw, time.Now())
	require.NoError(t, err)

	nodes, err := FindByPath(doc, "$.info.title")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, ir.KindString, nodes[0].Kind)
	v, ok := nodes[0].StringValue()
	require.True(t, ok)
	assert.Equal(t, "Pets", v)
}

func TestFindByPath_NoMatches(t *testing.T) {
	raw := []byte("openapi: 3.0.0\ninfo:\n  title: Pets\n")
	doc, err := document.Load("/proj/a.yaml", raw, time.Now())
	require.NoError(t, err)

	nodes, err := FindByPath(doc, "$.components.schemas")
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestFindByPath_NilDocument(t *testing.T) {
	nodes, err := FindByPath(nil, "$.info.title")
	require.NoError(t, err)
	assert.Nil(t, nodes)
}
