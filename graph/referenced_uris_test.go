// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package graph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oaslint/oaslint/document"
)

func TestReferencedURIs_ExcludesSelfIncludesExternalOnce(t *testing.T) {
	raw := []byte("paths:\n" +
		"  /pets:\n" +
		"    get:\n" +
		"      responses:\n" +
		"        \"200\":\n" +
		"          $ref: \"#/components/responses/Ok\"\n" +
		"    post:\n" +
		"      responses:\n" +
		"        \"201\":\n" +
		"          $ref: \"./responses.yaml#/Created\"\n" +
		"components:\n" +
		"  schemas:\n" +
		"    Pet:\n" +
		"      $ref: \"./responses.yaml#/Pet\"\n")
	doc, err := document.Load("/proj/a.yaml", raw, time.Now())
	require.NoError(t, err)

	uris := ReferencedURIs(doc.URI, doc.Root)
	assert.Equal(t, []string{"/proj/responses.yaml"}, uris)
}

func TestReferencedURIs_NoRefsReturnsNil(t *testing.T) {
	raw := []byte("openapi: 3.0.0\ninfo:\n  title: Pets\n")
	doc, err := document.Load("/proj/a.yaml", raw, time.Now())
	require.NoError(t, err)

	assert.Nil(t, ReferencedURIs(doc.URI, doc.Root))
}
