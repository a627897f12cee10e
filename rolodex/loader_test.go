// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package rolodex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocument(t *testing.T) {
	fs := memFS(t, map[string]string{"/proj/a.yaml": "openapi: 3.0.0\n"})
	doc, err := readDocument(fs, "/proj/a.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/proj/a.yaml", doc.URI)
}

func TestReadDocument_MissingIsError(t *testing.T) {
	fs := memFS(t, nil)
	_, err := readDocument(fs, "/proj/missing.yaml")
	assert.Error(t, err)
}

func TestLoadMany_SkipsFailuresAndLoadsTheRest(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/proj/a.yaml": "openapi: 3.0.0\n",
		"/proj/b.yaml": "openapi: 3.0.0\n",
	})
	docs := loadMany(fs, []string{"/proj/a.yaml", "/proj/b.yaml", "/proj/missing.yaml"}, nil)
	assert.Len(t, docs, 2)
	assert.Contains(t, docs, "/proj/a.yaml")
	assert.Contains(t, docs, "/proj/b.yaml")
	assert.NotContains(t, docs, "/proj/missing.yaml")
}
