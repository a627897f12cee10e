// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleYAML = `
info:
  contact:
    name: API Support
  title: Pets
`

func TestFindNodes(t *testing.T) {
	nodes, err := FindNodes([]byte(sampleYAML), "$.info.contact")
	assert.NoError(t, err)
	assert.Len(t, nodes, 1)
}

func TestFindNodes_NoMatch(t *testing.T) {
	nodes, err := FindNodes([]byte(sampleYAML), "$.info.missing")
	assert.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestFindNodes_BadPath(t *testing.T) {
	nodes, err := FindNodes([]byte(sampleYAML), "I am not valid")
	assert.Error(t, err)
	assert.Nil(t, nodes)
}

func TestFixContext(t *testing.T) {
	assert.Equal(t, "$.info.title", FixContext("(root).info.title"))
}

func TestFixContext_ArrayIndex(t *testing.T) {
	assert.Equal(t, "items[0].name", FixContext("items.0.name"))
}

func TestFixContext_HttpCodeIsNotTreatedAsAnIndex(t *testing.T) {
	assert.Equal(t, "responses.200", FixContext("responses.200"))
}

func TestDetectCase(t *testing.T) {
	assert.Equal(t, PascalCase, DetectCase("PetStore"))
	assert.Equal(t, CamelCase, DetectCase("petStore"))
	assert.Equal(t, ScreamingSnakeCase, DetectCase("PET_STORE"))
	assert.Equal(t, SnakeCase, DetectCase("pet_store"))
	assert.Equal(t, KebabCase, DetectCase("pet-store"))
	assert.Equal(t, ScreamingKebabCase, DetectCase("PET-STORE"))
	assert.Equal(t, RegularCase, DetectCase("pet store!"))
	assert.Equal(t, UnknownCase, DetectCase("   "))
}
