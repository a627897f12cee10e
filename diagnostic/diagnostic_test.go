// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeverity(t *testing.T) {
	sev, ok := ParseSeverity("error")
	assert.True(t, ok)
	assert.Equal(t, SeverityError, sev)

	sev, ok = ParseSeverity("off")
	assert.True(t, ok)
	assert.Equal(t, SeverityOff, sev)

	_, ok = ParseSeverity("bogus")
	assert.False(t, ok)
}

func TestSort_OrdersByURIThenRangeThenRuleThenMessage(t *testing.T) {
	diags := []*Diagnostic{
		{URI: "b.yaml", Range: Range{Start: Position{Line: 1}}, RuleID: "z"},
		{URI: "a.yaml", Range: Range{Start: Position{Line: 5}}, RuleID: "a"},
		{URI: "a.yaml", Range: Range{Start: Position{Line: 1}}, RuleID: "b"},
		{URI: "a.yaml", Range: Range{Start: Position{Line: 1}}, RuleID: "a", Message: "z"},
		{URI: "a.yaml", Range: Range{Start: Position{Line: 1}}, RuleID: "a", Message: "a"},
	}
	Sort(diags)

	var order []string
	for _, d := range diags {
		order = append(order, d.URI+"|"+d.RuleID+"|"+d.Message)
	}
	assert.Equal(t, []string{
		"a.yaml|a|a",
		"a.yaml|a|z",
		"a.yaml|b|",
		"a.yaml|a|",
		"b.yaml|z|",
	}, order)
}

func TestSort_IsStableAndDeterministic(t *testing.T) {
	diags := []*Diagnostic{
		{URI: "a.yaml", RuleID: "x", Message: "1"},
		{URI: "a.yaml", RuleID: "x", Message: "1"},
	}
	Sort(diags)
	assert.Equal(t, "1", diags[0].Message)
	assert.Equal(t, "1", diags[1].Message)
}
