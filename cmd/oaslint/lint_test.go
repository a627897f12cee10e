// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oaslint/oaslint/diagnostic"
)

func TestParseSeverityOverrides_Empty(t *testing.T) {
	overrides, err := parseSeverityOverrides(nil)
	require.NoError(t, err)
	assert.Nil(t, overrides)
}

func TestParseSeverityOverrides_ValidEntries(t *testing.T) {
	overrides, err := parseSeverityOverrides([]string{
		"unresolved-ref=off",
		"operation-pagination=warning",
	})
	require.NoError(t, err)
	assert.Equal(t, diagnostic.SeverityOff, overrides["unresolved-ref"])
	assert.Equal(t, diagnostic.SeverityWarning, overrides["operation-pagination"])
}

func TestParseSeverityOverrides_MissingEqualsIsError(t *testing.T) {
	_, err := parseSeverityOverrides([]string{"unresolved-ref"})
	assert.Error(t, err)
}

func TestParseSeverityOverrides_UnknownSeverityIsError(t *testing.T) {
	_, err := parseSeverityOverrides([]string{"unresolved-ref=critical"})
	assert.Error(t, err)
}

func TestParseSeverityOverrides_EmptyRuleIDIsError(t *testing.T) {
	_, err := parseSeverityOverrides([]string{"=warning"})
	assert.Error(t, err)
}

func TestWriteStdout_SummarisesCounts(t *testing.T) {
	diags := []*diagnostic.Diagnostic{
		{URI: "/proj/a.yaml", Severity: diagnostic.SeverityError, Message: "bad", RuleID: "x"},
		{URI: "/proj/a.yaml", Severity: diagnostic.SeverityWarning, Message: "meh", RuleID: "y"},
	}
	var buf bytes.Buffer
	writeStdout(&buf, diags)
	out := buf.String()
	assert.Contains(t, out, "/proj/a.yaml")
	assert.Contains(t, out, "found 2 issues: 1 errors, 1 warnings")
}

func TestWriteJSON_EncodesDiagnostics(t *testing.T) {
	diags := []*diagnostic.Diagnostic{
		{URI: "/proj/a.yaml", Severity: diagnostic.SeverityError, Message: "bad", RuleID: "x"},
	}
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, diags))
	assert.Contains(t, buf.String(), `"ruleId":"x"`)
}
