// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"

	"github.com/oaslint/oaslint/diagnostic"
)

// ParseErrorDiagnostic builds the synthetic diagnostic emitted for a
// document that failed to parse: engine rules never run against it
// (there is no IR to visit), so the failure is reported directly by
// whatever resolves the project rather than through the rule runtime.
func ParseErrorDiagnostic(uri string, cause error) *diagnostic.Diagnostic {
	return &diagnostic.Diagnostic{
		URI:      uri,
		Severity: diagnostic.SeverityError,
		Message:  fmt.Sprintf("failed to parse %s: %v", uri, cause),
		RuleID:   "parse-error",
		Source:   "oaslint",
	}
}

// LoadErrorDiagnostic builds the synthetic diagnostic emitted for a
// document the filesystem port could not read at all.
func LoadErrorDiagnostic(uri string, cause error) *diagnostic.Diagnostic {
	return &diagnostic.Diagnostic{
		URI:      uri,
		Severity: diagnostic.SeverityError,
		Message:  fmt.Sprintf("failed to load %s: %v", uri, cause),
		RuleID:   "load-error",
		Source:   "oaslint",
	}
}
