// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/oaslint/oaslint/diagnostic"
)

func writeJSON(w io.Writer, diags []*diagnostic.Diagnostic) error {
	return json.NewEncoder(w).Encode(diags)
}

func writeStdout(w io.Writer, diags []*diagnostic.Diagnostic) {
	var errors, warnings int
	for _, d := range diags {
		fmt.Fprintf(w, "%s:%d:%d [%s] %s (%s)\n",
			d.URI, d.Range.Start.Line+1, d.Range.Start.Character+1, d.Severity, d.Message, d.RuleID)
		switch d.Severity {
		case diagnostic.SeverityError:
			errors++
		case diagnostic.SeverityWarning:
			warnings++
		}
	}
	fmt.Fprintf(w, "found %d issues: %d errors, %d warnings\n", len(diags), errors, warnings)
}
