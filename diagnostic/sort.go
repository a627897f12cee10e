// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package diagnostic

import "sort"

// Sort orders diags by (uri, line, column, ruleId, message), stably and
// deterministically, matching the ordering contract every rule run must
// produce regardless of the order rules executed in.
func Sort(diags []*Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.URI != b.URI {
			return a.URI < b.URI
		}
		if a.Range.Start.Line != b.Range.Start.Line {
			return a.Range.Start.Line < b.Range.Start.Line
		}
		if a.Range.Start.Character != b.Range.Start.Character {
			return a.Range.Start.Character < b.Range.Start.Character
		}
		if a.RuleID != b.RuleID {
			return a.RuleID < b.RuleID
		}
		return a.Message < b.Message
	})
}
