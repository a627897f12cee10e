// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package document

import (
	"strings"

	lspuri "go.lsp.dev/uri"

	"github.com/oaslint/oaslint/utils"
)

// NormalizeURI strips any fragment and canonicalises a file path or URI
// into the string form used as a map key throughout the project context:
// forward slashes, no Windows drive-colon form, no trailing fragment.
func NormalizeURI(raw string) string {
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	raw = utils.ReplaceWindowsDriveWithLinuxPath(raw)
	if strings.Contains(raw, "://") {
		return string(lspuri.New(raw))
	}
	return string(lspuri.File(raw))
}

// StripFragment removes a trailing "#..." fragment from a ref or URI
// string, leaving the file-addressing portion used for filesystem port
// calls (fragments are document-level, not file-level).
func StripFragment(raw string) string {
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		return raw[:i]
	}
	return raw
}

// Fragment returns the "#/..." portion of a ref string, or "" if none.
func Fragment(raw string) string {
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		return raw[i+1:]
	}
	return ""
}
