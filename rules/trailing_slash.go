// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"
	"strings"

	"github.com/oaslint/oaslint/diagnostic"
	"github.com/oaslint/oaslint/engine"
	"github.com/oaslint/oaslint/visitor"
)

// PathNoTrailingSlash flags a path template that ends in "/" besides
// the root path "/" itself, since most HTTP routers treat "/users" and
// "/users/" as distinct routes and a trailing slash is rarely meant.
func PathNoTrailingSlash() engine.Rule {
	return engine.DefineRule(engine.Meta{
		ID:              "path-no-trailing-slash",
		Type:            engine.TypeSuggestion,
		Description:     "path templates should not end with a trailing slash",
		DefaultSeverity: diagnostic.SeverityWarning,
	}, func(ctx *engine.Context) visitor.Events {
		return visitor.Events{
			PathItem: func(ev visitor.PathItemEvent) {
				if len(ev.PathTemplate) <= 1 || !strings.HasSuffix(ev.PathTemplate, "/") {
					return
				}
				parent, key := parentOf(ev.Pointer)
				reportKey(ctx, ev.URI, parent, key, fmt.Sprintf("path %q has a trailing slash", ev.PathTemplate))
			},
		}
	})
}
