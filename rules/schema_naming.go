// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"

	"github.com/oaslint/oaslint/diagnostic"
	"github.com/oaslint/oaslint/engine"
	"github.com/oaslint/oaslint/utils"
	"github.com/oaslint/oaslint/visitor"
)

// ComponentSchemaNameCapital flags a components.schemas entry whose name
// is not PascalCase, the convention code generators targeting OpenAPI
// schemas assume for the type names they emit.
func ComponentSchemaNameCapital() engine.Rule {
	return engine.DefineRule(engine.Meta{
		ID:              "component-schema-name-capital",
		Type:            engine.TypeSuggestion,
		Description:     "component schema names should be PascalCase",
		DefaultSeverity: diagnostic.SeverityError,
	}, func(ctx *engine.Context) visitor.Events {
		return visitor.Events{
			Component: func(ev visitor.ComponentEvent) {
				if ev.Section != "schemas" {
					return
				}
				if utils.DetectCase(ev.Name) == utils.PascalCase {
					return
				}
				parent, key := parentOf(ev.Pointer)
				reportKey(ctx, ev.URI, parent, key, fmt.Sprintf("schema name %q is not PascalCase", ev.Name))
			},
		}
	})
}
