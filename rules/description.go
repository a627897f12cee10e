// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package rules

import (
	"github.com/oaslint/oaslint/diagnostic"
	"github.com/oaslint/oaslint/engine"
	"github.com/oaslint/oaslint/visitor"
)

// OperationDescriptionRequired flags an operation with no "description"
// field, the single most common gap between a generated client's
// produced documentation and a usable one.
func OperationDescriptionRequired() engine.Rule {
	return engine.DefineRule(engine.Meta{
		ID:              "operation-description-required",
		Type:            engine.TypeProblem,
		Description:     "every operation must declare a description",
		DefaultSeverity: diagnostic.SeverityError,
	}, func(ctx *engine.Context) visitor.Events {
		return visitor.Events{
			Operation: func(ev visitor.OperationEvent) {
				if ctx.Accessor(ev.Node).Has("description") {
					return
				}
				ctx.ReportAt(ev.Event, "description", "operation "+ev.Method+" "+ev.PathTemplate+" has no description")
			},
		}
	})
}
