// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package rules

import (
	"github.com/oaslint/oaslint/diagnostic"
	"github.com/oaslint/oaslint/engine"
	"github.com/oaslint/oaslint/ruleapi"
	"github.com/oaslint/oaslint/visitor"
)

var paginationResponseCodes = []string{"200", "201"}

// OperationPagination flags a GET operation whose successful response is
// an array schema but which declares neither a "limit" nor an "offset"
// query parameter, since an unbounded list endpoint degrades badly once
// the collection grows.
func OperationPagination() engine.Rule {
	return engine.DefineRule(engine.Meta{
		ID:              "operation-pagination",
		Type:            engine.TypeProblem,
		Description:     "list operations returning an array must accept limit and offset",
		DefaultSeverity: diagnostic.SeverityError,
	}, func(ctx *engine.Context) visitor.Events {
		return visitor.Events{
			Operation: func(ev visitor.OperationEvent) {
				if ev.Method != "get" {
					return
				}
				acc := ctx.Accessor(ev.Node)
				if !returnsArraySchema(acc) {
					return
				}
				present := queryParamNames(acc)
				if !present["limit"] {
					ctx.ReportAt(ev.Event, "parameters", "list operation "+ev.PathTemplate+" is missing a \"limit\" pagination parameter")
				}
				if !present["offset"] {
					ctx.ReportAt(ev.Event, "parameters", "list operation "+ev.PathTemplate+" is missing an \"offset\" pagination parameter")
				}
			},
		}
	})
}

func returnsArraySchema(acc ruleapi.Accessor) bool {
	responses, ok := acc.GetObject("responses")
	if !ok {
		return false
	}
	for _, code := range paginationResponseCodes {
		resp, ok := responses.GetObject(code)
		if !ok {
			continue
		}
		if schemaIsArray(resp) {
			return true
		}
	}
	return false
}

func schemaIsArray(resp ruleapi.Accessor) bool {
	content, ok := resp.GetObject("content")
	if !ok {
		return false
	}
	media, ok := content.GetObject("application/json")
	if !ok {
		return false
	}
	schema, ok := media.GetObject("schema")
	if !ok {
		return false
	}
	t, ok := schema.GetString("type")
	return ok && t == "array"
}

func queryParamNames(acc ruleapi.Accessor) map[string]bool {
	present := map[string]bool{}
	params, ok := acc.GetArray("parameters")
	if !ok {
		return present
	}
	for _, p := range params {
		in, ok := p.GetString("in")
		if !ok || in != "query" {
			continue
		}
		if name, ok := p.GetString("name"); ok {
			present[name] = true
		}
	}
	return present
}
