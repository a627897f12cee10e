// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"sort"

	"github.com/oaslint/oaslint/diagnostic"
	"github.com/oaslint/oaslint/internal/logging"
	"github.com/oaslint/oaslint/rolodex"
	"github.com/oaslint/oaslint/ruleapi"
	"github.com/oaslint/oaslint/visitor"
)

// Options tunes one RunEngine call.
type Options struct {
	// SeverityOverrides maps a rule ID to a user-configured severity.
	// diagnostic.SeverityOff suppresses that rule's output entirely.
	SeverityOverrides map[string]diagnostic.Severity

	// Cancel, if non-nil, is polled at the boundary before each rule
	// invocation. Once it reports true the runtime stops scheduling
	// further rules and returns what has been accumulated so far.
	Cancel func() bool

	Logger logging.Logger
}

// Result is runEngine's output.
type Result struct {
	Diagnostics []*diagnostic.Diagnostic
	Fixes       []*diagnostic.FilePatch

	// Cancelled reports whether Options.Cancel was observed before all
	// rules ran. Callers on the LSP workspace path discard Diagnostics
	// when this is true; the CLI path keeps them.
	Cancelled bool
}

// RunEngine runs every applicable rule against project once, in
// deterministic rule order, and returns the merged, sorted diagnostic
// set filtered to entrypointUris.
//
// entrypointUris must be non-empty: rules may need the whole project
// for cross-file context, but only diagnostics on the requested
// documents are returned.
func RunEngine(project *rolodex.ProjectContext, entrypointUris []string, rules []Rule, opts Options) Result {
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}

	ordered := orderedRules(rules)
	applicable := filterByScope(ordered, project.Mode)
	locator := ruleapi.NewLocator(project.DocSource())
	docs := documentInputs(project)

	var all []*diagnostic.Diagnostic
	cancelled := false
	for _, rule := range applicable {
		if opts.Cancel != nil && opts.Cancel() {
			log.Infow("rule scheduling cancelled", "remainingRules", len(applicable))
			cancelled = true
			break
		}

		severity := resolveSeverity(rule.Meta, opts.SeverityOverrides)
		if severity == diagnostic.SeverityOff {
			continue
		}

		ctx := newContext(rule.Meta.ID, severity, project, locator)
		diags, err := runRule(rule, ctx, docs)
		if err != nil {
			log.Errorw("rule failed", "ruleId", rule.Meta.ID, "error", err)
			diags = []*diagnostic.Diagnostic{selfDiagnostic(rule.Meta.ID, entrypointUris, project, err)}
		}
		all = append(all, diags...)
	}

	filtered := filterByEntrypoints(all, entrypointUris)
	diagnostic.Sort(filtered)

	return Result{
		Diagnostics: filtered,
		Fixes:       collectFixes(filtered),
		Cancelled:   cancelled,
	}
}

// runRule drives one rule's factory and visitor dispatch under a single
// recover boundary: a panic anywhere in the rule's check function or
// any of its callbacks is rule isolation's one failure mode in Go,
// since rule bodies never return an error themselves.
func runRule(rule Rule, ctx *Context, docs []visitor.DocumentInput) (diags []*diagnostic.Diagnostic, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	state := rule.allocateState()
	events := rule.run(ctx, state)
	visitor.Dispatch(events, docs)
	return ctx.diags, nil
}

func (r Rule) allocateState() any {
	if r.newState == nil {
		return nil
	}
	return r.newState()
}

func (r Rule) run(ctx *Context, state any) visitor.Events {
	return r.check(ctx, state)
}

func orderedRules(rules []Rule) []Rule {
	out := append([]Rule(nil), rules...)
	sort.Slice(out, func(i, j int) bool { return out[i].Meta.ID < out[j].Meta.ID })
	return out
}

func filterByScope(rules []Rule, mode rolodex.Mode) []Rule {
	if mode != rolodex.ModeFragment {
		return rules
	}
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Meta.scope() == ScopeSingleFile {
			out = append(out, r)
		}
	}
	return out
}

func resolveSeverity(meta Meta, overrides map[string]diagnostic.Severity) diagnostic.Severity {
	if s, ok := overrides[meta.ID]; ok {
		return s
	}
	if meta.DefaultSeverity != 0 {
		return meta.DefaultSeverity
	}
	return diagnostic.SeverityWarning
}

func selfDiagnostic(ruleID string, entrypoints []string, project *rolodex.ProjectContext, cause error) *diagnostic.Diagnostic {
	uri := ""
	switch {
	case len(entrypoints) > 0:
		uri = entrypoints[0]
	case len(project.RootUris) > 0:
		uri = project.RootUris[0]
	}
	return &diagnostic.Diagnostic{
		URI:      uri,
		Severity: diagnostic.SeverityError,
		Message:  fmt.Sprintf("rule %q failed: %v", ruleID, cause),
		RuleID:   ruleID,
		Source:   "oaslint",
	}
}

func filterByEntrypoints(diags []*diagnostic.Diagnostic, entrypoints []string) []*diagnostic.Diagnostic {
	if len(entrypoints) == 0 {
		return diags
	}
	wanted := make(map[string]bool, len(entrypoints))
	for _, uri := range entrypoints {
		wanted[uri] = true
	}
	out := make([]*diagnostic.Diagnostic, 0, len(diags))
	for _, d := range diags {
		if wanted[d.URI] {
			out = append(out, d)
		}
	}
	return out
}

func collectFixes(diags []*diagnostic.Diagnostic) []*diagnostic.FilePatch {
	var fixes []*diagnostic.FilePatch
	for _, d := range diags {
		fixes = append(fixes, d.Fixes...)
	}
	return fixes
}

func documentInputs(project *rolodex.ProjectContext) []visitor.DocumentInput {
	uris := make([]string, 0, len(project.Docs))
	for uri := range project.Docs {
		uris = append(uris, uri)
	}
	sort.Strings(uris)

	isRoot := make(map[string]bool, len(project.RootUris))
	for _, uri := range project.RootUris {
		isRoot[uri] = true
	}

	docs := make([]visitor.DocumentInput, 0, len(uris))
	for _, uri := range uris {
		d := project.Docs[uri]
		docs = append(docs, visitor.DocumentInput{
			URI:     uri,
			Root:    d.Root,
			IsRoot:  isRoot[uri],
			Version: project.Version,
		})
	}
	return docs
}
