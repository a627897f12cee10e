// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/oaslint/oaslint/diagnostic"
	"github.com/oaslint/oaslint/document"
	"github.com/oaslint/oaslint/engine"
	"github.com/oaslint/oaslint/fsport"
	"github.com/oaslint/oaslint/internal/logging"
	"github.com/oaslint/oaslint/rolodex"
	"github.com/oaslint/oaslint/rules"
)

// lintCmd lints one project, starting discovery from Entrypoint.
type lintCmd struct {
	Entrypoint string `arg:"" help:"URI or path of the document to lint, root or fragment."`

	Workspace []string `default:"**/*.yaml,**/*.yml,**/*.json" help:"Glob patterns used to discover candidate root documents when Entrypoint is not itself a root."`
	Severity  []string `help:"Override a rule's severity, as ruleId=off|error|warning|info|hint. May be repeated."`
	Format    string   `default:"stdout" enum:"stdout,json" help:"Diagnostic output format."`
	Verbose   bool     `short:"v" help:"Enable debug logging."`
}

func (c *lintCmd) Run(k *kong.Context, log logging.Logger) error {
	overrides, err := parseSeverityOverrides(c.Severity)
	if err != nil {
		return err
	}

	uri := document.NormalizeURI(c.Entrypoint)
	contexts, err := rolodex.Resolve(fsport.NewOS(), uri, c.Workspace, log)
	if err != nil {
		return fmt.Errorf("resolving project for %s: %w", c.Entrypoint, err)
	}

	var all []*diagnostic.Diagnostic
	for _, project := range contexts {
		result := engine.RunEngine(project, []string{uri}, rules.All(), engine.Options{
			SeverityOverrides: overrides,
			Logger:            log,
		})
		all = append(all, result.Diagnostics...)
	}
	diagnostic.Sort(all)

	switch c.Format {
	case "json":
		if err := writeJSON(k.Stdout, all); err != nil {
			return fmt.Errorf("writing json output: %w", err)
		}
	default:
		writeStdout(k.Stdout, all)
	}

	exitCode := 0
	for _, d := range all {
		if d.Severity == diagnostic.SeverityError && exitCode < 1 {
			exitCode = 1
		}
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

// parseSeverityOverrides parses "ruleId=severity" pairs into the map
// engine.Options.SeverityOverrides expects.
func parseSeverityOverrides(raw []string) (map[string]diagnostic.Severity, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	overrides := make(map[string]diagnostic.Severity, len(raw))
	for _, entry := range raw {
		ruleID, name, ok := strings.Cut(entry, "=")
		if !ok || ruleID == "" {
			return nil, fmt.Errorf("invalid --severity %q, want ruleId=severity", entry)
		}
		severity, ok := diagnostic.ParseSeverity(name)
		if !ok {
			return nil, fmt.Errorf("invalid severity %q for rule %q", name, ruleID)
		}
		overrides[ruleID] = severity
	}
	return overrides, nil
}
