// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

// Command oaslint lints a project of OpenAPI documents for cross-file
// consistency issues a single-file validator cannot see: dangling
// $refs, reference cycles, and a handful of documented API-design
// rules, then reports the result as text or JSON.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/oaslint/oaslint/internal/logging"
)

var cli struct {
	Lint lintCmd `cmd:"" default:"1" help:"Lint an OpenAPI project starting from one entrypoint document."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("oaslint"),
		kong.Description("A cross-file linter for OpenAPI projects."),
		kong.UsageOnError(),
	)

	log, err := newLogger(cli.Lint.Verbose)
	if err != nil {
		ctx.Errorf("cannot initialise logger: %v", err)
		os.Exit(1)
	}

	err = ctx.Run(log)
	ctx.FatalIfErrorf(err)
}

func newLogger(verbose bool) (logging.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logging.NewZap(zl.Sugar()), nil
}
