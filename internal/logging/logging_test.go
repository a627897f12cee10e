// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewZap_ForwardsToSugaredLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewZap(zap.New(core).Sugar())

	l.Infow("loaded document", "uri", "/proj/a.yaml")
	l.Errorw("rule panicked", "ruleId", "unresolved-ref")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Message != "loaded document" {
		t.Errorf("unexpected message: %s", entries[0].Message)
	}
}

func TestNewNop_NeverPanics(t *testing.T) {
	l := NewNop()
	l.Debugw("x")
	l.Infow("x", "k", "v")
	l.Warnw("x")
	l.Errorw("x")
}
