// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

// Package logging is the narrow structured-logging interface passed
// down through the engine, rather than a concrete *zap.Logger, so
// callers never need to import zap themselves.
package logging

import "go.uber.org/zap"

// Logger is the leveled, structured logging surface the engine and its
// packages depend on.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

// NewZap wraps a *zap.SugaredLogger as a Logger.
func NewZap(l *zap.SugaredLogger) Logger {
	return &zapLogger{l: l}
}

// NewNop returns a Logger that discards everything. Used as the default
// when a caller never configures a logger.
func NewNop() Logger {
	return nopLogger{}
}

type zapLogger struct {
	l *zap.SugaredLogger
}

func (z *zapLogger) Debugw(msg string, kv ...any) { z.l.Debugw(msg, kv...) }
func (z *zapLogger) Infow(msg string, kv ...any)  { z.l.Infow(msg, kv...) }
func (z *zapLogger) Warnw(msg string, kv ...any)  { z.l.Warnw(msg, kv...) }
func (z *zapLogger) Errorw(msg string, kv ...any) { z.l.Errorw(msg, kv...) }

type nopLogger struct{}

func (nopLogger) Debugw(string, ...any) {}
func (nopLogger) Infow(string, ...any)  {}
func (nopLogger) Warnw(string, ...any)  {}
func (nopLogger) Errorw(string, ...any) {}
