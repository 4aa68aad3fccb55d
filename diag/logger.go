// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package diag

import "go.uber.org/zap"

// Logger is the internal structured-logging interface used by Collector,
// modeled on the *zap.SugaredLogger subset that hyperledger-fabric's
// FabricLogger wraps. It exists so callers can substitute a test logger.
type Logger interface {
	Errorw(msg string, kvPairs ...interface{})
	Warnw(msg string, kvPairs ...interface{})
	Infow(msg string, kvPairs ...interface{})
}

// zapLogger adapts a *zap.SugaredLogger to Logger.
type zapLogger struct{ s *zap.SugaredLogger }

// NewZapLogger wraps a zap logger for use as a Collector's internal logger.
// A Collector built with WithLogger mirrors every diagnostic it records
// through this logger, in addition to keeping it for the Reporter.
func NewZapLogger(l *zap.Logger) Logger {
	return &zapLogger{s: l.Sugar()}
}

func (z *zapLogger) Errorw(msg string, kvPairs ...interface{}) { z.s.Errorw(msg, kvPairs...) }
func (z *zapLogger) Warnw(msg string, kvPairs ...interface{})  { z.s.Warnw(msg, kvPairs...) }
func (z *zapLogger) Infow(msg string, kvPairs ...interface{})  { z.s.Infow(msg, kvPairs...) }
