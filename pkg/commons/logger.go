// Copyright (c) 2024-2026 Vocalabs
// Author: Wei Shan <wei@vocalabs.dev>
//
// Licensed under GPL-2.0 with Vocalabs Additional Terms.
// See LICENSE.md or contact sales@vocalabs.dev for commercial usage.

package commons

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// =============================================================================
// Logger Interface
// =============================================================================

// Logger is the logging contract shared by every package in the module.
// It wraps a leveled, structured logger and adds the two conveniences the
// text pipeline needs: timing reports and request-scoped trace logging.
type Logger interface {
	Level() zapcore.Level
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	DPanic(args ...interface{})
	DPanicf(template string, args ...interface{})
	Panic(args ...interface{})
	Panicf(template string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})

	// Benchmark reports how long a named operation took.
	Benchmark(functionName string, duration time.Duration)

	// Tracef logs at debug level with the trace id carried by ctx, if any.
	Tracef(ctx context.Context, format string, args ...interface{})

	Sync() error
}

// =============================================================================
// Trace Context
// =============================================================================

type contextKey string

const traceIDKey contextKey = "trace_id"

// WithTraceID returns a context carrying a fresh trace id. A context that
// already carries one is returned unchanged.
func WithTraceID(ctx context.Context) context.Context {
	if _, ok := ctx.Value(traceIDKey).(string); ok {
		return ctx
	}
	return context.WithValue(ctx, traceIDKey, uuid.NewString())
}

// TraceID returns the trace id carried by ctx, or "" when none is set.
func TraceID(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey).(string); ok {
		return id
	}
	return ""
}

// =============================================================================
// Application Logger
// =============================================================================

type applicationLogger struct {
	sugar *zap.SugaredLogger
	level zapcore.Level
}

// NewApplicationLogger builds the process-wide logger. The level is read from
// LOG_LEVEL (default debug). When LOG_FILE is set, output is duplicated to a
// size-rotated file next to the console stream.
func NewApplicationLogger() (Logger, error) {
	level := zapcore.DebugLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		parsed, err := zapcore.ParseLevel(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to parse log level %q: %w", raw, err)
		}
		level = parsed
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stdout),
		level,
	)

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		rotated := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
		core = zapcore.NewTee(core, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), rotated, level))
	}

	zl := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return &applicationLogger{sugar: zl.Sugar(), level: level}, nil
}

func (l *applicationLogger) Level() zapcore.Level { return l.level }

func (l *applicationLogger) Debug(args ...interface{})                    { l.sugar.Debug(args...) }
func (l *applicationLogger) Debugf(template string, args ...interface{})  { l.sugar.Debugf(template, args...) }
func (l *applicationLogger) Info(args ...interface{})                     { l.sugar.Info(args...) }
func (l *applicationLogger) Infof(template string, args ...interface{})   { l.sugar.Infof(template, args...) }
func (l *applicationLogger) Warn(args ...interface{})                     { l.sugar.Warn(args...) }
func (l *applicationLogger) Warnf(template string, args ...interface{})   { l.sugar.Warnf(template, args...) }
func (l *applicationLogger) Error(args ...interface{})                    { l.sugar.Error(args...) }
func (l *applicationLogger) Errorf(template string, args ...interface{})  { l.sugar.Errorf(template, args...) }
func (l *applicationLogger) DPanic(args ...interface{})                   { l.sugar.DPanic(args...) }
func (l *applicationLogger) DPanicf(template string, args ...interface{}) { l.sugar.DPanicf(template, args...) }
func (l *applicationLogger) Panic(args ...interface{})                    { l.sugar.Panic(args...) }
func (l *applicationLogger) Panicf(template string, args ...interface{})  { l.sugar.Panicf(template, args...) }
func (l *applicationLogger) Fatal(args ...interface{})                    { l.sugar.Fatal(args...) }
func (l *applicationLogger) Fatalf(template string, args ...interface{})  { l.sugar.Fatalf(template, args...) }

func (l *applicationLogger) Benchmark(functionName string, duration time.Duration) {
	l.sugar.Debugw("benchmark", "function", functionName, "duration", duration.String())
}

func (l *applicationLogger) Tracef(ctx context.Context, format string, args ...interface{}) {
	if id := TraceID(ctx); id != "" {
		l.sugar.With("trace_id", id).Debugf(format, args...)
		return
	}
	l.sugar.Debugf(format, args...)
}

func (l *applicationLogger) Sync() error { return l.sugar.Sync() }
