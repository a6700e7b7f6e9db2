package internallogger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption adjusts the zap configuration, minimum level, and caller skip depth.
type LoggerOption func(*zap.Config, *zapcore.Level, *int)

// ZapLoggerAdapter implements types.Logger on top of zap, with runtime-adjustable
// level and dynamically attachable sinks.
type ZapLoggerAdapter struct {
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	callerDepth int
	mu          sync.Mutex
	sinks       map[string]sinkEntry
	baseCore    zapcore.Core
	baseFields  []zap.Field
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	var level zapcore.Level
	callerDepth := 3 // Default caller depth

	for _, option := range options {
		option(&config, &level, &callerDepth)
	}

	atomicLevel := zap.NewAtomicLevelAt(level)

	// Ensure at least one core is created to prevent a nil logger.
	defaultCore := zapcore.NewCore(zapcore.NewJSONEncoder(standardEncoderConfig()), zapcore.AddSync(os.Stdout), atomicLevel)

	z := &ZapLoggerAdapter{
		atomicLevel: atomicLevel,
		callerDepth: callerDepth,
		sinks:       make(map[string]sinkEntry),
		baseCore:    defaultCore,
		baseFields:  fieldsFromMap(config.InitialFields),
	}
	z.rebuildLoggerLocked()

	return z
}

// rebuildLoggerLocked recreates the logger from the default core plus every
// attached sink. Callers must hold z.mu (or have exclusive access).
func (z *ZapLoggerAdapter) rebuildLoggerLocked() {
	cores := make([]zapcore.Core, 0, 1+len(z.sinks))
	cores = append(cores, z.baseCore)
	for _, entry := range z.sinks {
		cores = append(cores, entry.core)
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(z.callerDepth))
	if len(z.baseFields) > 0 {
		logger = logger.With(z.baseFields...)
	}
	z.logger = logger
}
