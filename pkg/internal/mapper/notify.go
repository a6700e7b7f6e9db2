package mapper

import (
	"sync/atomic"

	"github.com/joeydtaylor/canopy/pkg/internal/types"
)

// Logging and sensor work is gated behind attachment counters so the hot path
// does not build key/value args when nobody is listening.

func (m *Mapper[A, B]) hasLoggers() bool {
	return atomic.LoadInt32(&m.loggerCount) != 0
}

func (m *Mapper[A, B]) hasSensors() bool {
	return atomic.LoadInt32(&m.sensorCount) != 0
}

// NotifyLoggers sends a structured log message to all attached loggers.
func (m *Mapper[A, B]) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	if !m.hasLoggers() {
		return
	}
	for _, logger := range m.loggers {
		if logger == nil {
			continue
		}
		type levelChecker interface {
			IsLevelEnabled(types.LogLevel) bool
		}
		if lc, ok := logger.(levelChecker); ok && !lc.IsLevelEnabled(level) {
			continue
		}

		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}

func (m *Mapper[A, B]) notifyMapStart() {
	if m.hasSensors() {
		for _, s := range m.sensors {
			s.InvokeOnMapStart(m.componentMetadata)
		}
	}
	if m.hasLoggers() {
		m.NotifyLoggers(types.DebugLevel, "Map start",
			"component", m.componentMetadata,
			"event", "Map",
			"result", "START",
		)
	}
}

func (m *Mapper[A, B]) notifyNodeTransformed(value A) {
	if m.hasSensors() {
		for _, s := range m.sensors {
			s.InvokeOnNodeTransformed(m.componentMetadata, value)
		}
	}
	if m.hasLoggers() {
		m.NotifyLoggers(types.DebugLevel, "Node transformed",
			"component", m.componentMetadata,
			"event", "Map",
			"value", value,
		)
	}
}

func (m *Mapper[A, B]) notifyMapComplete(summary types.MapSummary) {
	if m.hasSensors() {
		for _, s := range m.sensors {
			s.InvokeOnMapComplete(m.componentMetadata, summary)
		}
	}
	if m.hasLoggers() {
		m.NotifyLoggers(types.InfoLevel, "Map complete",
			"component", m.componentMetadata,
			"event", "Map",
			"result", "SUCCESS",
			"nodes", summary.Nodes,
			"leaves", summary.Leaves,
			"depth", summary.Depth,
			"duration", summary.Duration,
		)
	}
}

func (m *Mapper[A, B]) notifyCancel() {
	if m.hasSensors() {
		var zero A
		for _, s := range m.sensors {
			s.InvokeOnCancel(m.componentMetadata, zero)
		}
	}
	if m.hasLoggers() {
		m.NotifyLoggers(types.WarnLevel, "Map cancelled",
			"component", m.componentMetadata,
			"event", "Map",
			"result", "CANCELLED",
		)
	}
}

func (m *Mapper[A, B]) notifyError(err error, value A) {
	if m.hasSensors() {
		for _, s := range m.sensors {
			s.InvokeOnError(m.componentMetadata, err, value)
		}
	}
	if m.hasLoggers() {
		m.NotifyLoggers(types.ErrorLevel, "Transform error",
			"component", m.componentMetadata,
			"event", "Map",
			"result", "FAILURE",
			"error", err,
			"value", value,
		)
	}
}

func (m *Mapper[A, B]) notifyInsulatorAttempt(value A, err error, attempt int, threshold int) {
	if m.hasSensors() {
		for _, s := range m.sensors {
			s.InvokeOnInsulatorAttempt(m.componentMetadata, value, err, attempt, threshold)
		}
	}
	if m.hasLoggers() {
		m.NotifyLoggers(types.DebugLevel, "Insulator attempt",
			"component", m.componentMetadata,
			"event", "Insulator",
			"attempt", attempt,
			"threshold", threshold,
			"error", err,
		)
	}
}

func (m *Mapper[A, B]) notifyInsulatorSuccess(value A, err error, attempt int, threshold int) {
	if m.hasSensors() {
		for _, s := range m.sensors {
			s.InvokeOnInsulatorSuccess(m.componentMetadata, value, err, attempt, threshold)
		}
	}
	if m.hasLoggers() {
		m.NotifyLoggers(types.DebugLevel, "Insulator recovery",
			"component", m.componentMetadata,
			"event", "Insulator",
			"result", "SUCCESS",
			"attempt", attempt,
			"threshold", threshold,
		)
	}
}

func (m *Mapper[A, B]) notifyInsulatorFailure(value A, err error, attempt int, threshold int) {
	if m.hasSensors() {
		for _, s := range m.sensors {
			s.InvokeOnInsulatorFailure(m.componentMetadata, value, err, attempt, threshold)
		}
	}
	if m.hasLoggers() {
		m.NotifyLoggers(types.ErrorLevel, "Insulator retries exhausted",
			"component", m.componentMetadata,
			"event", "Insulator",
			"result", "FAILURE",
			"attempt", attempt,
			"threshold", threshold,
			"error", err,
		)
	}
}
