package sensor

import (
	"github.com/joeydtaylor/canopy/pkg/internal/types"
)

// NotifyLoggers sends a structured log message to all attached loggers.
func (s *Sensor[A]) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	s.loggersLock.Lock()
	loggers := make([]types.Logger, len(s.loggers))
	copy(loggers, s.loggers)
	s.loggersLock.Unlock()

	for _, logger := range loggers {
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
