package internallogger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joeydtaylor/canopy/pkg/internal/types"
	"go.uber.org/zap/zapcore"
)

// sinkEntry pairs a sink's core with the cleanup to run when it is removed.
type sinkEntry struct {
	core zapcore.Core
	stop func()
}

// AddSink attaches an additional output core identified by identifier.
func (z *ZapLoggerAdapter) AddSink(identifier string, config types.SinkConfig) error {
	z.mu.Lock()
	defer z.mu.Unlock()

	var (
		ws   zapcore.WriteSyncer
		stop func()
	)

	switch config.Type {
	case "file":
		path, ok := config.Config["path"].(string)
		if !ok {
			return fmt.Errorf("file path configuration is missing or invalid")
		}
		dir := filepath.Dir(path)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %v", dir, err)
			}
		}
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open file %s: %v", path, err)
		}
		ws = zapcore.AddSync(file)
		stop = func() {
			_ = file.Close()
		}
	case "stdout":
		ws = zapcore.Lock(os.Stdout)
	default:
		return fmt.Errorf("unsupported sink type: %s", config.Type)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(standardEncoderConfig()), ws, z.atomicLevel)
	z.sinks[identifier] = sinkEntry{core: core, stop: stop}

	z.rebuildLoggerLocked()
	return nil
}

// RemoveSink detaches the sink, closes its output, and rebuilds the logger so
// the removed sink receives no further entries.
func (z *ZapLoggerAdapter) RemoveSink(identifier string) error {
	z.mu.Lock()
	defer z.mu.Unlock()

	entry, ok := z.sinks[identifier]
	if !ok {
		return fmt.Errorf("sink not found: %s", identifier)
	}
	delete(z.sinks, identifier)
	if entry.stop != nil {
		entry.stop()
	}

	z.rebuildLoggerLocked()
	return nil
}

// ListSinks lists all configured sinks.
func (z *ZapLoggerAdapter) ListSinks() ([]string, error) {
	z.mu.Lock()
	defer z.mu.Unlock()

	identifiers := make([]string, 0, len(z.sinks))
	for id := range z.sinks {
		identifiers = append(identifiers, id)
	}
	return identifiers, nil
}
