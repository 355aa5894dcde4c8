// pattern: Imperative Shell

package logging

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NopLogger returns a logger that discards all output.
func NopLogger() *ScopedLogger {
	return &ScopedLogger{}
}

// TestLogManager is a LoggerProvider for tests. Entries go to a channel
// at debug level instead of a file.
type TestLogManager struct {
	sink *ChannelSink
	base *zap.Logger

	mu      sync.Mutex
	loggers map[string]*ScopedLogger
}

// NewTestLogManager creates a TestLogManager buffering bufferSize entries.
func NewTestLogManager(bufferSize int) *TestLogManager {
	sink := NewChannelSink(bufferSize)
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(sink), zapcore.DebugLevel)
	return &TestLogManager{
		sink:    sink,
		base:    zap.New(core),
		loggers: make(map[string]*ScopedLogger),
	}
}

// For returns a scoped logger, matching the Manager API.
func (m *TestLogManager) For(scope string) *ScopedLogger {
	m.mu.Lock()
	defer m.mu.Unlock()

	if logger, ok := m.loggers[scope]; ok {
		return logger
	}
	logger := newScopedLogger(m.base, scope, zapcore.DebugLevel)
	m.loggers[scope] = logger
	return logger
}

// Channel returns the channel of logged entries.
func (m *TestLogManager) Channel() <-chan LogEntry {
	return m.sink.Entries()
}

// Drain returns every entry currently buffered without blocking.
func (m *TestLogManager) Drain() []LogEntry {
	var entries []LogEntry
	for {
		select {
		case e, ok := <-m.sink.Entries():
			if !ok {
				return entries
			}
			entries = append(entries, e)
		default:
			return entries
		}
	}
}

// FormatEntries renders entries one per line for test failure output.
func FormatEntries(entries []LogEntry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}

// Close closes the underlying channel.
func (m *TestLogManager) Close() error {
	return m.sink.Close()
}
