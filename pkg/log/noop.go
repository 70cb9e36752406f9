package log

// NoopLogger implements Logger by discarding all log messages.
type NoopLogger struct{}

// NewNoopLogger creates a new no-op logger.
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

func (NoopLogger) Debug(msg string, fields ...Field) {}

func (NoopLogger) Info(msg string, fields ...Field) {}

func (NoopLogger) Warn(msg string, fields ...Field) {}

func (NoopLogger) Error(msg string, fields ...Field) {}
