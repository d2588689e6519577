package ndarray

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package's logger. Lifecycle events are logged
// at debug level and lifetime-contract violations at warn level.
// This must be called before any array operations.
func SetLogger(l *zap.Logger) {
	logger = l
}
