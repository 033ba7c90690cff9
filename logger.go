package rapidbase

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger  atomic.Pointer[zap.Logger]
	nopLogger = zap.NewNop()
)

// Logger returns the package logger. It is a no-op logger unless SetLogger
// was called. The codec operations themselves never log; only the one-time
// backend selection does.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger configures the package logger. A nil l restores the no-op logger.
// It is safe to call concurrently with any other operation, but only a
// logger set before the first encode, decode or check sees the backend
// selection.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
