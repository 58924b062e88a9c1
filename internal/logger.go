package internal

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// The active logger is shared by every package in the module. It is silent
// until SetLogger is called, and swapped atomically so that logging from the
// parallel cell stage never races with a reconfiguration.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// Pass nil to go back to the silent default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

func Logger() *zap.Logger {
	return loggerPtr.Load()
}
