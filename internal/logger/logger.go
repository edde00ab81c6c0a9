// Package logger provides the process-wide structured logger for the
// inventory service.
package logger

import (
	"sync"
)

// Accepted values for the log.level config key.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the singleton logger. The level argument only matters on the
// first call; every later call returns the already configured instance.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level)
	})
	return globalLogger
}
