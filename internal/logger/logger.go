package logger

import (
	"os"

	"go.uber.org/zap"
)

// Log levels accepted in configuration.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// New builds a console logger writing to stdout at the given level.
// Unknown levels fall back to debug.
func New(level string) *Logger {
	return newZapLogger(level, os.Stdout)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}
