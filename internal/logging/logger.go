// Package logging builds the process-wide zap logger.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger returns a production JSON logger. When logFile is set, entries are
// also written to a size-rotated file.
func NewLogger(logFile string) (*zap.Logger, error) {
	if logFile == "" {
		return zap.NewProduction()
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	level := zap.NewAtomicLevelAt(zap.InfoLevel)

	rotated := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
		zapcore.NewCore(encoder, rotated, level),
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)), nil
}
