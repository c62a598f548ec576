package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements the Logger port with zap's sugared logger.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// NewZapLogger creates a production zap logger with ISO8601 timestamps.
func NewZapLogger() *ZapLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, _ := config.Build(zap.AddCallerSkip(1))
	return &ZapLogger{
		logger: logger.Sugar(),
	}
}

// NewDevelopmentLogger creates a human-readable logger for local runs.
func NewDevelopmentLogger() *ZapLogger {
	logger, _ := zap.NewDevelopment(zap.AddCallerSkip(1))
	return &ZapLogger{
		logger: logger.Sugar(),
	}
}

// Info logs an info message with alternating key/value args.
func (l *ZapLogger) Info(msg string, args ...interface{}) {
	l.logger.Infow(msg, args...)
}

// Error logs an error message.
func (l *ZapLogger) Error(msg string, args ...interface{}) {
	l.logger.Errorw(msg, args...)
}

// Debug logs a debug message.
func (l *ZapLogger) Debug(msg string, args ...interface{}) {
	l.logger.Debugw(msg, args...)
}

// Warn logs a warning message.
func (l *ZapLogger) Warn(msg string, args ...interface{}) {
	l.logger.Warnw(msg, args...)
}
