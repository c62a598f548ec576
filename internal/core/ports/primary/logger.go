package primary

// Logger is the structured logging port. Args are alternating key/value
// pairs, matching zap's sugared logger.
type Logger interface {
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
}
