// Package ports defines the core interfaces for the application.
package ports

// Logger is the logging abstraction used across the resolver.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string)

	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error with its full chain.
	Error(err error)
}
