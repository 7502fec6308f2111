package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Infof(format string, args ...any)
	Warn(msg string)
	Warnf(format string, args ...any)
	Error(err error)

	// SetOutput redirects log output, e.g. to a daemon log file.
	SetOutput(w io.Writer)
	// SetJSON switches between pretty and JSON output.
	SetJSON(enable bool)
}
