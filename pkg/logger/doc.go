// Package logger provides a small factory for log/slog loggers used across
// prefskit packages.
//
// It standardizes format (text or JSON), level, output destination, and
// static attributes without introducing another logging API: the result is
// a plain *slog.Logger.
//
// # Usage
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttrs(slog.String("service", "prefs")),
//	)
//
//	p := prefs.New(prefs.WithLogger(log))
package logger
