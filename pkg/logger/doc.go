// Package logger provides a small slog factory and typed attribute
// constructors for consistent structured logging keys across the module.
//
//	log := logger.New(logger.WithFormat(logger.FormatJSON), logger.WithLevel(slog.LevelDebug))
//	log.Info("notification delivered",
//		logger.NotificationID(id),
//		logger.Channel("email"),
//	)
//
// The attribute helpers return empty attrs for nil/zero inputs, which slog
// elides from output.
package logger
