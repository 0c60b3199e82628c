package unittest

import "go.uber.org/zap"

// Logger is the subset of *zap.Logger a Suite uses. A suite logs only at
// debug and warn level and defaults to a no-op logger, so the engine stays
// silent unless a caller asks otherwise.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}
