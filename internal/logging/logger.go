package logging

import (
	"go.uber.org/zap"
)

// NewLogger builds a production ready structured logger.
func NewLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	return cfg.Build()
}

// WithOperation enriches the logger with the operation name and the upload
// event identifier it belongs to.
func WithOperation(logger *zap.Logger, operation, eventID string) *zap.Logger {
	fields := []zap.Field{zap.String("operation", operation)}
	if eventID != "" {
		fields = append(fields, zap.String("event_id", eventID))
	}
	return logger.With(fields...)
}
