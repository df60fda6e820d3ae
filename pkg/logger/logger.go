package logger

import (
	"go.uber.org/zap"
)

var Log *zap.Logger

func NewLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Log = l
	return l
}

// With returns a child logger carrying the given fields on every entry.
func With(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}
