package utils

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger builds the process logger and installs it as zap's global.
func InitLogger(development bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if development {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

// LogEvent writes one standardized line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string, fields ...zap.Field) {
	zap.L().Info(message, eventFields(requestID, module, action, fields)...)
}

// LogFailure is LogEvent for errors.
func LogFailure(requestID, module, action string, err error, fields ...zap.Field) {
	zap.L().Error(action+" failed", append(eventFields(requestID, module, action, fields), zap.Error(err))...)
}

func eventFields(requestID, module, action string, extra []zap.Field) []zap.Field {
	out := make([]zap.Field, 0, len(extra)+3)
	out = append(out,
		zap.String("module", strings.ToUpper(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	)
	return append(out, extra...)
}
