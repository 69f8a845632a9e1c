// Package logging wraps zap with context-aware methods: every log
// line emitted with a request context carries that request's trace id.
package logging

import (
	"context"

	"go.uber.org/zap"

	"github.com/farhananowshin/SkillBridge/internal/ctxdata"
)

type loggerCtxKey struct{}

type Logger struct {
	base *zap.Logger
}

func New(base *zap.Logger) *Logger {
	return &Logger{base: base}
}

func ContextWithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

func GetFromContext(ctx context.Context) (*Logger, bool) {
	logger, ok := ctx.Value(loggerCtxKey{}).(*Logger)
	return logger, ok
}

// resolve picks the logger for the given context, attaching the
// request id when the request has one.
func (l *Logger) resolve(ctx context.Context) *zap.Logger {
	if traceID, ok := ctxdata.GetTraceID(ctx); ok {
		return l.base.With(zap.String("request_id", traceID))
	}
	return l.base
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	l.resolve(ctx).Debug(msg, fields...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	l.resolve(ctx).Info(msg, fields...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.resolve(ctx).Warn(msg, fields...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	l.resolve(ctx).Error(msg, fields...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	l.resolve(ctx).Fatal(msg, fields...)
}
