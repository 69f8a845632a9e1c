// Package ctxdata carries per-request values (the authenticated
// identity and the trace id) across the handler/service boundary.
package ctxdata

import (
	"context"

	"github.com/google/uuid"

	"github.com/farhananowshin/SkillBridge/internal/model"
)

type ctxKey int

const (
	traceIDKey ctxKey = iota
	userIDKey
	userRoleKey
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(traceIDKey).(string)
	return traceID, ok
}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

func WithUserRole(ctx context.Context, role model.Role) context.Context {
	return context.WithValue(ctx, userRoleKey, role)
}

func GetUserRole(ctx context.Context) (model.Role, bool) {
	role, ok := ctx.Value(userRoleKey).(model.Role)
	return role, ok
}
