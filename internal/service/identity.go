package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/farhananowshin/SkillBridge/internal/ctxdata"
	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/model"
)

// currentUser reads the authenticated identity the HTTP layer put on
// the context. Operations that require a signed-in caller go through
// here; anonymous callers get ErrAuthentication.
func currentUser(ctx context.Context) (uuid.UUID, model.Role, error) {
	id, ok := ctxdata.GetUserID(ctx)
	if !ok {
		return uuid.Nil, "", errdefs.ErrAuthentication
	}
	role, ok := ctxdata.GetUserRole(ctx)
	if !ok {
		return uuid.Nil, "", errdefs.ErrAuthentication
	}
	return id, role, nil
}
