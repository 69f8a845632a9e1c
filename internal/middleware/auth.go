package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/farhananowshin/SkillBridge/internal/auth"
	"github.com/farhananowshin/SkillBridge/internal/ctxdata"
	"github.com/farhananowshin/SkillBridge/internal/logging"
)

// NewAuthMiddleware rejects requests without a valid bearer token and
// stashes the verified identity in the context for the service layer.
func NewAuthMiddleware(tokens *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			identity, ok := identityFromHeader(r, tokens)
			if !ok {
				if logger, lok := logging.GetFromContext(ctx); lok {
					logger.Info(ctx, "unauthorized request", zap.String("path", r.URL.Path))
				}
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = ctxdata.WithUserID(ctx, identity.UserID)
			ctx = ctxdata.WithUserRole(ctx, identity.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewOptionalAuthMiddleware attaches an identity when a valid token is
// present but lets anonymous requests through. The public catalog
// endpoints use it so browsing works before signup.
func NewOptionalAuthMiddleware(tokens *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if identity, ok := identityFromHeader(r, tokens); ok {
				ctx = ctxdata.WithUserID(ctx, identity.UserID)
				ctx = ctxdata.WithUserRole(ctx, identity.Role)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func identityFromHeader(r *http.Request, tokens *auth.Manager) (*auth.Identity, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, false
	}
	identity, err := tokens.Parse(token)
	if err != nil {
		return nil, false
	}
	return identity, true
}
