package handlers

import (
	"context"
	"errors"

	"github.com/zha7nea/callcenter/internal/model"
	"github.com/zha7nea/callcenter/internal/services"
	xhttp "github.com/zha7nea/callcenter/pkg/http"
	"github.com/zha7nea/callcenter/pkg/logger"
	"github.com/zha7nea/callcenter/pkg/prom"
)

const identityKey = "identity"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.Identity, error)
}

// Guard wraps handlers with access checks. A rejected request is answered
// by the guard and never reaches the wrapped handler.
type Guard struct {
	auth Authenticator
}

func NewGuard(auth Authenticator) *Guard {
	return &Guard{auth: auth}
}

// Authenticated requires a valid bearer token of any role.
func (g *Guard) Authenticated(next xhttp.RequestHandler) xhttp.RequestHandler {
	return func(ctx *xhttp.RequestCtx) {
		token, _ := xhttp.BearerToken(ctx)
		id, err := g.auth.Authenticate(xhttp.Context(ctx), token)
		if err != nil {
			reason := failureReason(err)
			logger.Warn("[auth] request rejected", "reason", reason, "path", string(ctx.Path()))
			prom.IncAuthFailure(reason)
			writeError(ctx, err)
			return
		}
		ctx.SetUserValue(identityKey, id)
		next(ctx)
	}
}

// Admin requires a valid bearer token carrying the admin role.
func (g *Guard) Admin(next xhttp.RequestHandler) xhttp.RequestHandler {
	return g.Authenticated(RequireRole(model.RoleAdmin, next))
}

// RequireRole expects Authenticated to have run first.
func RequireRole(role model.Role, next xhttp.RequestHandler) xhttp.RequestHandler {
	return func(ctx *xhttp.RequestCtx) {
		id, ok := IdentityFrom(ctx)
		if !ok || id.Role != role {
			logger.Warn("[auth] request rejected", "reason", "forbidden", "path", string(ctx.Path()))
			prom.IncAuthFailure("forbidden")
			writeError(ctx, services.ErrForbidden)
			return
		}
		next(ctx)
	}
}

func IdentityFrom(ctx *xhttp.RequestCtx) (*model.Identity, bool) {
	id, ok := ctx.UserValue(identityKey).(*model.Identity)
	return id, ok && id != nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, services.ErrMissingToken):
		return "missing_token"
	case errors.Is(err, services.ErrTokenExpired):
		return "expired_token"
	case errors.Is(err, services.ErrTokenRevoked):
		return "revoked_token"
	case errors.Is(err, services.ErrInvalidToken):
		return "invalid_token"
	}
	return "error"
}
