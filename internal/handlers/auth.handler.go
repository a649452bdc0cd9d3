package handlers

import (
	"context"

	"github.com/zha7nea/callcenter/internal/model"
	xhttp "github.com/zha7nea/callcenter/pkg/http"
)

type AuthService interface {
	Register(ctx context.Context, p model.Credentials) (*model.User, error)
	Login(ctx context.Context, p model.Credentials) (*model.AccessToken, error)
	Logout(ctx context.Context, id *model.Identity) error
	LogoutEnabled() bool
}

type AuthHandler struct {
	svc AuthService
}

// RegisterAuthRoutes mounts /login and /register, and /logout when the
// service can revoke tokens.
func RegisterAuthRoutes(r xhttp.Routes, h *AuthHandler, guard *Guard) {
	r.POST("/login", h.Login)
	r.POST("/register", h.Register)
	if h.svc.LogoutEnabled() {
		r.POST("/logout", guard.Authenticated(h.Logout))
	}
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(ctx *xhttp.RequestCtx) {
	var req model.Credentials
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, err)
		return
	}
	token, err := h.svc.Login(xhttp.Context(ctx), req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, token)
}

func (h *AuthHandler) Register(ctx *xhttp.RequestCtx) {
	var req model.Credentials
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, err)
		return
	}
	if _, err := h.svc.Register(xhttp.Context(ctx), req); err != nil {
		writeError(ctx, err)
		return
	}
	writeMessage(ctx, xhttp.StatusCreated, "User registered successfully")
}

func (h *AuthHandler) Logout(ctx *xhttp.RequestCtx) {
	id, ok := IdentityFrom(ctx)
	if !ok {
		writeError(ctx, model.NewError(model.ErrUnauthenticated, "Missing Authorization Header"))
		return
	}
	if err := h.svc.Logout(xhttp.Context(ctx), id); err != nil {
		writeError(ctx, err)
		return
	}
	writeMessage(ctx, xhttp.StatusOK, "Successfully logged out")
}
