package handlers

import (
	"context"

	xhttp "github.com/zha7nea/callcenter/pkg/http"
	"github.com/zha7nea/callcenter/pkg/logger"
)

type HealthService interface {
	Check(ctx context.Context) error
}

type HealthHandler struct {
	svc HealthService
}

type healthResponse struct {
	Status string `json:"status"`
}

func RegisterHealthRoutes(r xhttp.Routes, h *HealthHandler) {
	r.GET("/health", h.GetHealth)
}

func NewHealthHandler(svc HealthService) *HealthHandler {
	return &HealthHandler{svc: svc}
}

func (h *HealthHandler) GetHealth(ctx *xhttp.RequestCtx) {
	if err := h.svc.Check(xhttp.Context(ctx)); err != nil {
		logger.Error("health check failed", "error", err)
		writeJSON(ctx, xhttp.StatusInternalServerError, healthResponse{Status: "unavailable"})
		return
	}
	writeJSON(ctx, xhttp.StatusOK, healthResponse{Status: "ok"})
}
