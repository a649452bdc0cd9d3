package handlers

import (
	"context"

	"github.com/zha7nea/callcenter/internal/model"
	xhttp "github.com/zha7nea/callcenter/pkg/http"
)

type CustomerCallService interface {
	List(ctx context.Context) ([]*model.CustomerCall, error)
	Get(ctx context.Context, id int64) (*model.CustomerCall, error)
	Create(ctx context.Context, p model.CustomerCallCreateRequest) (*model.CustomerCall, error)
	Delete(ctx context.Context, id int64) error
}

type CustomerCallHandler struct {
	svc CustomerCallService
}

func RegisterCustomerCallRoutes(r xhttp.Routes, h *CustomerCallHandler, guard *Guard) {
	r.GET("/customer_calls", guard.Admin(h.ListCalls))
	r.POST("/customer_calls", guard.Authenticated(h.CreateCall))
	r.GET("/customer_calls/{id:^[0-9]+$}", guard.Authenticated(h.GetCall))
	r.DELETE("/customer_calls/{id:^[0-9]+$}", guard.Admin(h.DeleteCall))
}

func NewCustomerCallHandler(svc CustomerCallService) *CustomerCallHandler {
	return &CustomerCallHandler{svc: svc}
}

func (h *CustomerCallHandler) ListCalls(ctx *xhttp.RequestCtx) {
	calls, err := h.svc.List(xhttp.Context(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	if calls == nil {
		calls = []*model.CustomerCall{}
	}
	writeJSON(ctx, xhttp.StatusOK, calls)
}

func (h *CustomerCallHandler) GetCall(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	call, err := h.svc.Get(xhttp.Context(ctx), id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, call)
}

func (h *CustomerCallHandler) CreateCall(ctx *xhttp.RequestCtx) {
	var req model.CustomerCallCreateRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, err)
		return
	}
	call, err := h.svc.Create(xhttp.Context(ctx), req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, call)
}

func (h *CustomerCallHandler) DeleteCall(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := h.svc.Delete(xhttp.Context(ctx), id); err != nil {
		writeError(ctx, err)
		return
	}
	writeMessage(ctx, xhttp.StatusOK, "Customer call deleted successfully")
}
