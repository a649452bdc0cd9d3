package handlers

import (
	"context"

	"github.com/zha7nea/callcenter/internal/model"
	xhttp "github.com/zha7nea/callcenter/pkg/http"
)

type CustomerService interface {
	List(ctx context.Context) ([]*model.Customer, error)
	Get(ctx context.Context, id int64) (*model.Customer, error)
	Create(ctx context.Context, p model.CustomerCreateRequest) (*model.Customer, error)
	Update(ctx context.Context, id int64, p model.CustomerUpdateRequest) (*model.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type CustomerHandler struct {
	svc CustomerService
}

func RegisterCustomerRoutes(r xhttp.Routes, h *CustomerHandler, guard *Guard) {
	r.GET("/customers", guard.Admin(h.ListCustomers))
	r.POST("/customers", guard.Authenticated(h.CreateCustomer))
	r.GET("/customers/{id:^[0-9]+$}", guard.Admin(h.GetCustomer))
	r.PUT("/customers/{id:^[0-9]+$}", guard.Authenticated(h.UpdateCustomer))
	r.DELETE("/customers/{id:^[0-9]+$}", guard.Admin(h.DeleteCustomer))
}

func NewCustomerHandler(svc CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) ListCustomers(ctx *xhttp.RequestCtx) {
	customers, err := h.svc.List(xhttp.Context(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	if customers == nil {
		customers = []*model.Customer{}
	}
	writeJSON(ctx, xhttp.StatusOK, customers)
}

func (h *CustomerHandler) GetCustomer(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	c, err := h.svc.Get(xhttp.Context(ctx), id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, c)
}

func (h *CustomerHandler) CreateCustomer(ctx *xhttp.RequestCtx) {
	var req model.CustomerCreateRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, err)
		return
	}
	c, err := h.svc.Create(xhttp.Context(ctx), req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, c)
}

func (h *CustomerHandler) UpdateCustomer(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req model.CustomerUpdateRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, err)
		return
	}
	c, err := h.svc.Update(xhttp.Context(ctx), id, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, c)
}

func (h *CustomerHandler) DeleteCustomer(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := h.svc.Delete(xhttp.Context(ctx), id); err != nil {
		writeError(ctx, err)
		return
	}
	writeMessage(ctx, xhttp.StatusOK, "Customer and associated calls deleted successfully")
}
