package handlers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/zha7nea/callcenter/internal/model"
	"github.com/zha7nea/callcenter/internal/services"
	xhttp "github.com/zha7nea/callcenter/pkg/http"
)

const (
	adminToken = "admin-token"
	userToken  = "user-token"
)

// stubAuthenticator accepts the two fixed tokens above.
type stubAuthenticator struct{}

func (stubAuthenticator) Authenticate(_ context.Context, token string) (*model.Identity, error) {
	switch token {
	case "":
		return nil, services.ErrMissingToken
	case adminToken:
		return &model.Identity{Username: "admin", Role: model.RoleAdmin, TokenID: "a", ExpiresAt: time.Now().Add(time.Minute)}, nil
	case userToken:
		return &model.Identity{Username: "bob", Role: model.RoleUser, TokenID: "u", ExpiresAt: time.Now().Add(time.Minute)}, nil
	}
	return nil, services.ErrInvalidToken
}

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) List(ctx context.Context) ([]*model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Customer), args.Error(1)
}

func (m *MockCustomerService) Get(ctx context.Context, id int64) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerService) Create(ctx context.Context, p model.CustomerCreateRequest) (*model.Customer, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerService) Update(ctx context.Context, id int64, p model.CustomerUpdateRequest) (*model.Customer, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCustomerCallService struct {
	mock.Mock
}

func (m *MockCustomerCallService) List(ctx context.Context) ([]*model.CustomerCall, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CustomerCall), args.Error(1)
}

func (m *MockCustomerCallService) Get(ctx context.Context, id int64) (*model.CustomerCall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CustomerCall), args.Error(1)
}

func (m *MockCustomerCallService) Create(ctx context.Context, p model.CustomerCallCreateRequest) (*model.CustomerCall, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CustomerCall), args.Error(1)
}

func (m *MockCustomerCallService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockAuthService struct {
	mock.Mock
	logout bool
}

func (m *MockAuthService) Register(ctx context.Context, p model.Credentials) (*model.User, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, p model.Credentials) (*model.AccessToken, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccessToken), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, id *model.Identity) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAuthService) LogoutEnabled() bool {
	return m.logout
}

type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) Check(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func setupTestContext(method, path string, body []byte) *xhttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(path)
	if body != nil {
		req.SetBody(body)
	}
	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	return ctx
}

type testRouter struct {
	customers *MockCustomerService
	calls     *MockCustomerCallService
	auth      *MockAuthService
	health    *MockHealthService
	handler   xhttp.RequestHandler
}

func newTestRouter() *testRouter {
	tr := &testRouter{
		customers: new(MockCustomerService),
		calls:     new(MockCustomerCallService),
		auth:      &MockAuthService{logout: true},
		health:    new(MockHealthService),
	}
	r := xhttp.CreateDefaultRouter()
	guard := NewGuard(stubAuthenticator{})
	RegisterHomeRoutes(r)
	RegisterHealthRoutes(r, NewHealthHandler(tr.health))
	RegisterAuthRoutes(r, NewAuthHandler(tr.auth), guard)
	RegisterCustomerRoutes(r, NewCustomerHandler(tr.customers), guard)
	RegisterCustomerCallRoutes(r, NewCustomerCallHandler(tr.calls), guard)
	tr.handler = r.Handler
	return tr
}

// do runs one request through the router. token may be empty.
func (tr *testRouter) do(method, path, token string, body []byte) *xhttp.RequestCtx {
	ctx := setupTestContext(method, path, body)
	if token != "" {
		ctx.Request.Header.Set("Authorization", "Bearer "+token)
	}
	tr.handler(ctx)
	return ctx
}

func decodeBody(t *testing.T, ctx *xhttp.RequestCtx) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &out), "body: %s", ctx.Response.Body())
	return out
}

func strPtr(s string) *string { return &s }
