package handlers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zha7nea/callcenter/internal/model"
	"github.com/zha7nea/callcenter/internal/services"
)

func TestAuthHandler_Login(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		tr := newTestRouter()
		tr.auth.On("Login", mock.Anything, model.Credentials{Username: strPtr("admin"), Password: strPtr("admin")}).
			Return(&model.AccessToken{Token: "tok", TokenType: "Bearer", ExpiresIn: 900}, nil)

		ctx := tr.do("POST", "/login", "", []byte(`{"username":"admin","password":"admin"}`))
		assert.Equal(t, 200, ctx.Response.StatusCode())
		assert.JSONEq(t, `{"access_token":"tok","token_type":"Bearer","expires_in":900}`, string(ctx.Response.Body()))
	})

	t.Run("invalid credentials", func(t *testing.T) {
		tr := newTestRouter()
		tr.auth.On("Login", mock.Anything, mock.Anything).Return(nil, services.ErrInvalidCredentials)

		ctx := tr.do("POST", "/login", "", []byte(`{"username":"admin","password":"nope"}`))
		assert.Equal(t, 401, ctx.Response.StatusCode())
		assert.Equal(t, "Invalid credentials", decodeBody(t, ctx)["error"])
	})
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("registered", func(t *testing.T) {
		tr := newTestRouter()
		tr.auth.On("Register", mock.Anything, mock.Anything).Return(&model.User{ID: 1, Username: "bob"}, nil)

		ctx := tr.do("POST", "/register", "", []byte(`{"username":"bob","password":"pw"}`))
		assert.Equal(t, 201, ctx.Response.StatusCode())
		assert.Equal(t, "User registered successfully", decodeBody(t, ctx)["message"])
	})

	t.Run("username taken", func(t *testing.T) {
		tr := newTestRouter()
		tr.auth.On("Register", mock.Anything, mock.Anything).Return(nil, services.ErrUsernameTaken)

		ctx := tr.do("POST", "/register", "", []byte(`{"username":"bob","password":"pw"}`))
		assert.Equal(t, 400, ctx.Response.StatusCode())
		assert.Equal(t, "Username already taken", decodeBody(t, ctx)["error"])
	})

	t.Run("null password counts as missing", func(t *testing.T) {
		tr := newTestRouter()
		tr.auth.On("Register", mock.Anything, model.Credentials{Username: strPtr("bob")}).
			Return(nil, model.MissingFields("password"))

		ctx := tr.do("POST", "/register", "", []byte(`{"username":"bob","password":null}`))
		assert.Equal(t, 400, ctx.Response.StatusCode())
		assert.Equal(t, "Missing field(s): password", decodeBody(t, ctx)["error"])
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("revokes the caller's token", func(t *testing.T) {
		tr := newTestRouter()
		tr.auth.On("Logout", mock.Anything, mock.MatchedBy(func(id *model.Identity) bool {
			return id.Username == "bob" && id.TokenID == "u"
		})).Return(nil)

		ctx := tr.do("POST", "/logout", userToken, nil)
		assert.Equal(t, 200, ctx.Response.StatusCode())
		tr.auth.AssertExpectations(t)
	})

	t.Run("requires a token", func(t *testing.T) {
		tr := newTestRouter()
		ctx := tr.do("POST", "/logout", "", nil)
		assert.Equal(t, 401, ctx.Response.StatusCode())
	})

	t.Run("denylist failure", func(t *testing.T) {
		tr := newTestRouter()
		tr.auth.On("Logout", mock.Anything, mock.Anything).Return(errors.New("redis down"))

		ctx := tr.do("POST", "/logout", userToken, nil)
		assert.Equal(t, 500, ctx.Response.StatusCode())
	})
}

func TestHomeAndHealth(t *testing.T) {
	t.Run("home is public", func(t *testing.T) {
		tr := newTestRouter()
		ctx := tr.do("GET", "/", "", nil)
		assert.Equal(t, 200, ctx.Response.StatusCode())
		assert.Equal(t, "Call Center Management System", decodeBody(t, ctx)["message"])
	})

	t.Run("health ok", func(t *testing.T) {
		tr := newTestRouter()
		tr.health.On("Check", mock.Anything).Return(nil)
		ctx := tr.do("GET", "/health", "", nil)
		assert.Equal(t, 200, ctx.Response.StatusCode())
		assert.Equal(t, "ok", decodeBody(t, ctx)["status"])
	})

	t.Run("health failing", func(t *testing.T) {
		tr := newTestRouter()
		tr.health.On("Check", mock.Anything).Return(errors.New("db down"))
		ctx := tr.do("GET", "/health", "", nil)
		assert.Equal(t, 500, ctx.Response.StatusCode())
	})

	t.Run("unknown route", func(t *testing.T) {
		tr := newTestRouter()
		ctx := tr.do("GET", "/nope", "", nil)
		assert.Equal(t, 404, ctx.Response.StatusCode())
		assert.Equal(t, "Resource not found", decodeBody(t, ctx)["error"])
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, 400, statusFor(model.MissingFields("a")))
	assert.Equal(t, 400, statusFor(services.ErrUnknownCustomer))
	assert.Equal(t, 404, statusFor(services.ErrCallNotFound))
	assert.Equal(t, 401, statusFor(services.ErrTokenExpired))
	assert.Equal(t, 403, statusFor(services.ErrForbidden))
	assert.Equal(t, 400, statusFor(services.ErrValueTooLong))
	assert.Equal(t, 503, statusFor(fmt.Errorf("delete: %w", context.DeadlineExceeded)))
	assert.Equal(t, 500, statusFor(errors.New("boom")))
}
