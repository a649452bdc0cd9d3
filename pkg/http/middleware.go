package xhttp

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"github.com/zha7nea/callcenter/pkg/logger"
)

const slowThreshold = 500 * time.Millisecond

const headerRequestID = "X-Request-Id"

var skipPaths = []string{"/health", "/metrics"}

type MiddlewareFunc func(next RequestHandler) RequestHandler
type RequestCtx = fasthttp.RequestCtx
type RequestHandler = fasthttp.RequestHandler

// ObserveFunc receives one call per finished request.
type ObserveFunc func(method, route string, status int, elapsed time.Duration)

const userValueContext = "xhttp.context"

// TimeoutMiddleware bounds the context returned by Context. The handler
// still runs on the connection goroutine, so storage work either finishes
// before the deadline or fails with context.DeadlineExceeded and rolls back.
func TimeoutMiddleware(timeout time.Duration) MiddlewareFunc {
	return func(next RequestHandler) RequestHandler {
		return func(ctx *RequestCtx) {
			c, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			ctx.SetUserValue(userValueContext, c)
			next(ctx)
		}
	}
}

// Context is the context handlers pass to services: the one set by
// TimeoutMiddleware, or ctx itself when none ran.
func Context(ctx *RequestCtx) context.Context {
	if c, ok := ctx.UserValue(userValueContext).(context.Context); ok {
		return c
	}
	return ctx
}

func CompressMiddleware(level int) MiddlewareFunc {
	return func(next RequestHandler) RequestHandler {
		return fasthttp.CompressHandlerBrotliLevel(next, level, level)
	}
}

func RecoverMiddleware(next RequestHandler) RequestHandler {
	return func(ctx *RequestCtx) {
		defer func() {
			if err := recover(); err != nil {
				logPanic(err)
				WriteError(ctx, StatusInternalServerError, MessageInternalError)
			}
		}()
		next(ctx)
	}
}

// RequestIDMiddleware makes sure every request and response carries an
// X-Request-Id, generating one when the client sent none.
func RequestIDMiddleware(next RequestHandler) RequestHandler {
	return func(ctx *RequestCtx) {
		rid := requestID(ctx)
		if rid == "" {
			rid = uuid.NewString()
			ctx.Request.Header.Set(headerRequestID, rid)
		}
		ctx.Response.Header.Set(headerRequestID, rid)
		next(ctx)
	}
}

func MetricsMiddleware(observe ObserveFunc) MiddlewareFunc {
	return func(next RequestHandler) RequestHandler {
		return func(ctx *RequestCtx) {
			start := time.Now()
			next(ctx)
			route := MatchedRoute(ctx)
			if route == "" {
				route = "unmatched"
			}
			observe(string(ctx.Method()), route, ctx.Response.StatusCode(), time.Since(start))
		}
	}
}

func RequestLoggerMiddleware(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		if shouldSkip(path) {
			next(ctx)
			return
		}

		start := time.Now()
		next(ctx)

		latency := time.Since(start)
		status := ctx.Response.StatusCode()

		lg := logger.GetLogger().With("request_id", requestID(ctx))
		fields := []any{
			"status", status,
			"method", string(ctx.Method()),
			"path", path,
			"latency", latency.String(),
			"bytes_in", len(ctx.PostBody()),
			"bytes_out", len(ctx.Response.Body()),
			"ip", ctx.RemoteIP().String(),
			"ua", string(ctx.Request.Header.UserAgent()),
		}

		// choose level
		switch {
		case status >= 500:
			lg.Error("http_request", fields...)
		case status >= 400 || latency > slowThreshold:
			lg.Warn("http_request", fields...)
		default:
			lg.Info("http_request", fields...)
		}
	}
}

func logPanic(rcv interface{}) {
	logger.Error("[xhttp] panic recovered", "error", rcv)
}

func shouldSkip(p string) bool {
	for _, sp := range skipPaths {
		if strings.HasPrefix(p, sp) {
			return true
		}
	}
	return false
}

func requestID(ctx *fasthttp.RequestCtx) string {
	if v := ctx.Request.Header.Peek(headerRequestID); len(v) > 0 {
		return string(v)
	}
	return ""
}
