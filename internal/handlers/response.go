package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/zha7nea/callcenter/internal/model"
	xhttp "github.com/zha7nea/callcenter/pkg/http"
	"github.com/zha7nea/callcenter/pkg/logger"
)

type messageResponse struct {
	Message string `json:"message"`
}

// readJSON decodes the body and reports any decoding failure as a
// validation error.
func readJSON(ctx *xhttp.RequestCtx, dst any) error {
	if len(ctx.PostBody()) == 0 {
		return model.InvalidRequest("Request body must be a JSON object")
	}
	if err := xhttp.ReadJSON(ctx, dst); err != nil {
		return model.InvalidRequest("Invalid JSON: " + err.Error())
	}
	return nil
}

func writeJSON(ctx *xhttp.RequestCtx, status int, v any) {
	xhttp.WriteJSON(ctx, status, v)
}

func writeMessage(ctx *xhttp.RequestCtx, status int, msg string) {
	xhttp.WriteJSON(ctx, status, messageResponse{Message: msg})
}

// writeError answers with the status for err's category. Uncategorised
// errors are logged and hidden behind a generic message.
func writeError(ctx *xhttp.RequestCtx, err error) {
	status := statusFor(err)
	if status == xhttp.StatusServiceUnavailable {
		logger.Warn("request timed out", "method", string(ctx.Method()), "path", string(ctx.Path()), "error", err)
		xhttp.WriteError(ctx, status, xhttp.MessageTimeout)
		return
	}
	if status == xhttp.StatusInternalServerError {
		logger.Error("request failed",
			"method", string(ctx.Method()),
			"path", string(ctx.Path()),
			"error", err,
		)
		xhttp.WriteError(ctx, status, xhttp.MessageInternalError)
		return
	}
	xhttp.WriteError(ctx, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation), errors.Is(err, model.ErrIntegrity):
		return xhttp.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return xhttp.StatusNotFound
	case errors.Is(err, model.ErrUnauthenticated):
		return xhttp.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return xhttp.StatusForbidden
	case errors.Is(err, context.DeadlineExceeded):
		return xhttp.StatusServiceUnavailable
	}
	return xhttp.StatusInternalServerError
}

// pathID reads the numeric {id} route parameter. Values that do not fit an
// int64 are treated like an unmatched route.
func pathID(ctx *xhttp.RequestCtx) (int64, bool) {
	raw, _ := ctx.UserValue("id").(string)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		xhttp.NotFoundHandler(ctx)
		return 0, false
	}
	return id, true
}
