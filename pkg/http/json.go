package xhttp

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var errTrailingData = errors.New("unexpected data after JSON body")

const (
	MessageNotFound      = "Resource not found"
	MessageInternalError = "Internal server error"
	MessageTimeout       = "Request timed out"
)

// ReadJSON decodes the request body into dst. Unknown fields and trailing
// data are rejected.
func ReadJSON(ctx *RequestCtx, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(ctx.PostBody()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errTrailingData
	}
	return nil
}

func WriteJSON(ctx *RequestCtx, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		status = StatusInternalServerError
		b = []byte(`{"error":"` + MessageInternalError + `"}`)
	}
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}

func WriteError(ctx *RequestCtx, status int, msg string) {
	WriteJSON(ctx, status, map[string]string{"error": msg})
}

// BearerToken returns the token carried in "Authorization: Bearer <token>".
func BearerToken(ctx *RequestCtx) (string, bool) {
	h := strings.TrimSpace(string(ctx.Request.Header.Peek("Authorization")))
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
