package handlers

import (
	xhttp "github.com/zha7nea/callcenter/pkg/http"
)

type homeResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

var serviceDescription = homeResponse{
	Message: "Call Center Management System",
	Endpoints: map[string]string{
		"/login":               "Obtain an access token",
		"/register":            "Create a user account",
		"/customers":           "Manage accounts",
		"/customers/<id>":      "Manage a specific account",
		"/customer_calls":      "Log and list customer calls",
		"/customer_calls/<id>": "Manage a specific call",
		"/health":              "Service health",
	},
}

func RegisterHomeRoutes(r xhttp.Routes) {
	r.GET("/", Home)
}

func Home(ctx *xhttp.RequestCtx) {
	writeJSON(ctx, xhttp.StatusOK, serviceDescription)
}
