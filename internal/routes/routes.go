package routes

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-dispatch/internal/router"
	"github.com/MKhiriev/go-dispatch/internal/validators"
	"github.com/MKhiriev/go-dispatch/models"
)

const (
	PathHello   = "/hello"
	PathVersion = "/api/version"
	PathEcho    = "/api/echo"
)

// Register installs every application pipeline on r.
func Register(r *router.Router, info models.AppBuildInfo) {
	echo := newEchoRoute(validators.NewMessageValidator())

	r.Use(
		router.Route(PathHello).
			Get(hello).
			Head(helloHead),
		router.Route(PathVersion).
			Get(version(info)),
		router.Route(PathEcho).
			Post(echo.validate).
			Post(echo.respond),
	)
}

func hello(req models.Message) models.Message {
	name := req.Query["name"]
	if name == "" {
		name = "world"
	}

	return models.NewTextResponse(http.StatusOK, "Hello, "+name+"!")
}

func helloHead(models.Message) models.Message {
	resp := models.NewResponse(http.StatusOK)
	resp.Header["Content-Type"] = "text/plain"
	return resp
}

func version(info models.AppBuildInfo) router.HandlerFunc {
	return func(models.Message) models.Message {
		return models.NewTextResponse(http.StatusOK, info.String())
	}
}

type echoRoute struct {
	validator validators.Validator
}

func newEchoRoute(v validators.Validator) *echoRoute {
	return &echoRoute{validator: v}
}

// validate rejects empty or untyped bodies and lets valid requests continue.
func (e *echoRoute) validate(req models.Message) models.Message {
	if err := e.validator.Validate(context.Background(), req, validators.FieldBody, validators.FieldContentType); err != nil {
		return models.NewTextResponse(http.StatusBadRequest, err.Error())
	}

	return req
}

func (e *echoRoute) respond(req models.Message) models.Message {
	resp := models.NewResponse(http.StatusOK)
	resp.Header["Content-Type"] = req.Header["Content-Type"]
	resp.Body = req.Body
	return resp
}
