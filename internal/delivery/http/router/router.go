// Package router registers the HTTP routes.
package router

import (
	"authsvc/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler *handler.UserHandler
	HomeHandler *handler.HomeHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler *handler.UserHandler
	homeHandler *handler.HomeHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler: params.UserHandler,
		homeHandler: params.HomeHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.homeHandler.Index)
	e.GET("/health", r.homeHandler.Health)

	e.POST("/register", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)
}
