package handler

import (
	"net/http"

	"authsvc/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HomeHandler serves the informational endpoints.
type HomeHandler struct{}

// NewHomeHandler is the constructor for HomeHandler, injected by Fx.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Index lists the operations the service offers.
func (h *HomeHandler) Index(c echo.Context) error {
	return response.Success(c, http.StatusOK, "server is running", map[string]any{
		"endpoints": map[string]string{
			"POST /register": "register a new user",
			"POST /login":    "log in with email and password",
		},
	})
}

// Health reports liveness.
func (h *HomeHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, "service is healthy", map[string]string{"status": "ok"})
}
