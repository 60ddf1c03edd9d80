// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/delivery/http/response"
	"authsvc/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the registration request.
func (h *UserHandler) Register(c echo.Context) error {
	p, err := h.decodePayload(c)
	if err != nil {
		return err
	}

	var input *usecase.RegisterInput
	if p != nil {
		input = &usecase.RegisterInput{
			Email:    p.field("email"),
			Password: p.field("password"),
			Name:     p.field("name"),
		}
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.User(c, http.StatusCreated, "registration successful", output.User)
}

// Login handles the login request.
func (h *UserHandler) Login(c echo.Context) error {
	p, err := h.decodePayload(c)
	if err != nil {
		return err
	}

	var input *usecase.LoginInput
	if p != nil {
		input = &usecase.LoginInput{
			Email:    p.field("email"),
			Password: p.field("password"),
		}
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.User(c, http.StatusOK, "login successful", output.User)
}

type payload map[string]any

// field returns the value when it is a JSON string and "" otherwise.
func (p payload) field(key string) string {
	s, _ := p[key].(string)

	return s
}

// decodePayload reads the body as a JSON object. A missing or malformed body,
// null, a non-object value and {} all yield a nil payload. A body cut off by
// the size limit is returned as the limit's 413 error.
func (h *UserHandler) decodePayload(c echo.Context) (payload, error) {
	var p payload
	if err := c.Echo().JSONSerializer.Deserialize(c, &p); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge {
			return nil, httpErr
		}

		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Debug("Request body is not a JSON object", slog.Any("error", err))

		return nil, nil
	}
	if len(p) == 0 {
		return nil, nil
	}

	return p, nil
}
