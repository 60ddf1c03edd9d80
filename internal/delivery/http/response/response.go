// Package response renders the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	User    *UserView  `json:"user,omitempty"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *MetaInfo  `json:"meta,omitempty"`
}

// UserView is the public projection of a user. The password digest is never part of it.
type UserView struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ErrorInfo carries the machine-readable error category.
type ErrorInfo struct {
	Code string `json:"code"` // e.g. "USER_NOT_FOUND"
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// NewUserView projects user for a response body.
func NewUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}

// Success successful response carrying arbitrary data
func Success(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta(c),
	})
}

// User successful response carrying a user
func User(c echo.Context, statusCode int, message string, user *entity.User) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		User:    NewUserView(user),
		Meta:    meta(c),
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Error:   &ErrorInfo{Code: errorCode},
		Meta:    meta(c),
	})
}

// InternalServerError 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
