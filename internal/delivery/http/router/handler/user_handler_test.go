package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"

	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	mockUsecase "authsvc/internal/mocks/usecase"
	"authsvc/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestUserHandler(t *testing.T) (*UserHandler, *mockUsecase.MockUserUsecase) {
	uc := mockUsecase.NewMockUserUsecase(t)

	return NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil))), uc
}

func TestUserHandler_Register_NoDataBodies(t *testing.T) {
	bodies := map[string]string{
		"empty body":   "",
		"malformed":    "{not json",
		"null":         "null",
		"empty object": "{}",
		"array":        `["a@b.com"]`,
		"string":       `"a@b.com"`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			h, uc := newTestUserHandler(t)
			uc.On("Register", mock.Anything, (*usecase.RegisterInput)(nil)).Return(nil, domainerrors.ErrNoData).Once()

			c, _ := newTestContext(http.MethodPost, body)
			err := h.Register(c)
			assert.ErrorIs(t, err, domainerrors.ErrNoData)
		})
	}
}

func TestUserHandler_BodyOverLimitIsNotNoData(t *testing.T) {
	h, _ := newTestUserHandler(t)
	e := echo.New()

	for name, handle := range map[string]echo.HandlerFunc{"register": h.Register, "login": h.Login} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", iotest.ErrReader(echo.ErrStatusRequestEntityTooLarge))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			err := handle(e.NewContext(req, httptest.NewRecorder()))

			var httpErr *echo.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusRequestEntityTooLarge, httpErr.Code)
		})
	}
}

func TestUserHandler_Register_NonStringFieldsAreEmpty(t *testing.T) {
	h, uc := newTestUserHandler(t)
	uc.On("Register", mock.Anything, &usecase.RegisterInput{Email: "", Password: "secret1", Name: ""}).
		Return(nil, domainerrors.ErrMissingFields).Once()

	c, _ := newTestContext(http.MethodPost, `{"email":5,"password":"secret1","name":{"first":"Ann"}}`)
	err := h.Register(c)
	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestUserHandler_Register_Created(t *testing.T) {
	h, uc := newTestUserHandler(t)
	uc.On("Register", mock.Anything, &usecase.RegisterInput{Email: "a@b.com", Password: "secret1", Name: "Ann"}).
		Return(&usecase.RegisterOutput{User: &entity.User{ID: 1, Email: "a@b.com", Name: "Ann", PasswordDigest: "digest"}}, nil).Once()

	c, rec := newTestContext(http.MethodPost, `{"email":"a@b.com","password":"secret1","name":"Ann","extra":true}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"success":true,"message":"registration successful","user":{"id":1,"email":"a@b.com","name":"Ann"},"meta":{"request_id":""}}`,
		rec.Body.String(),
	)
}

func TestUserHandler_Login(t *testing.T) {
	h, uc := newTestUserHandler(t)
	uc.On("Login", mock.Anything, &usecase.LoginInput{Email: "a@b.com", Password: "secret1"}).
		Return(&usecase.LoginOutput{User: &entity.User{ID: 1, Email: "a@b.com", Name: "Ann", PasswordDigest: "digest"}}, nil).Once()

	c, rec := newTestContext(http.MethodPost, `{"email":"a@b.com","password":"secret1"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "digest")
	assert.Contains(t, rec.Body.String(), `"message":"login successful"`)
}

func TestUserHandler_Login_PropagatesError(t *testing.T) {
	h, uc := newTestUserHandler(t)
	uc.On("Login", mock.Anything, (*usecase.LoginInput)(nil)).Return(nil, domainerrors.ErrNoData).Once()

	c, rec := newTestContext(http.MethodPost, "")
	err := h.Login(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoData))
	assert.False(t, c.Response().Committed, "errors are rendered by the error handler")
	assert.Empty(t, rec.Body.String())
}

func TestHomeHandler(t *testing.T) {
	h := NewHomeHandler()

	c, rec := newTestContext(http.MethodGet, "")
	require.NoError(t, h.Index(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "POST /register")
	assert.Contains(t, rec.Body.String(), "POST /login")

	c, rec = newTestContext(http.MethodGet, "")
	require.NoError(t, h.Health(c))
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
