package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"authsvc/config"
	httpmiddleware "authsvc/internal/delivery/http/middleware"
	"authsvc/internal/delivery/http/router"
	"authsvc/internal/delivery/http/router/handler"
	"authsvc/internal/infra/auth"
	"authsvc/internal/infra/persistence/database"
	"authsvc/internal/usecase"
	"authsvc/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.Database = config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "users.db"),
	}

	return cfg
}

func newEchoWithUsecase(cfg *config.Config, uc usecase.UserUsecase) *echo.Echo {
	logger := discardLogger()

	return NewEcho(cfg, logger, httpmiddleware.NewErrorMiddleware(logger), router.RouterParams{
		UserHandler: handler.NewUserHandler(uc, logger),
		HomeHandler: handler.NewHomeHandler(),
	})
}

// newTestServer wires the full stack on a temp SQLite store.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := newTestConfig(t)
	db, err := database.Open(cfg, discardLogger())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(context.Background(), db, cfg.Database.Driver, discardLogger()))

	uc := impl.NewUserService(impl.UserServiceParams{
		UserRepo: database.NewUserRepository(db),
		Hasher:   auth.NewArgon2Hasher(auth.Argon2Params{Memory: 8 * 1024, Iterations: 1, Threads: 1}),
		Logger:   discardLogger(),
	})

	return newEchoWithUsecase(cfg, uc)
}

func doRequest(e *echo.Echo, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	body := decodeBody(t, rec)
	require.Equal(t, false, body["success"])
	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok, rec.Body.String())
	code, _ := errInfo["code"].(string)

	return code
}
