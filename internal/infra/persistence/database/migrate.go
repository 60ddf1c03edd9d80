package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"authsvc/config"
	"authsvc/internal/errors"
	"authsvc/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// goose keeps its base FS, dialect and logger in package globals.
var gooseMu sync.Mutex

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Migrate applies every pending embedded migration for driver.
func Migrate(ctx context.Context, db *gorm.DB, driver string, logger *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	dialect, dir, err := migrationSource(driver)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(newGooseSlogLogger(logger))
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrapf(err, "failed to set goose dialect %s", dialect)
	}

	if err := gooseUpContext(ctx, sqlDB, dir); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

func migrationSource(driver string) (dialect, dir string, err error) {
	switch driver {
	case config.DriverSQLite, "":
		return "sqlite3", migrations.SQLiteDir, nil
	case config.DriverPostgres:
		return "postgres", migrations.PostgresDir, nil
	default:
		return "", "", errors.Errorf("no migrations for database driver: %s", driver)
	}
}

type gooseSlogLogger struct {
	logger *slog.Logger
}

func newGooseSlogLogger(logger *slog.Logger) goose.Logger {
	if logger == nil {
		logger = slog.Default()
	}

	return &gooseSlogLogger{logger: logger.With(slog.String("component", "goose"))}
}

func (l *gooseSlogLogger) Printf(format string, v ...any) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf matches the standard logger contract goose expects: log, then exit.
func (l *gooseSlogLogger) Fatalf(format string, v ...any) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
	os.Exit(1)
}
