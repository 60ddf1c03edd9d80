package database

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"authsvc/config"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gorm.io/gorm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Database: config.DatabaseConfig{
			Driver:      config.DriverSQLite,
			Path:        filepath.Join(t.TempDir(), "users.db"),
			BusyTimeout: time.Second,
		},
	}
}

// openTestDB returns a migrated SQLite store in a temp directory.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := sqliteConfig(t)
	db, err := Open(cfg, discardLogger())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db, cfg.Database.Driver, discardLogger()))

	return db
}

func TestSQLiteDSN(t *testing.T) {
	dsn := sqliteDSN(config.DatabaseConfig{Path: "/tmp/users.db", BusyTimeout: 2 * time.Second})
	assert.Equal(t, "file:/tmp/users.db?_pragma=busy_timeout%282000%29", dsn)

	dsn = sqliteDSN(config.DatabaseConfig{Path: "users.db"})
	assert.Contains(t, dsn, "busy_timeout%285000%29", "zero timeout falls back to the default")
}

func TestOpen_SQLiteUsesSingleConnection(t *testing.T) {
	db := openTestDB(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	var busyTimeout int
	require.NoError(t, db.Raw("PRAGMA busy_timeout").Scan(&busyTimeout).Error)
	assert.Equal(t, 1000, busyTimeout)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: "mysql"}}

	_, err := Open(cfg, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(context.Background(), db, config.DriverSQLite, discardLogger()))
	assert.True(t, db.Migrator().HasTable("users"))
}

func TestMigrate_AdoptsExistingUsersTable(t *testing.T) {
	cfg := sqliteConfig(t)
	db, err := Open(cfg, discardLogger())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec(`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO users (email, password_hash, name) VALUES ('old@b.com', 'abc', 'Old')`).Error)

	require.NoError(t, Migrate(context.Background(), db, cfg.Database.Driver, discardLogger()))

	user, err := NewUserRepository(db).FindByEmail(context.Background(), "old@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Old", user.Name)
	assert.Equal(t, int64(1), user.ID)
}

func TestMigrate_PropagatesGooseFailure(t *testing.T) {
	db := openTestDB(t)

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })
	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return assert.AnError
	}

	err := Migrate(context.Background(), db, config.DriverSQLite, discardLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestMigrationSource(t *testing.T) {
	dialect, dir, err := migrationSource(config.DriverPostgres)
	require.NoError(t, err)
	assert.Equal(t, "postgres", dialect)
	assert.Equal(t, "postgres", dir)

	dialect, dir, err = migrationSource(config.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", dialect)
	assert.Equal(t, "sqlite", dir)

	_, _, err = migrationSource("oracle")
	assert.Error(t, err)
}

func TestNew_LifecycleMigratesAndCloses(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := sqliteConfig(t)

	db, err := New(Params{Lifecycle: lc, Config: cfg, Logger: discardLogger()})
	require.NoError(t, err)

	lc.RequireStart()
	assert.True(t, db.Migrator().HasTable("users"))
	lc.RequireStop()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping(), "store is closed after stop")
}

func TestLogPoolWait(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logPoolWait(context.Background(), logger, sql.DBStats{}, sql.DBStats{})
	assert.Empty(t, buf.String(), "no waits, nothing logged")

	logPoolWait(context.Background(), logger, sql.DBStats{}, sql.DBStats{WaitCount: 2, WaitDuration: 200 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waitCountDelta=2")

	buf.Reset()
	logPoolWait(context.Background(), logger, sql.DBStats{}, sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond})
	assert.Contains(t, buf.String(), "level=DEBUG")
}
