package database

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/SW1MD/dnd-proj-sub001/config"
	"github.com/SW1MD/dnd-proj-sub001/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestOpenTestEnvironment(t *testing.T) {
	env, err := config.Resolve("test", config.Default())
	require.NoError(t, err)

	db, err := Open(env, logger.NewLogger(logger.SILENCE))
	require.NoError(t, err)
	defer Close(db)

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	require.Equal(t, 1, fk)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestOpenStoresAreIsolated(t *testing.T) {
	cfg := config.Default()
	cfg.Development.Filename = filepath.Join(t.TempDir(), "dev.sqlite3")
	l := logger.NewLogger(logger.SILENCE)

	testEnv, err := config.Resolve("test", cfg)
	require.NoError(t, err)
	devEnv, err := config.Resolve("development", cfg)
	require.NoError(t, err)

	testDB, err := Open(testEnv, l)
	require.NoError(t, err)
	defer Close(testDB)

	devDB, err := Open(devEnv, l)
	require.NoError(t, err)
	defer Close(devDB)

	require.NoError(t, testDB.Exec("CREATE TABLE only_in_memory (id TEXT)").Error)
	require.True(t, testDB.Migrator().HasTable("only_in_memory"))
	require.False(t, devDB.Migrator().HasTable("only_in_memory"))

	otherEnv, err := config.Resolve("test", cfg)
	require.NoError(t, err)
	otherDB, err := Open(otherEnv, l)
	require.NoError(t, err)
	defer Close(otherDB)
	require.False(t, otherDB.Migrator().HasTable("only_in_memory"))
}

func TestOpenLogsTLSDecision(t *testing.T) {
	tests := []struct {
		ssl  string
		want string
	}{
		{ssl: "true", want: "WARN TLS enabled for 127.0.0.1:1 without server certificate verification"},
		{ssl: "TRUE", want: "INFO TLS disabled for 127.0.0.1:1"},
		{ssl: "", want: "INFO TLS disabled for 127.0.0.1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.ssl, func(t *testing.T) {
			cfg := config.Default()
			cfg.Database.Host = "127.0.0.1"
			cfg.Database.Port = "1"
			cfg.Database.SSL = tt.ssl

			env, err := config.Resolve("production", cfg)
			require.NoError(t, err)

			var buf bytes.Buffer
			// Nothing listens on port 1, so only the decision is observed.
			_, err = Open(env, logger.NewLoggerWithWriter(logger.DEBUG, &buf))
			require.Error(t, err)
			require.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestGormLoggerWritesAtDebug(t *testing.T) {
	var buf bytes.Buffer
	NewGormLogger(logger.NewLoggerWithWriter(logger.DEBUG, &buf)).Error(context.Background(), "boom %s", "here")
	require.Contains(t, buf.String(), "DEBUG")
	require.Contains(t, buf.String(), "boom here")

	buf.Reset()
	NewGormLogger(logger.NewLoggerWithWriter(logger.INFO, &buf)).Error(context.Background(), "boom %s", "here")
	require.Empty(t, buf.String())
}
