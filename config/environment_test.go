package config

import (
	"testing"

	"github.com/SW1MD/dnd-proj-sub001/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	cfg := Default()

	t.Run("development", func(t *testing.T) {
		env, err := Resolve("development", cfg)
		require.NoError(t, err)

		dev, ok := env.(DevelopmentEnvironment)
		require.True(t, ok)
		require.Equal(t, "./dev.sqlite3", dev.Filename)
		require.Equal(t, DialectSQLite, env.Dialect())
		require.Equal(t, "file:./dev.sqlite3?_busy_timeout=5000&_foreign_keys=on", env.DSN())
		require.Equal(t, PoolConfigs{MinIdle: 1, MaxOpen: 1}, env.Pool())
	})

	t.Run("test", func(t *testing.T) {
		env, err := Resolve("test", cfg)
		require.NoError(t, err)
		require.Equal(t, Test, env.Name())
		require.Equal(t, DialectSQLite, env.Dialect())
		require.Contains(t, env.DSN(), "mode=memory")
		require.Contains(t, env.DSN(), "_foreign_keys=on")
	})

	t.Run("production", func(t *testing.T) {
		env, err := Resolve("production", cfg)
		require.NoError(t, err)

		prod, ok := env.(ProductionEnvironment)
		require.True(t, ok)
		require.Equal(t, DialectPostgres, env.Dialect())
		require.Equal(t, cfg.Database, prod.Database)
		require.Equal(t, PoolConfigs{MinIdle: 2, MaxOpen: 10}, env.Pool())
		require.Contains(t, env.DSN(), "sslmode=disable")
	})

	t.Run("production with ssl", func(t *testing.T) {
		withSSL := cfg
		withSSL.Database.SSL = "true"

		env, err := Resolve("production", withSSL)
		require.NoError(t, err)
		require.Contains(t, env.DSN(), "sslmode=require")
	})

	t.Run("unknown environment", func(t *testing.T) {
		for _, name := range []string{"staging", "", "Production"} {
			env, err := Resolve(name, cfg)
			require.Nil(t, env)
			require.True(t, errorx.Is(err, errorx.UnknownEnvironment), name)
		}
	})
}

func TestResolveTestIsIsolated(t *testing.T) {
	cfg := Default()

	first, err := Resolve("test", cfg)
	require.NoError(t, err)
	second, err := Resolve("test", cfg)
	require.NoError(t, err)
	dev, err := Resolve("development", cfg)
	require.NoError(t, err)

	require.NotEqual(t, first.DSN(), second.DSN())
	require.NotEqual(t, first.DSN(), dev.DSN())
	require.NotContains(t, first.DSN(), cfg.Development.Filename)
}
