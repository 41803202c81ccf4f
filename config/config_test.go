package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SW1MD/dnd-proj-sub001/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Equal(t, "development", cfg.Env)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, "5432", cfg.Database.Port)
	require.Equal(t, "dnd_game", cfg.Database.Database)
	require.Equal(t, "postgres", cfg.Database.User)
	require.Equal(t, "password", cfg.Database.Password)
	require.False(t, cfg.Database.SSLEnabled())
	require.Equal(t, 2, cfg.Database.PoolMin)
	require.Equal(t, 10, cfg.Database.PoolMax)
	require.Equal(t, "./dev.sqlite3", cfg.Development.Filename)
	require.Equal(t, "schema_migrations", cfg.Migration.TableName)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_PORT", "6543")
		t.Setenv("DB_SSL", "true")

		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, "db.internal", cfg.Database.Host)
		require.Equal(t, "6543", cfg.Database.Port)
		require.True(t, cfg.Database.SSLEnabled())
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dnd.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[development]
filename = "/tmp/campaign.sqlite3"

[migration]
table_name = "dnd_migrations"
lock_key = 99
`), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "/tmp/campaign.sqlite3", cfg.Development.Filename)
		require.Equal(t, "dnd_migrations", cfg.Migration.TableName)
		require.Equal(t, int64(99), cfg.Migration.LockKey)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dnd.toml")
		require.NoError(t, os.WriteFile(path, []byte("[development]\nfile = \"x\"\n"), 0600))

		_, err := Load(path)
		require.True(t, errorx.Is(err, errorx.InvalidConfig))
	})

	t.Run("invalid pool bounds", func(t *testing.T) {
		t.Setenv("DB_POOL_MIN", "20")
		t.Setenv("DB_POOL_MAX", "10")

		_, err := Load("")
		require.True(t, errorx.Is(err, errorx.InvalidConfig))
	})
}

func TestSSLMode(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{value: "true", want: "require"},
		{value: "", want: "disable"},
		{value: "false", want: "disable"},
		{value: "TRUE", want: "disable"},
		{value: "1", want: "disable"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			d := DatabaseConfigs{SSL: tt.value}
			require.Equal(t, tt.want, d.SSLMode())
		})
	}
}

func TestConnectionString(t *testing.T) {
	d := Default().Database
	require.Equal(t,
		"host=localhost port=5432 user=postgres password=password dbname=dnd_game sslmode=disable",
		d.ConnectionString())
	require.Contains(t, d.RedactedConnectionString(), "password=***")

	d.Password = "it's secret"
	require.Contains(t, d.ConnectionString(), `password='it\'s secret'`)
}
