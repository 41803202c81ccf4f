package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/SW1MD/dnd-proj-sub001/config"
	"github.com/SW1MD/dnd-proj-sub001/pkg/database"
	"github.com/SW1MD/dnd-proj-sub001/pkg/logger"
	"github.com/SW1MD/dnd-proj-sub001/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

// NewContext returns a context bound to a fresh, empty in-memory store. The
// store is closed when the test ends.
func NewContext(t *testing.T) context.Context {
	t.Helper()

	cfg := config.Default()
	env, err := config.Resolve(string(config.Test), cfg)
	require.NoError(t, err)

	return newContext(t, cfg, env)
}

// EnableIntegrationTest reports whether tests should also run against the
// postgres server described by the DB_* variables.
func EnableIntegrationTest() bool {
	return os.Getenv("DND_INTEGRATION_TEST") == "true"
}

// NewIntegrationContext binds the production store. The caller leaves it
// as empty as it found it.
func NewIntegrationContext(t *testing.T) context.Context {
	t.Helper()

	cfg, err := config.Load("")
	require.NoError(t, err)

	env, err := config.Resolve(string(config.Production), cfg)
	require.NoError(t, err)

	return newContext(t, cfg, env)
}

func newContext(t *testing.T, cfg config.Configs, env config.Environment) context.Context {
	l := logger.NewLogger(logger.SILENCE)

	db, err := database.Open(env, l)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, l)
	ctx = xcontext.WithDB(ctx, db)

	return ctx
}
