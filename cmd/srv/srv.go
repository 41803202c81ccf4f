package main

import (
	"context"

	"github.com/SW1MD/dnd-proj-sub001/config"
	"github.com/SW1MD/dnd-proj-sub001/migration"
	"github.com/SW1MD/dnd-proj-sub001/pkg/database"
	"github.com/SW1MD/dnd-proj-sub001/pkg/errorx"
	"github.com/SW1MD/dnd-proj-sub001/pkg/logger"
	"github.com/SW1MD/dnd-proj-sub001/pkg/xcontext"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs *config.Configs
	env     config.Environment
	db      *gorm.DB
	runner  *migration.Runner
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}

	if cctx.IsSet("env") {
		cfg.Env = cctx.String("env")
	}

	if cctx.IsSet("log-level") {
		cfg.LogLevel = cctx.String("log-level")
	}

	s.configs = &cfg
	s.ctx = xcontext.WithConfigs(context.Background(), cfg)

	return s.loadLogger()
}

func (s *srv) loadLogger() error {
	level, err := logger.ParseLevel(s.configs.LogLevel)
	if err != nil {
		return errorx.Wrap(errorx.InvalidConfig, err, "Invalid log level")
	}

	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
	return nil
}

// loadEnvironment resolves the configured environment. It fails on an
// unknown name before anything is opened.
func (s *srv) loadEnvironment() error {
	env, err := config.Resolve(s.configs.Env, *s.configs)
	if err != nil {
		return err
	}

	s.env = env
	return nil
}

func (s *srv) loadDatabase() error {
	if err := s.loadEnvironment(); err != nil {
		return err
	}

	db, err := database.Open(s.env, xcontext.Logger(s.ctx))
	if err != nil {
		return errorx.Wrap(errorx.Internal, err, "Cannot open the %s store", s.env.Name())
	}

	s.db = db
	s.ctx = xcontext.WithDB(s.ctx, db)
	return nil
}

func (s *srv) loadRunner() error {
	runner, err := migration.NewRunner(migration.Migrations(), migration.Options{
		TableName: s.configs.Migration.TableName,
		LockKey:   s.configs.Migration.LockKey,
	})
	if err != nil {
		return err
	}

	s.runner = runner
	return nil
}

func (s *srv) closeDatabase(*cli.Context) error {
	if s.db == nil {
		return nil
	}

	return database.Close(s.db)
}
