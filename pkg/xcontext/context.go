package xcontext

import (
	"context"

	"github.com/SW1MD/dnd-proj-sub001/pkg/logger"
	"gorm.io/gorm"
)

type (
	dbKey      struct{}
	loggerKey  struct{}
	configsKey struct{}
)

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the database bound to ctx. The returned handle carries ctx, so
// queries built from it are cancelled with the context.
func DB(ctx context.Context) *gorm.DB {
	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		return nil
	}

	return db.WithContext(ctx)
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// Logger never returns nil; without a bound logger it falls back to a
// silent one.
func Logger(ctx context.Context) logger.Logger {
	l, ok := ctx.Value(loggerKey{}).(logger.Logger)
	if !ok {
		return logger.NewLogger(logger.SILENCE)
	}

	return l
}
