package database

import (
	"fmt"
	"time"

	"github.com/SW1MD/dnd-proj-sub001/config"
	"github.com/SW1MD/dnd-proj-sub001/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the store described by env and applies its pool bounds.
func Open(env config.Environment, l logger.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch env.Dialect() {
	case config.DialectSQLite:
		dialector = sqlite.Open(env.DSN())

	case config.DialectPostgres:
		if prod, ok := env.(config.ProductionEnvironment); ok {
			if prod.Database.SSLEnabled() {
				l.Warnf("TLS enabled for %s:%s without server certificate verification (DB_SSL=true)",
					prod.Database.Host, prod.Database.Port)
			} else {
				l.Infof("TLS disabled for %s:%s", prod.Database.Host, prod.Database.Port)
			}
		}
		dialector = postgres.Open(env.DSN())

	default:
		return nil, fmt.Errorf("unsupported dialect %s", env.Dialect())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewGormLogger(l),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	pool := env.Pool()
	sqlDB.SetMaxOpenConns(pool.MaxOpen)
	sqlDB.SetMaxIdleConns(pool.MinIdle)
	if env.Dialect() == config.DialectSQLite {
		// Closing the only connection of an in-memory store drops the store.
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
	} else {
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	l.Infof("Connected to %s store (%s)", env.Name(), env.Dialect())
	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

type gormWriter struct {
	logger logger.Logger
}

func (w gormWriter) Printf(format string, v ...any) {
	w.logger.Debugf(format, v...)
}

// NewGormLogger routes gorm's slow query and error reports into l at debug
// level. Callers decide themselves which errors deserve more.
func NewGormLogger(l logger.Logger) gormlogger.Interface {
	return gormlogger.New(gormWriter{logger: l}, gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
