package config

import (
	"net/url"
	"strings"

	"github.com/SW1MD/dnd-proj-sub001/pkg/errorx"
	"github.com/google/uuid"
)

type EnvironmentName string

const (
	Development EnvironmentName = "development"
	Test        EnvironmentName = "test"
	Production  EnvironmentName = "production"
)

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// PoolConfigs bounds the connection pool. MinIdle is kept warm, MaxOpen is a
// hard cap.
type PoolConfigs struct {
	MinIdle int
	MaxOpen int
}

// Environment is one of DevelopmentEnvironment, TestEnvironment or
// ProductionEnvironment.
type Environment interface {
	Name() EnvironmentName
	Dialect() string
	DSN() string
	Pool() PoolConfigs

	isEnvironment()
}

// DevelopmentEnvironment is a local single-user sqlite file.
type DevelopmentEnvironment struct {
	Filename string
}

func (DevelopmentEnvironment) Name() EnvironmentName { return Development }
func (DevelopmentEnvironment) Dialect() string       { return DialectSQLite }
func (DevelopmentEnvironment) isEnvironment()        {}

func (e DevelopmentEnvironment) DSN() string {
	return sqliteFileDSN(e.Filename, url.Values{
		"_foreign_keys": {"on"},
		"_busy_timeout": {"5000"},
	})
}

func (DevelopmentEnvironment) Pool() PoolConfigs {
	return PoolConfigs{MinIdle: 1, MaxOpen: 1}
}

// TestEnvironment is an in-memory sqlite store. The single pooled connection
// owns the database, so it disappears with the handle or the process.
type TestEnvironment struct {
	ID string
}

func (TestEnvironment) Name() EnvironmentName { return Test }
func (TestEnvironment) Dialect() string       { return DialectSQLite }
func (TestEnvironment) isEnvironment()        {}

func (e TestEnvironment) DSN() string {
	return sqliteFileDSN("dnd-test-"+e.ID, url.Values{
		"mode":          {"memory"},
		"_foreign_keys": {"on"},
	})
}

func (TestEnvironment) Pool() PoolConfigs {
	return PoolConfigs{MinIdle: 1, MaxOpen: 1}
}

// ProductionEnvironment is the networked postgres server.
type ProductionEnvironment struct {
	Database DatabaseConfigs
}

func (ProductionEnvironment) Name() EnvironmentName { return Production }
func (ProductionEnvironment) Dialect() string       { return DialectPostgres }
func (ProductionEnvironment) isEnvironment()        {}

func (e ProductionEnvironment) DSN() string {
	return e.Database.ConnectionString()
}

func (e ProductionEnvironment) Pool() PoolConfigs {
	return PoolConfigs{MinIdle: e.Database.PoolMin, MaxOpen: e.Database.PoolMax}
}

// Resolve maps an environment name to its connection parameters. It never
// touches the network or the filesystem.
func Resolve(name string, cfg Configs) (Environment, error) {
	switch EnvironmentName(strings.TrimSpace(name)) {
	case Development:
		return DevelopmentEnvironment{Filename: cfg.Development.Filename}, nil
	case Test:
		return TestEnvironment{ID: uuid.NewString()}, nil
	case Production:
		return ProductionEnvironment{Database: cfg.Database}, nil
	}

	return nil, errorx.New(errorx.UnknownEnvironment,
		"unknown environment %q, expected one of %s, %s, %s", name, Development, Test, Production)
}
