package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/SW1MD/dnd-proj-sub001/pkg/errorx"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Configs struct {
	Env      string `toml:"-" env:"APP_ENV" envDefault:"development"`
	LogLevel string `toml:"-" env:"LOG_LEVEL" envDefault:"info"`

	Database    DatabaseConfigs    `toml:"-"`
	Development DevelopmentConfigs `toml:"development"`
	Migration   MigrationConfigs   `toml:"migration"`
}

// DatabaseConfigs describes the networked production store.
type DatabaseConfigs struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Database string `env:"DB_NAME" envDefault:"dnd_game"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"password"`

	// SSL enables TLS only for the exact value "true". Certificates are not
	// verified when it is on.
	SSL string `env:"DB_SSL"`

	PoolMin int `env:"DB_POOL_MIN" envDefault:"2"`
	PoolMax int `env:"DB_POOL_MAX" envDefault:"10"`
}

func (d *DatabaseConfigs) SSLEnabled() bool {
	return d.SSL == "true"
}

func (d *DatabaseConfigs) SSLMode() string {
	if d.SSLEnabled() {
		return "require"
	}

	return "disable"
}

// ConnectionString returns a libpq keyword/value DSN.
func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		quoteDSNValue(d.Host),
		quoteDSNValue(d.Port),
		quoteDSNValue(d.User),
		quoteDSNValue(d.Password),
		quoteDSNValue(d.Database),
		d.SSLMode(),
	)
}

// RedactedConnectionString is ConnectionString without the password.
func (d *DatabaseConfigs) RedactedConnectionString() string {
	redacted := *d
	if redacted.Password != "" {
		redacted.Password = "***"
	}

	return redacted.ConnectionString()
}

type DevelopmentConfigs struct {
	Filename string `toml:"filename"`
}

type MigrationConfigs struct {
	TableName string `toml:"table_name"`
	LockKey   int64  `toml:"lock_key"`
}

// Default returns the configuration obtained with an empty environment and
// no config file.
func Default() Configs {
	cfg := fileDefaults()
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(err)
	}

	return cfg
}

func fileDefaults() Configs {
	return Configs{
		Development: DevelopmentConfigs{
			Filename: "./dev.sqlite3",
		},
		Migration: MigrationConfigs{
			TableName: "schema_migrations",
			LockKey:   4242_0001,
		},
	}
}

// Load reads .env (when present), then the process environment, then the
// optional TOML file at path.
func Load(path string) (Configs, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Configs{}, errorx.Wrap(errorx.InvalidConfig, err, "load .env")
	}

	cfg := fileDefaults()
	if err := env.Parse(&cfg); err != nil {
		return Configs{}, errorx.Wrap(errorx.InvalidConfig, err, "parse env")
	}

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Configs{}, errorx.Wrap(errorx.InvalidConfig, err, "decode %s", path)
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			return Configs{}, errorx.New(errorx.InvalidConfig,
				"unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	if err := cfg.Validate(); err != nil {
		return Configs{}, err
	}

	return cfg, nil
}

func (c Configs) Validate() error {
	if c.Database.PoolMin < 0 || c.Database.PoolMax < 1 || c.Database.PoolMin > c.Database.PoolMax {
		return errorx.New(errorx.InvalidConfig,
			"invalid pool bounds min=%d max=%d", c.Database.PoolMin, c.Database.PoolMax)
	}

	if strings.TrimSpace(c.Development.Filename) == "" {
		return errorx.New(errorx.InvalidConfig, "development filename is required")
	}

	if strings.TrimSpace(c.Migration.TableName) == "" {
		return errorx.New(errorx.InvalidConfig, "migration table name is required")
	}

	return nil
}

func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}

	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func sqliteFileDSN(filename string, params url.Values) string {
	return "file:" + filename + "?" + params.Encode()
}
