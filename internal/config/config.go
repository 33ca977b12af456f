// Package config loads charmaker settings from the environment and an optional .env file
package config

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/character-maker/internal/errors"
)

// Store selects the persistence backend
type Store string

// Supported backends
const (
	StoreJSON  Store = "json"
	StoreRedis Store = "redis"
	StoreBolt  Store = "bolt"
)

// Stores lists the supported backends
var Stores = []Store{StoreJSON, StoreRedis, StoreBolt}

// Config holds every setting the command line reads at startup
type Config struct {
	Store    Store  `env:"CHARMAKER_STORE" envDefault:"json"`
	DataFile string `env:"CHARMAKER_DATA_FILE" envDefault:"characters.json"`
	BoltPath string `env:"CHARMAKER_BOLT_PATH" envDefault:"characters.db"`
	RedisURL string `env:"REDIS_URL"`
	RedisKey string `env:"CHARMAKER_REDIS_KEY" envDefault:"charmaker:characters"`
	LogLevel string `env:"CHARMAKER_LOG_LEVEL" envDefault:"warn"`
	AutoSave bool   `env:"CHARMAKER_AUTOSAVE" envDefault:"false"`

	SRDBaseURL  string        `env:"DND5E_API_URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`
	SRDCacheTTL time.Duration `env:"CHARMAKER_SRD_CACHE_TTL" envDefault:"24h"`
	SRDTimeout  time.Duration `env:"CHARMAKER_SRD_TIMEOUT" envDefault:"30s"`
}

// Load reads .env from the working directory when present, then parses the
// process environment. Variables already set win over .env entries.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read .env")
	}
	return parse(env.Options{})
}

// FromMap parses settings from the given variables only
func FromMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	cfg.Store = Store(strings.ToLower(strings.TrimSpace(string(cfg.Store))))
	return &cfg, nil
}

// Validate checks the settings the selected backend depends on
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	stores := make([]string, len(Stores))
	for i, s := range Stores {
		stores[i] = string(s)
	}
	errors.ValidateEnum("CHARMAKER_STORE", string(c.Store), stores, vb)

	switch c.Store {
	case StoreJSON:
		errors.ValidateRequired("CHARMAKER_DATA_FILE", c.DataFile, vb)
	case StoreBolt:
		errors.ValidateRequired("CHARMAKER_BOLT_PATH", c.BoltPath, vb)
	case StoreRedis:
		errors.ValidateRequired("REDIS_URL", c.RedisURL, vb)
		errors.ValidateRequired("CHARMAKER_REDIS_KEY", c.RedisKey, vb)
	}

	if _, err := c.SlogLevel(); err != nil {
		vb.InvalidField("CHARMAKER_LOG_LEVEL", errors.GetMessage(err))
	}
	if c.SRDCacheTTL < 0 {
		vb.Field("CHARMAKER_SRD_CACHE_TTL", "must not be negative")
	}
	if c.SRDTimeout < 0 {
		vb.Field("CHARMAKER_SRD_TIMEOUT", "must not be negative")
	}

	return vb.Build()
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error")
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, errors.InvalidArgumentf("unknown log level %q", c.LogLevel)
	}
	return level, nil
}

// DataPath returns the location the selected file backend uses
func (c *Config) DataPath() string {
	switch c.Store {
	case StoreBolt:
		return c.BoltPath
	case StoreRedis:
		return c.RedisKey
	default:
		return c.DataFile
	}
}

// Environ lists the variables this package reads, for help output
func Environ() []string {
	vars := []string{}
	fields, err := env.GetFieldParams(&Config{})
	if err != nil {
		return vars
	}
	for _, f := range fields {
		vars = append(vars, f.Key)
	}
	return vars
}
