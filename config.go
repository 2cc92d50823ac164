package router

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the Router options settable from the environment.
type Config struct {
	RedirectTrailingSlash  bool   `env:"ROUTER_REDIRECT_TRAILING_SLASH" envDefault:"true"`
	RedirectFixedPath      bool   `env:"ROUTER_REDIRECT_FIXED_PATH" envDefault:"true"`
	HandleMethodNotAllowed bool   `env:"ROUTER_HANDLE_METHOD_NOT_ALLOWED" envDefault:"true"`
	HandleOPTIONS          bool   `env:"ROUTER_HANDLE_OPTIONS" envDefault:"true"`
	SaveMatchedRoutePath   bool   `env:"ROUTER_SAVE_MATCHED_ROUTE_PATH" envDefault:"false"`
	LogLevel               string `env:"ROUTER_LOG_LEVEL" envDefault:"disabled"`
}

// DefaultConfig returns the options used by New.
func DefaultConfig() Config {
	return Config{
		RedirectTrailingSlash:  true,
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
		LogLevel:               "disabled",
	}
}

// LoadConfig loads the given dotenv files, if any, and parses the Config from
// the environment. Variables already set in the environment take precedence
// over the files.
func LoadConfig(filenames ...string) (Config, error) {
	if len(filenames) > 0 {
		if err := godotenv.Load(filenames...); err != nil {
			return Config{}, fmt.Errorf("load env files: %w", err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse router config: %w", err)
	}

	return cfg, nil
}

// NewWithConfig returns a new Router configured with cfg, logging to logger
// at cfg.LogLevel.
func NewWithConfig(cfg Config, logger zerolog.Logger) (*Router, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse router log level: %w", err)
	}

	r := New()
	r.RedirectTrailingSlash = cfg.RedirectTrailingSlash
	r.RedirectFixedPath = cfg.RedirectFixedPath
	r.HandleMethodNotAllowed = cfg.HandleMethodNotAllowed
	r.HandleOPTIONS = cfg.HandleOPTIONS
	r.SaveMatchedRoutePath = cfg.SaveMatchedRoutePath
	r.Logger = logger.Level(level)

	return r, nil
}
