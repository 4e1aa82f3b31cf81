package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "PHOTOLICENSE"

type Config struct {
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat  string `envconfig:"LOG_FORMAT" default:"json"`
	LogFile    string `envconfig:"LOG_FILE"`
	SeedSample bool   `envconfig:"SEED_SAMPLE" default:"true"`
	Glyphs     string `envconfig:"GLYPHS" default:"unicode"`
	Theme      string `envconfig:"THEME" default:"auto"`
	Format     string `envconfig:"FORMAT" default:"json"`
}

// Load reads PHOTOLICENSE_* variables, after merging an optional .env file in
// the working directory. Variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("%s_LOG_FORMAT: unknown format %q", EnvPrefix, c.LogFormat)
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case "json", "edn":
	default:
		return fmt.Errorf("%s_FORMAT: unknown format %q", EnvPrefix, c.Format)
	}
	c.Glyphs = strings.ToLower(strings.TrimSpace(c.Glyphs))
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	return nil
}
