// Package config loads profiledesk settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const DefaultIdentifier = "com.iwat.profiledesk"

// Config holds settings that flags may override
type Config struct {
	// DataDir replaces the platform application data directory when set
	DataDir    string `env:"PROFILEDESK_DATA_DIR"`
	Identifier string `env:"PROFILEDESK_IDENTIFIER" envDefault:"com.iwat.profiledesk"`
	LogLevel   string `env:"PROFILEDESK_LOG_LEVEL" envDefault:"warn"`
	NoColor    string `env:"NO_COLOR"`
}

// ColorDisabled follows the NO_COLOR convention: any non-empty value disables color
func (c Config) ColorDisabled() bool {
	return c.NoColor != ""
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
