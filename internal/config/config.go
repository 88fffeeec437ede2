// Package config loads CLI defaults from the environment and an optional
// config file.
//
// Sources, in ascending priority: built-in defaults, then
// $XDG_CONFIG_HOME/catlink/config.yaml (or the platform equivalent), then
// CATLINK_* environment variables. A .env file in the working directory
// is loaded first, best-effort.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the CLI defaults.
type Config struct {
	// Region is the default --region value ("auto" or a region name).
	Region string
	// Language is sent to the vendor API in the language header.
	Language string
	// Timeout bounds each HTTP request.
	Timeout time.Duration
	// Verify enables TLS certificate verification.
	Verify bool
}

// Load reads configuration from all sources.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("region", "auto")
	v.SetDefault("language", "en_GB")
	v.SetDefault("timeout", "60s")
	v.SetDefault("verify", true)

	v.SetEnvPrefix("CATLINK")
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "catlink"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Region:   v.GetString("region"),
		Language: v.GetString("language"),
		Timeout:  v.GetDuration("timeout"),
		Verify:   v.GetBool("verify"),
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return cfg, nil
}
