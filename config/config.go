// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Player   PlayerConfig   `mapstructure:"player"`
	Database DatabaseConfig `mapstructure:"database"`
	UI       UIConfig       `mapstructure:"ui"`
}

// APIConfig holds music service settings.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// PlayerConfig holds mpv settings.
type PlayerConfig struct {
	SocketPath string `mapstructure:"socket_path"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// TickMS is the controller tick interval in milliseconds.
	TickMS int `mapstructure:"tick_ms"`
}

// Load reads configuration from file and env. Env var overrides use prefix CLOUDTUNE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "https://music.example.com")
	v.SetDefault("player.socket_path", "/tmp/cloudtune-mpv.sock")
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "cloudtune", "cloudtune.db"))
	v.SetDefault("ui.tick_ms", 100)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CLOUDTUNE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "cloudtune"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CLOUDTUNE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
