// Package config handles configuration loading for the colormap server.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvPort          = "COLORKIT_PORT"
	EnvDefaultSeries = "COLORKIT_DEFAULT_SERIES"
	EnvStrict        = "COLORKIT_STRICT"
)

// Config represents the server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Cache    CacheConfig    `yaml:"cache"`
	Render   RenderConfig   `yaml:"render"`
	Colormap ColormapConfig `yaml:"colormap"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// CacheConfig contains caching settings.
type CacheConfig struct {
	ColorbarSizeMB     int `yaml:"colorbar_size_mb"`
	ColorbarTTLMinutes int `yaml:"colorbar_ttl_minutes"`
	QueryCacheSize     int `yaml:"query_cache_size"`
}

// RenderConfig contains colorbar rendering settings.
type RenderConfig struct {
	ColorbarWidth  int `yaml:"colorbar_width"`
	ColorbarHeight int `yaml:"colorbar_height"`
}

// ColormapConfig contains interpolation settings.
type ColormapConfig struct {
	DefaultSeries string `yaml:"default_series"`
	// Strict rejects malformed raw series instead of interpolating them.
	Strict bool `yaml:"strict"`
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return default config if file doesn't exist
		return DefaultConfig(), nil
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Apply defaults for missing values
	applyDefaults(&cfg)

	return &cfg, nil
}

// LoadWithEnv loads the YAML file, then applies overrides from the process
// environment and, if envFile is set, from that dotenv file. Variables already
// set in the environment win over the file.
func LoadWithEnv(path, envFile string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if envFile != "" {
		if _, statErr := os.Stat(envFile); statErr == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
			}
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			CORSOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Cache: CacheConfig{
			ColorbarSizeMB:     64,
			ColorbarTTLMinutes: 10,
			QueryCacheSize:     1000,
		},
		Render: RenderConfig{
			ColorbarWidth:  256,
			ColorbarHeight: 24,
		},
		Colormap: ColormapConfig{
			DefaultSeries: "rainbow",
		},
	}
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaults.Server.Port
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = defaults.Server.CORSOrigins
	}
	if cfg.Cache.ColorbarSizeMB == 0 {
		cfg.Cache.ColorbarSizeMB = defaults.Cache.ColorbarSizeMB
	}
	if cfg.Cache.ColorbarTTLMinutes == 0 {
		cfg.Cache.ColorbarTTLMinutes = defaults.Cache.ColorbarTTLMinutes
	}
	if cfg.Cache.QueryCacheSize == 0 {
		cfg.Cache.QueryCacheSize = defaults.Cache.QueryCacheSize
	}
	if cfg.Render.ColorbarWidth == 0 {
		cfg.Render.ColorbarWidth = defaults.Render.ColorbarWidth
	}
	if cfg.Render.ColorbarHeight == 0 {
		cfg.Render.ColorbarHeight = defaults.Render.ColorbarHeight
	}
	if cfg.Colormap.DefaultSeries == "" {
		cfg.Colormap.DefaultSeries = defaults.Colormap.DefaultSeries
	}
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("invalid %s %q", EnvPort, v)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv(EnvDefaultSeries); v != "" {
		cfg.Colormap.DefaultSeries = v
	}
	if v := os.Getenv(EnvStrict); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvStrict, v, err)
		}
		cfg.Colormap.Strict = strict
	}
	return nil
}
