package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Settc/liftscript/internal/logging"
)

type Config struct {
	Units         string       `yaml:"units"`
	Share         ShareConfig  `yaml:"share"`
	Server        ServerConfig `yaml:"server"`
	Notifications bool         `yaml:"notifications"`
	Log           LogConfig    `yaml:"log"`
}

type ShareConfig struct {
	// URL of a remote share server. Empty means shares are kept in the local database.
	URL string `yaml:"url"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Addr returns host:port for the share server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Units:         "lbs",
		Server:        ServerConfig{Host: "127.0.0.1", Port: 8787},
		Notifications: true,
		Log:           LogConfig{Level: "info"},
	}
}

// Load reads config from a YAML file over the defaults, then applies
// environment variable overrides. A missing file is not an error.
// Env vars use the prefix LIFTSCRIPT_:
//
//	LIFTSCRIPT_UNITS, LIFTSCRIPT_SHARE_URL,
//	LIFTSCRIPT_SERVER_HOST, LIFTSCRIPT_SERVER_PORT,
//	LIFTSCRIPT_NOTIFICATIONS, LIFTSCRIPT_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFTSCRIPT_UNITS"); v != "" {
		cfg.Units = v
	}
	if v := os.Getenv("LIFTSCRIPT_SHARE_URL"); v != "" {
		cfg.Share.URL = v
	}
	if v := os.Getenv("LIFTSCRIPT_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("LIFTSCRIPT_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LIFTSCRIPT_NOTIFICATIONS"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			cfg.Notifications = on
		}
	}
	if v := os.Getenv("LIFTSCRIPT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func (c *Config) validate() error {
	c.Units = strings.ToLower(strings.TrimSpace(c.Units))
	if c.Units != "lbs" && c.Units != "kg" {
		return fmt.Errorf("units must be lbs or kg, got %q", c.Units)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
