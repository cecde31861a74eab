// Package config provides configuration for go-d1 commands.
//
// Settings are resolved in order: built-in defaults, then an optional
// YAML file, then D1_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Default configuration values.
const (
	DefaultBroker  = "tcp://localhost:1883"
	DefaultWebPort = "8090"
)

// Config holds the settings shared by the go-d1 commands.
type Config struct {
	// Broker is the pub/sub broker URL, e.g. "tcp://192.168.123.161:1883".
	Broker string `yaml:"broker"`

	// ClientID identifies this controller on the broker.
	// Empty means a random id is generated on connect.
	ClientID string `yaml:"client_id"`

	// DomainID isolates independent arm deployments sharing a network.
	// Default 0.
	DomainID int `yaml:"domain_id"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`

	// LogFile, if set, sends JSON logs to a rotating file.
	LogFile string `yaml:"log_file"`

	// WebPort is the dashboard listen port.
	WebPort string `yaml:"web_port"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Broker:   DefaultBroker,
		LogLevel: "info",
		WebPort:  DefaultWebPort,
	}
}

// Load reads a YAML config file over the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overlays D1_* environment variables onto cfg.
func FromEnv(cfg Config) Config {
	if v := os.Getenv("D1_BROKER"); v != "" {
		cfg.Broker = v
	}
	if v := os.Getenv("D1_CLIENT_ID"); v != "" {
		cfg.ClientID = v
	}
	if v := os.Getenv("D1_DOMAIN"); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id >= 0 {
			cfg.DomainID = id
		}
	}
	if v := os.Getenv("D1_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("D1_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("D1_WEB_PORT"); v != "" {
		cfg.WebPort = v
	}
	return cfg
}

// Resolve loads the config file named by D1_CONFIG (if any) and applies
// environment overrides. This is the entry point used by the commands.
func Resolve() (Config, error) {
	cfg, err := Load(os.Getenv("D1_CONFIG"))
	if err != nil {
		return cfg, err
	}
	return FromEnv(cfg), nil
}
