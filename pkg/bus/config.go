// Package bus provides the topic-based pub/sub transport used to talk to
// the D1 arm firmware.
//
// This package handles:
//   - Broker session management with automatic reconnection
//   - Command publishing
//   - Telemetry subscription
//   - Domain-based topic isolation for multi-arm networks
package bus

import (
	"fmt"
	"time"
)

// Config holds bus client configuration.
type Config struct {
	// Broker is the broker URL.
	// Examples: "tcp://localhost:1883", "tcp://192.168.123.161:1883"
	Broker string `yaml:"broker" json:"broker"`

	// ClientID identifies this client on the broker.
	// Empty means a random id is generated.
	ClientID string `yaml:"client_id" json:"client_id"`

	// DomainID isolates independent arm deployments sharing a network
	// segment. Domain 0 (the default) uses the bare firmware topic names.
	DomainID int `yaml:"domain_id" json:"domain_id"`

	// ConnectTimeout bounds how long a single connect attempt may take.
	ConnectTimeout time.Duration `yaml:"connect_timeout" json:"connect_timeout"`

	// ReconnectInterval is how often to attempt reconnection on failure.
	ReconnectInterval time.Duration `yaml:"reconnect_interval" json:"reconnect_interval"`

	// MaxReconnectAttempts is the maximum number of reconnection attempts.
	// 0 means unlimited.
	MaxReconnectAttempts int `yaml:"max_reconnect_attempts" json:"max_reconnect_attempts"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Broker:               "tcp://localhost:1883",
		DomainID:             0,
		ConnectTimeout:       5 * time.Second,
		ReconnectInterval:    2 * time.Second,
		MaxReconnectAttempts: 0, // Unlimited
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Broker == "" {
		return fmt.Errorf("broker is required")
	}
	if c.DomainID < 0 {
		return fmt.Errorf("domain id must be >= 0, got %d", c.DomainID)
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("connect timeout must be positive")
	}
	return nil
}
