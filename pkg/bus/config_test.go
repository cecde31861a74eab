package bus

import (
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing broker",
			mutate:  func(c *Config) { c.Broker = "" },
			wantErr: true,
		},
		{
			name:    "negative domain",
			mutate:  func(c *Config) { c.DomainID = -1 },
			wantErr: true,
		},
		{
			name:    "zero connect timeout",
			mutate:  func(c *Config) { c.ConnectTimeout = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DomainID != 0 {
		t.Errorf("DomainID = %d, want 0", cfg.DomainID)
	}
	if cfg.ConnectTimeout != 5*time.Second {
		t.Errorf("ConnectTimeout = %v, want 5s", cfg.ConnectTimeout)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Broker = ""
	if _, err := New(cfg, nil); err == nil {
		t.Error("New() expected error for invalid config")
	}
}

func TestNewGeneratesClientID(t *testing.T) {
	c, err := New(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.cfg.ClientID == "" {
		t.Error("ClientID should be generated when unset")
	}
}
