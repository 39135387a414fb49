package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/abgdnv/storekeeper/pkg/config"
	"github.com/abgdnv/storekeeper/pkg/config/configloader"
)

// ServiceName is the prefix of every environment variable read by the config loader.
const ServiceName = "storekeeper"

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	Auth       AuthConfig            `koanf:"auth"`
	Reports    ReportsConfig         `koanf:"reports"`
	HTTPServer config.HTTPConfig     `koanf:"server"`
	Log        config.LogConfig      `koanf:"log"`
	Shutdown   config.ShutdownConfig `koanf:"shutdown"`
	PProf      config.PProfConfig    `koanf:"pprof"`
}

// AuthConfig holds the shared secret that unlocks the menu.
type AuthConfig struct {
	Secret string `koanf:"secret"`
}

// ReportsConfig switches the read-only HTTP report endpoint on or off.
type ReportsConfig struct {
	Enabled bool `koanf:"enabled"`
}

// Defaults returns the values used when neither config.yaml nor the environment set a key.
func Defaults() map[string]any {
	return map[string]any{
		"auth.secret":               "123",
		"reports.enabled":           false,
		"server.host":               "127.0.0.1",
		"server.port":               8080,
		"server.maxHeaderBytes":     1 << 20,
		"server.timeout.read":       5 * time.Second,
		"server.timeout.write":      10 * time.Second,
		"server.timeout.idle":       60 * time.Second,
		"server.timeout.readHeader": 2 * time.Second,
		"log.level":                 "warn",
		"shutdown.timeout":          5 * time.Second,
		"pprof.enabled":             false,
		"pprof.addr":                "127.0.0.1:6060",
	}
}

// Load reads the storekeeper configuration.
func Load() (*Config, error) {
	return configloader.Load[*Config](ServiceName, Defaults())
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Auth ---\n")
	b.WriteString(fmt.Sprintf("  auth.secret: %s\n", maskSecret(c.Auth.Secret)))

	b.WriteString("\n--- Reports ---\n")
	b.WriteString(fmt.Sprintf("  reports.enabled: %t\n", c.Reports.Enabled))
	if c.Reports.Enabled {
		b.WriteString(c.HTTPServer.String())
	}

	b.WriteString(c.Log.String())
	b.WriteString(c.Shutdown.String())
	b.WriteString(c.PProf.String())

	return b.String()
}

func maskSecret(secret string) string {
	if secret == "" {
		return "<not configured>"
	}
	return "****"
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.Secret) == "" {
		return fmt.Errorf("auth secret is not configured")
	}
	if c.Auth.Secret != strings.TrimSpace(c.Auth.Secret) {
		return fmt.Errorf("auth secret must not start or end with whitespace")
	}
	if c.Reports.Enabled {
		if err := c.HTTPServer.Validate(); err != nil {
			return err
		}
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Shutdown.Validate(); err != nil {
		return err
	}
	if err := c.PProf.Validate(); err != nil {
		return err
	}
	return nil
}
