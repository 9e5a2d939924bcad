package server

import (
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/mtruel/pikomino/internal/policy"
)

// Config is the complete server configuration.
type Config struct {
	Server   Settings        `hcl:"server,block"`
	Sessions []SessionConfig `hcl:"session,block"`
}

// Settings contains server-level configuration.
type Settings struct {
	Address            string `hcl:"address,optional"`
	Port               int    `hcl:"port,optional"`
	LogLevel           string `hcl:"log_level,optional"`
	LogFormat          string `hcl:"log_format,optional"` // console or json
	TurnTimeoutSeconds int    `hcl:"turn_timeout_seconds,optional"`
	Seed               int64  `hcl:"seed,optional"`
}

// SessionConfig pre-declares a session started at boot.
type SessionConfig struct {
	Name    string         `hcl:"name,label"`
	Players []PlayerConfig `hcl:"player,block"`
}

// PlayerConfig seats one player in a pre-declared session.
type PlayerConfig struct {
	Name   string `hcl:"name,label"`
	Policy string `hcl:"policy,optional"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Server: Settings{
			Address:            "localhost",
			Port:               8080,
			LogLevel:           "info",
			LogFormat:          "console",
			TurnTimeoutSeconds: 30,
		},
	}
}

// LoadConfig reads HCL configuration from filename. A missing file yields
// the defaults rather than an error.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig().Server
	if config.Server.Address == "" {
		config.Server.Address = defaults.Address
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaults.Port
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = defaults.LogLevel
	}
	if config.Server.LogFormat == "" {
		config.Server.LogFormat = defaults.LogFormat
	}
	if config.Server.TurnTimeoutSeconds == 0 {
		config.Server.TurnTimeoutSeconds = defaults.TurnTimeoutSeconds
	}

	return &config, nil
}

// Validate rejects configurations the server cannot honor.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.LogFormat != "console" && c.Server.LogFormat != "json" {
		return fmt.Errorf("invalid log_format %q: want console or json", c.Server.LogFormat)
	}
	if c.Server.TurnTimeoutSeconds < 1 {
		return fmt.Errorf("turn_timeout_seconds must be positive")
	}

	valid := append(policy.Names(), "remote")
	for _, sess := range c.Sessions {
		if len(sess.Players) == 0 {
			return fmt.Errorf("session %s: at least one player required", sess.Name)
		}
		for _, p := range sess.Players {
			if p.Policy != "" && !slices.Contains(valid, p.Policy) {
				return fmt.Errorf("session %s: player %s: invalid policy %q", sess.Name, p.Name, p.Policy)
			}
		}
	}
	return nil
}

// ListenAddress returns the host:port the server binds to.
func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
