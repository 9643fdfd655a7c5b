// Package config loads the ameax-import configuration from an HCL file and
// the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/ameax/json-import-api-go/pkg/client"
)

// Environment variables that override file values.
const (
	EnvAPIKey      = "AMEAX_API_KEY"
	EnvHost        = "AMEAX_API_HOST"
	EnvSchemasPath = "AMEAX_SCHEMAS_PATH"
)

// Config is the decoded configuration file.
//
// Example:
//
//	api_key      = "..."
//	host         = "https://your-database.ameax.de"
//	schemas_path = "./schemas"
//	timeout      = "30s"
//	tls_verify   = true
//	log_level    = "info"
type Config struct {
	APIKey      string `hcl:"api_key,optional"`
	Host        string `hcl:"host,optional"`
	SchemasPath string `hcl:"schemas_path,optional"`
	Timeout     string `hcl:"timeout,optional"`
	TLSVerify   *bool  `hcl:"tls_verify,optional"`
	LogLevel    string `hcl:"log_level,optional"`
}

// Load reads path from the OS filesystem. An empty path yields a
// configuration built from defaults and the environment only.
func Load(path string) (*Config, error) {
	return LoadFile(afero.NewOsFs(), path)
}

// LoadFile reads path from fs, applies environment overrides, then
// defaults.
func LoadFile(fs afero.Fs, path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		src, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := hclsimple.Decode(path, src, nil, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	applyEnv(cfg, os.LookupEnv)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAPIKey); ok && v != "" {
		cfg.APIKey = v
	}
	if v, ok := lookup(EnvHost); ok && v != "" {
		cfg.Host = v
	}
	if v, ok := lookup(EnvSchemasPath); ok && v != "" {
		cfg.SchemasPath = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Host == "" {
		cfg.Host = client.DefaultHost
	}
	if cfg.Timeout == "" {
		cfg.Timeout = "30s"
	}
	if cfg.TLSVerify == nil {
		tlsVerify := true
		cfg.TLSVerify = &tlsVerify
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// Validate checks values that can be checked without a client.
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}

// ClientConfig converts c into a client configuration.
func (c *Config) ClientConfig(log hclog.Logger, fs afero.Fs) (*client.Config, error) {
	timeout, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return &client.Config{
		Host:        c.Host,
		APIKey:      c.APIKey,
		SchemasPath: c.SchemasPath,
		TLSVerify:   c.TLSVerify,
		Timeout:     timeout,
		Logger:      log,
		Fs:          fs,
	}, nil
}
