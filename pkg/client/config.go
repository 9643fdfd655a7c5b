package client

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// DefaultHost is used when no host is configured.
const DefaultHost = "https://your-database.ameax.de"

// Config contains configuration for the import client.
//
// Example configuration (HCL):
//
//	api_key      = "..."
//	host         = "https://your-database.ameax.de"
//	schemas_path = "./schemas"
//	timeout      = "30s"
//	tls_verify   = true
type Config struct {
	// Host is the base URL of the Ameax instance, without the /rest-api
	// suffix.
	Host string `hcl:"host,optional" json:"host"`

	// APIKey is sent as a bearer token.
	APIKey string `hcl:"api_key" json:"-"`

	// SchemasPath, when set, enables JSON Schema validation before each
	// send. The file for a document is <SchemasPath>/<document_type>.json.
	SchemasPath string `hcl:"schemas_path,optional" json:"schemasPath,omitempty"`

	// TLSVerify controls TLS certificate verification.
	TLSVerify *bool `hcl:"tls_verify,optional" json:"tlsVerify,omitempty"`

	// Timeout for a single import request.
	Timeout time.Duration `json:"timeout,omitempty"`

	// Logger receives request and response events. The API key is never
	// logged.
	Logger hclog.Logger `json:"-"`

	// Fs is the filesystem schema files are read from. Defaults to the OS
	// filesystem.
	Fs afero.Fs `json:"-"`

	// HTTPClient overrides the client built by NewHTTPClient.
	HTTPClient *http.Client `json:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		Host:      DefaultHost,
		TLSVerify: &tlsVerify,
		Timeout:   30 * time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}

	parsedURL, err := url.Parse(c.Host)
	if err != nil {
		return fmt.Errorf("invalid host: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("host must use http or https scheme, got: %s", parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("host must include a hostname, got: %s", c.Host)
	}

	if c.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %v", c.Timeout)
	}

	return nil
}

// ImportsURL returns the import endpoint for the configured host.
func (c *Config) ImportsURL() string {
	return strings.TrimRight(c.Host, "/") + "/rest-api/imports"
}

// NewHTTPClient creates a configured HTTP client.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
