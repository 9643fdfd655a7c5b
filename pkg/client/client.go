// Package client delivers import documents to the Ameax REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/ameax/json-import-api-go/internal/version"
	"github.com/ameax/json-import-api-go/pkg/models"
	"github.com/ameax/json-import-api-go/pkg/schema"
)

// Client posts documents to {host}/rest-api/imports.
type Client struct {
	config  *Config
	client  *http.Client
	log     hclog.Logger
	schemas *schema.Validator
}

var _ models.Sender = (*Client)(nil)

// New returns a Client for a copy of cfg. Unset timeout and TLS settings
// are taken from DefaultConfig; cfg itself is left unchanged.
func New(in *Config) (*Client, error) {
	if in == nil {
		return nil, fmt.Errorf("config is required")
	}
	cfg := new(Config)
	*cfg = *in
	defaults := DefaultConfig()
	if cfg.TLSVerify == nil {
		cfg.TLSVerify = defaults.TLSVerify
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.Timeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	c := &Client{
		config: cfg,
		client: cfg.HTTPClient,
		log:    cfg.Logger,
	}
	if c.client == nil {
		c.client = cfg.NewHTTPClient()
	}
	if c.log == nil {
		c.log = hclog.NewNullLogger()
	}
	if cfg.SchemasPath != "" {
		c.schemas = schema.NewValidator(cfg.Fs)
	}
	return c, nil
}

// Config returns the client configuration.
func (c *Client) Config() *Config {
	return c.config
}

// Send posts data as a document of documentType and returns the decoded
// response body. The meta header is completed on a copy of data; the
// caller's map is not modified. When a schemas path is configured the
// payload is validated first and a *models.ValidationError is returned
// without contacting the server.
func (c *Client) Send(ctx context.Context, documentType string, data map[string]any) (map[string]any, error) {
	if !slices.Contains(models.DocumentTypes, documentType) {
		return nil, fmt.Errorf("unknown document type: %q", documentType)
	}

	payload := withHeader(data, documentType)

	if c.schemas != nil {
		schemaPath := schema.PathFor(c.config.SchemasPath, documentType)
		if err := c.schemas.Validate(payload, schemaPath); err != nil {
			c.log.Warn("document failed schema validation", "document_type", documentType, "schema", schemaPath)
			return nil, err
		}
	}

	op := "send " + documentType

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.ImportsURL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	c.log.Debug("sending document", "document_type", documentType, "url", req.URL.String(), "bytes", len(body))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Operation: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Operation: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("import request failed", "document_type", documentType, "status", resp.StatusCode)
		return nil, &TransportError{
			Operation:  op,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
			Err:        apiError(respBody),
		}
	}

	result := map[string]any{}
	if len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, &result); err != nil {
			return nil, &TransportError{
				Operation:  op,
				StatusCode: resp.StatusCode,
				Body:       string(respBody),
				Err:        fmt.Errorf("failed to decode response: %w", err),
			}
		}
	}

	c.log.Info("document sent", "document_type", documentType, "status", resp.StatusCode)
	return result, nil
}

// SendDocument sends a built document without attaching the client to it.
func (c *Client) SendDocument(ctx context.Context, doc models.Document) (map[string]any, error) {
	return c.Send(ctx, doc.DocumentType(), doc.ToMap())
}

// withHeader returns a shallow copy of data whose meta carries
// documentType and a schema version.
func withHeader(data map[string]any, documentType string) map[string]any {
	out := make(map[string]any, len(data)+1)
	for k, v := range data {
		out[k] = v
	}
	meta := map[string]any{}
	if m, ok := data["meta"].(map[string]any); ok {
		for k, v := range m {
			meta[k] = v
		}
	}
	out["meta"] = meta
	models.EnsureHeader(out, documentType)
	return out
}

// apiError extracts the server's error message from a JSON error body.
func apiError(body []byte) error {
	var apiErr struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return nil
	}
	switch {
	case apiErr.Message != "":
		return errors.New(apiErr.Message)
	case apiErr.Error != "":
		return errors.New(apiErr.Error)
	}
	return nil
}
