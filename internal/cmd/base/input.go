package base

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/ameax/json-import-api-go/pkg/models"
)

// ReadDocument decodes a JSON or YAML document from path. YAML is chosen
// by the .yaml and .yml extensions.
func (c *Command) ReadDocument(path string) (map[string]any, error) {
	raw, err := afero.ReadFile(c.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	data := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &data)
	default:
		err = json.Unmarshal(raw, &data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return data, nil
}

type inputHeader struct {
	Meta struct {
		DocumentType string `mapstructure:"document_type"`
	} `mapstructure:"meta"`
}

// DocumentType resolves the document type from flagValue, falling back to
// meta.document_type in data.
func DocumentType(flagValue string, data map[string]any) (string, error) {
	if flagValue != "" {
		return models.ResolveDocumentType(flagValue)
	}

	var h inputHeader
	if err := mapstructure.WeakDecode(data, &h); err != nil {
		return "", fmt.Errorf("failed to read meta header: %w", err)
	}
	if h.Meta.DocumentType == "" {
		return "", fmt.Errorf("document type is required: use -type or set meta.document_type")
	}
	return models.ResolveDocumentType(h.Meta.DocumentType)
}

// LoadDocument reads path and builds the document it describes.
func (c *Command) LoadDocument(path, typeFlag string) (models.Document, error) {
	data, err := c.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	docType, err := DocumentType(typeFlag, data)
	if err != nil {
		return nil, err
	}
	return models.FromMap(docType, data)
}

// PrintJSON writes v to the UI as indented JSON.
func (c *Command) PrintJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	c.UI.Output(string(out))
	return nil
}
