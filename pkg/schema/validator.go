// Package schema validates import documents against JSON Schema files.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"

	"github.com/ameax/json-import-api-go/pkg/models"
)

// Validator compiles schema files from a filesystem and caches them by
// path.
type Validator struct {
	fs afero.Fs

	mu      sync.Mutex
	schemas map[string]*jsonschema.Schema
}

// NewValidator returns a Validator reading schema files from fs. A nil fs
// means the OS filesystem.
func NewValidator(fs afero.Fs) *Validator {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Validator{
		fs:      fs,
		schemas: map[string]*jsonschema.Schema{},
	}
}

// PathFor returns the schema file for a document type inside dir.
func PathFor(dir, documentType string) string {
	return filepath.Join(dir, documentType+".json")
}

// Validate checks data against the schema at schemaPath. Violations are
// returned as a *models.ValidationError with one message per failing
// location; failures to load or compile the schema are returned as plain
// errors.
func (v *Validator) Validate(data map[string]any, schemaPath string) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return v.ValidateJSON(raw, schemaPath)
}

// ValidateJSON is Validate for an already encoded document.
func (v *Validator) ValidateJSON(raw []byte, schemaPath string) error {
	sch, err := v.compile(schemaPath)
	if err != nil {
		return err
	}

	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	err = sch.Validate(doc)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("failed to validate document: %w", err)
	}
	return &models.ValidationError{Errors: messages(verr)}
}

func (v *Validator) compile(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if sch, ok := v.schemas[schemaPath]; ok {
		return sch, nil
	}

	raw, err := afero.ReadFile(v.fs, schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", schemaPath, err)
	}

	c := jsonschema.NewCompiler()
	c.LoadURL = v.loadURL

	id := fileURL(schemaPath)
	if err := c.AddResource(id, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", schemaPath, err)
	}
	sch, err := c.Compile(id)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", schemaPath, err)
	}
	v.schemas[schemaPath] = sch
	return sch, nil
}

// loadURL resolves file:// references, including relative $refs between
// schema files, through the validator's filesystem.
func (v *Validator) loadURL(s string) (io.ReadCloser, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "file" {
		return nil, fmt.Errorf("unsupported schema URL scheme %q", u.Scheme)
	}
	p := filepath.FromSlash(u.Path)
	if ok, _ := afero.Exists(v.fs, p); !ok {
		// Relative schema paths are rooted at "/" in their URL.
		p = strings.TrimPrefix(p, string(filepath.Separator))
	}
	return v.fs.Open(p)
}

func fileURL(p string) string {
	abs := filepath.ToSlash(p)
	if !path.IsAbs(abs) {
		abs = "/" + abs
	}
	return (&url.URL{Scheme: "file", Path: abs}).String()
}

// messages flattens the leaf causes of verr into "[property] message"
// strings, sorted for stable output.
func messages(verr *jsonschema.ValidationError) []string {
	var out []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			out = append(out, format(e.InstanceLocation, e.Message))
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(verr)
	sort.Strings(out)
	return out
}

func format(instanceLocation, message string) string {
	prop := strings.ReplaceAll(strings.TrimPrefix(instanceLocation, "/"), "/", ".")
	if prop == "" {
		return message
	}
	return "[" + prop + "] " + message
}
