package models

import (
	"github.com/ameax/json-import-api-go/pkg/normalize"
)

// Document type tags.
const (
	DocumentTypeOrganization  = "ameax_organization_account"
	DocumentTypePrivatePerson = "ameax_private_person_account"
	DocumentTypeSale          = "ameax_sale"
	DocumentTypeReceipt       = "ameax_receipt"
)

// SchemaVersion is the import schema version written into every document.
const SchemaVersion = "1.0"

// Import modes.
const (
	ImportModeCreateOrUpdate = "create_or_update"
	ImportModeCreateOnly     = "create_only"
	ImportModeUpdateOnly     = "update_only"
)

var ImportModes = []string{ImportModeCreateOrUpdate, ImportModeCreateOnly, ImportModeUpdateOnly}

// DocumentTypes lists every known document type tag.
var DocumentTypes = []string{
	DocumentTypeOrganization,
	DocumentTypePrivatePerson,
	DocumentTypeSale,
	DocumentTypeReceipt,
}

// Meta is the header of every document.
type Meta struct {
	record
}

// NewMeta returns a Meta for documentType at the current schema version.
func NewMeta(documentType string) *Meta {
	m := &Meta{record: newRecord()}
	m.setDocumentType(documentType)
	m.SetSchemaVersion(SchemaVersion)
	return m
}

// MetaFromMap builds a Meta from input. A missing schema_version defaults
// to SchemaVersion.
func MetaFromMap(data map[string]any) (*Meta, error) {
	m := &Meta{record: newRecord()}
	err := populator{
		Fields: []fieldRule{
			stringRule("document_type", m.setDocumentType),
			stringRule("schema_version", func(s string) { m.SetSchemaVersion(s) }),
			checkedStringRule("import_mode", m.SetImportMode),
			valueRule("import_status", func(v any) {
				if status, ok := v.(map[string]any); ok {
					m.SetImportStatus(status)
				}
			}),
		},
		Passthrough: func(k string, v any) { m.store.SetKey(k, v) },
	}.run(data)
	if err != nil {
		return nil, err
	}
	if m.SchemaVersion() == "" {
		m.SetSchemaVersion(SchemaVersion)
	}
	return m, nil
}

func (m *Meta) setDocumentType(t string) {
	m.setString("document_type", t)
}

// SetSchemaVersion overrides the schema version sent in meta. Blank
// removes it; the default is restored on submit.
func (m *Meta) SetSchemaVersion(v string) *Meta {
	m.setString("schema_version", v)
	return m
}

// SetImportMode sets one of ImportModes. An empty mode removes it.
func (m *Meta) SetImportMode(mode string) error {
	if mode == "" {
		m.store.Remove("import_mode")
		return nil
	}
	if err := checkIn("import_mode", "Import mode", mode, ImportModes); err != nil {
		return err
	}
	m.store.Set("import_mode", mode)
	return nil
}

// SetImportStatus replaces the import_status object. Nil removes it.
func (m *Meta) SetImportStatus(status map[string]any) *Meta {
	if status == nil {
		m.store.Remove("import_status")
		return m
	}
	m.store.SetKey("import_status", status)
	return m
}

func (m *Meta) DocumentType() string  { return m.str("document_type") }
func (m *Meta) SchemaVersion() string { return m.str("schema_version") }
func (m *Meta) ImportMode() string    { return m.str("import_mode") }

// ImportStatus returns the import_status object, or nil.
func (m *Meta) ImportStatus() map[string]any {
	s, _ := m.store.Submap("import_status")
	return s
}

// EnsureHeader sets meta.document_type to documentType and defaults
// meta.schema_version on a raw document map about to be sent.
func EnsureHeader(data map[string]any, documentType string) {
	meta, ok := data["meta"].(map[string]any)
	if !ok {
		meta = map[string]any{}
		data["meta"] = meta
	}
	meta["document_type"] = documentType
	if v := normalize.Stringify(meta["schema_version"]); v == "" {
		meta["schema_version"] = SchemaVersion
	}
}
