package models

import (
	"context"
	"fmt"
	"strings"
)

// Sender delivers a serialized document to the import endpoint and returns
// the decoded response body.
type Sender interface {
	Send(ctx context.Context, documentType string, data map[string]any) (map[string]any, error)
}

// Document is implemented by Organization, PrivatePerson, Sale and Receipt.
type Document interface {
	DocumentType() string
	ToMap() map[string]any
	Validate() error
}

// document holds what every top-level document shares: the meta header,
// the custom data bag and the optional sender.
type document struct {
	record

	documentType string
	meta         *Meta
	sender       Sender
}

func newDocument(documentType string) document {
	d := document{
		record:       newRecord(),
		documentType: documentType,
	}
	d.attachMeta(NewMeta(documentType))
	return d
}

// DocumentType returns the fixed type tag of the document.
func (d *document) DocumentType() string {
	return d.documentType
}

// Meta returns the meta header.
func (d *document) Meta() *Meta {
	return d.meta
}

// attachMeta installs m and forces its document type.
func (d *document) attachMeta(m *Meta) {
	if m == nil {
		m = NewMeta(d.documentType)
	}
	m.setDocumentType(d.documentType)
	if m.SchemaVersion() == "" {
		m.SetSchemaVersion(SchemaVersion)
	}
	d.meta = m
	d.store.SetKey("meta", m.ToMap())
}

// SetImportMode sets meta.import_mode.
func (d *document) SetImportMode(mode string) error {
	return d.meta.SetImportMode(mode)
}

// SetAPIClient attaches the sender used by Submit.
func (d *document) SetAPIClient(s Sender) {
	d.sender = s
}

// APIClient returns the attached sender, if any.
func (d *document) APIClient() Sender {
	return d.sender
}

// CustomField returns one custom_data value, or nil.
func (d *document) CustomField(key string) any {
	return d.customField(key)
}

// CustomData returns custom_data, or nil when it is empty.
func (d *document) CustomData() map[string]any {
	return d.customData()
}

// metaRule converges the meta object of input data, forcing the document
// type.
func (d *document) metaRule() fieldRule {
	return fieldRule{
		Key: "meta",
		Apply: func(v any) error {
			raw, ok := v.(map[string]any)
			if !ok {
				return nil
			}
			return d.applyMeta(raw)
		},
	}
}

// legacyMetaRule also accepts document_type and schema_version at the top
// level and folds them into meta. A nested meta object wins.
func (d *document) legacyMetaRule() nestedRule {
	return nestedRule{
		Key: "meta",
		Flat: []flatField{
			{Legacy: "document_type", Canonical: "document_type"},
			{Legacy: "schema_version", Canonical: "schema_version"},
		},
		Apply: d.applyMeta,
	}
}

func (d *document) applyMeta(raw map[string]any) error {
	m, err := MetaFromMap(raw)
	if err != nil {
		return err
	}
	d.attachMeta(m)
	return nil
}

// submit sends the full nested structure through the attached sender.
func (d *document) submit(ctx context.Context) (map[string]any, error) {
	if d.sender == nil {
		return nil, ErrNoSender
	}
	data := d.ToMap()
	EnsureHeader(data, d.documentType)
	resp, err := d.sender.Send(ctx, d.documentType, data)
	if err != nil {
		return nil, fmt.Errorf("error sending %s data to Ameax: %w", d.documentType, err)
	}
	return resp, nil
}

// FromMap builds the document named by documentType from input data.
func FromMap(documentType string, data map[string]any) (Document, error) {
	var (
		doc Document
		err error
	)
	switch documentType {
	case DocumentTypeOrganization:
		doc, err = nilSafe(OrganizationFromMap(data))
	case DocumentTypePrivatePerson:
		doc, err = nilSafe(PrivatePersonFromMap(data))
	case DocumentTypeSale:
		doc, err = nilSafe(SaleFromMap(data))
	case DocumentTypeReceipt:
		doc, err = nilSafe(ReceiptFromMap(data))
	default:
		return nil, newInvalidArgument("meta.document_type",
			fmt.Sprintf("Document type must be one of: %s, got: %s", strings.Join(DocumentTypes, ", "), documentType), nil)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// nilSafe keeps a typed nil pointer from becoming a non-nil Document.
func nilSafe[D Document](d D, err error) (Document, error) {
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ResolveDocumentType accepts a full document type tag or a short name
// such as "organization", "person", "sale" or "receipt".
func ResolveDocumentType(name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if t, ok := documentTypeAliases[key]; ok {
		return t, nil
	}
	for _, t := range DocumentTypes {
		if key == t {
			return t, nil
		}
	}
	return "", newInvalidArgument("document_type", "unknown document type: "+name, nil)
}

var documentTypeAliases = map[string]string{
	"organization":   DocumentTypeOrganization,
	"org":            DocumentTypeOrganization,
	"private_person": DocumentTypePrivatePerson,
	"person":         DocumentTypePrivatePerson,
	"sale":           DocumentTypeSale,
	"receipt":        DocumentTypeReceipt,
}
