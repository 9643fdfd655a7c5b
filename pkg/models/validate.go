package models

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"
)

// validator accumulates required-field failures for Document.Validate.
type validator struct {
	merr *multierror.Error
}

func (v *validator) required(field string, value any) {
	if err := validation.Validate(value, validation.Required); err != nil {
		v.merr = multierror.Append(v.merr, fmt.Errorf("%s is required", field))
	}
}

func (v *validator) fail(format string, args ...any) {
	v.merr = multierror.Append(v.merr, fmt.Errorf(format, args...))
}

func (v *validator) err() error {
	return NewValidationError(v.merr)
}

// validateMeta checks the header every document must carry.
func (d *document) validateMeta(v *validator) {
	if d.meta.DocumentType() != d.documentType {
		v.fail("meta.document_type must be %s", d.documentType)
	}
	if d.meta.SchemaVersion() == "" {
		v.fail("meta.schema_version is required")
	}
}
