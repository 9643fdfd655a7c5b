package models

import (
	"github.com/ameax/json-import-api-go/pkg/normalize"
)

// Identifiers holds the external keys of a record. Customer numbers are
// permissive here: any scalar is stored as its string form.
type Identifiers struct {
	record
}

// NewIdentifiers returns an empty identifiers block.
func NewIdentifiers() *Identifiers {
	return &Identifiers{record: newRecord()}
}

// IdentifiersFromMap builds Identifiers. Scalar ids are stored as strings.
func IdentifiersFromMap(data map[string]any) (*Identifiers, error) {
	i := NewIdentifiers()
	if err := i.populator().run(data); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *Identifiers) populator() populator {
	return populator{
		Fields: []fieldRule{
			valueRule("customer_number", func(v any) { i.SetCustomerNumber(v) }),
			valueRule("external_id", func(v any) { i.SetExternalID(v) }),
			valueRule("receipt_number", func(v any) { i.SetReceiptNumber(v) }),
			fieldRule{Key: "ameax_internal_id", Apply: func(v any) error {
				return i.SetAmeaxInternalID(v)
			}},
		},
		Passthrough: func(k string, v any) { i.store.SetKey(k, v) },
	}
}

// SetCustomerNumber stores v as a string. Nil or blank removes it.
func (i *Identifiers) SetCustomerNumber(v any) *Identifiers {
	s, _ := normalize.CustomerNumber(v)
	i.setString("customer_number", s)
	return i
}

// SetExternalID stores v as a string. Nil or blank removes it.
func (i *Identifiers) SetExternalID(v any) *Identifiers {
	i.setString("external_id", normalize.Stringify(v))
	return i
}

// SetReceiptNumber stores v as a string. Nil or blank removes it.
func (i *Identifiers) SetReceiptNumber(v any) *Identifiers {
	i.setString("receipt_number", normalize.Stringify(v))
	return i
}

// SetAmeaxInternalID stores the server-side integer id. Nil removes it.
func (i *Identifiers) SetAmeaxInternalID(v any) error {
	if v == nil {
		i.store.Remove("ameax_internal_id")
		return nil
	}
	n, err := toInt(v)
	if err != nil {
		return newInvalidArgument("ameax_internal_id", "ameax_internal_id must be an integer", err)
	}
	i.store.Set("ameax_internal_id", n)
	return nil
}

func (i *Identifiers) CustomerNumber() string { return i.str("customer_number") }
func (i *Identifiers) ExternalID() string     { return i.str("external_id") }
func (i *Identifiers) ReceiptNumber() string  { return i.str("receipt_number") }

// AmeaxInternalID reports the internal id and whether it is set.
func (i *Identifiers) AmeaxInternalID() (int, bool) {
	return i.store.Int("ameax_internal_id")
}
