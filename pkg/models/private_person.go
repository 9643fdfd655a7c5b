package models

import (
	"context"
	"strings"

	"github.com/ameax/json-import-api-go/pkg/normalize"
)

// PrivatePerson is an ameax_private_person_account document.
type PrivatePerson struct {
	party

	derivedHonorifics string
}

// NewPrivatePerson returns a person with meta set and no other fields.
func NewPrivatePerson() *PrivatePerson {
	return &PrivatePerson{party: newParty(DocumentTypePrivatePerson)}
}

// PrivatePersonFromMap builds a PrivatePerson from nested or legacy flat
// input. Top-level document_type and schema_version are folded into meta;
// the document type in meta is always forced.
func PrivatePersonFromMap(data map[string]any) (*PrivatePerson, error) {
	p := NewPrivatePerson()
	err := populator{
		Fields: []fieldRule{
			stringRule("salutation", func(s string) { p.SetSalutation(s) }),
			stringRule("honorifics", func(s string) { p.SetHonorifics(s) }),
			stringRule("firstname", func(s string) { p.SetFirstName(s) }, "first_name"),
			stringRule("lastname", func(s string) { p.SetLastName(s) }, "last_name"),
			valueRule("date_of_birth", func(v any) { p.SetDateOfBirth(v) }),
			customDataRule(func(m map[string]any) { p.SetCustomData(m) }),
		},
		Nested:      append(p.partyRules(), p.legacyMetaRule()),
		Passthrough: func(k string, v any) { p.store.SetKey(k, v) },
	}.run(data)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SetSalutation normalizes s; text after a recognized title goes to
// honorifics and is replaced on the next call. Blank input removes the
// salutation.
func (p *PrivatePerson) SetSalutation(s string) *PrivatePerson {
	p.setSalutation(s, &p.derivedHonorifics)
	return p
}

// SetHonorifics sets titles such as "Dr."; later SetSalutation calls keep
// them.
func (p *PrivatePerson) SetHonorifics(s string) *PrivatePerson {
	p.setString("honorifics", strings.TrimSpace(s))
	p.derivedHonorifics = ""
	return p
}

// SetFirstName stores the trimmed name. Blank removes it.
func (p *PrivatePerson) SetFirstName(s string) *PrivatePerson {
	p.setString("firstname", strings.TrimSpace(s))
	return p
}

// SetLastName stores the trimmed name. Blank removes it.
func (p *PrivatePerson) SetLastName(s string) *PrivatePerson {
	p.setString("lastname", strings.TrimSpace(s))
	return p
}

// SetDateOfBirth accepts a time.Time or a date string. Unparseable strings
// are stored unchanged.
func (p *PrivatePerson) SetDateOfBirth(v any) *PrivatePerson {
	d, _ := normalize.Date(v)
	p.setString("date_of_birth", d)
	return p
}

func (p *PrivatePerson) Salutation() string  { return p.str("salutation") }
func (p *PrivatePerson) Honorifics() string  { return p.str("honorifics") }
func (p *PrivatePerson) FirstName() string   { return p.str("firstname") }
func (p *PrivatePerson) LastName() string    { return p.str("lastname") }
func (p *PrivatePerson) DateOfBirth() string { return p.str("date_of_birth") }

// CreateAddress attaches a new address with the required fields.
func (p *PrivatePerson) CreateAddress(postalCode, locality, country string) *PrivatePerson {
	p.setAddress(NewAddressWith(postalCode, locality, country))
	return p
}

// SetAddress replaces the address. Nil removes it.
func (p *PrivatePerson) SetAddress(a *Address) *PrivatePerson {
	p.setAddress(a)
	return p
}

// SetPostalCode and the other address setters fail until an address exists.
func (p *PrivatePerson) SetPostalCode(v string) error {
	return p.addressField("postal code", func(a *Address) { a.SetPostalCode(v) })
}

func (p *PrivatePerson) SetLocality(v string) error {
	return p.addressField("locality", func(a *Address) { a.SetLocality(v) })
}

func (p *PrivatePerson) SetCountry(v string) error {
	return p.addressField("country", func(a *Address) { a.SetCountry(v) })
}

func (p *PrivatePerson) SetRoute(v string) error {
	return p.addressField("route", func(a *Address) { a.SetRoute(v) })
}

func (p *PrivatePerson) SetStreet(v string) error {
	return p.addressField("street", func(a *Address) { a.SetStreet(v) })
}

func (p *PrivatePerson) SetHouseNumber(v string) error {
	return p.addressField("house number", func(a *Address) { a.SetHouseNumber(v) })
}

// CreateIdentifiers replaces the identifiers block.
func (p *PrivatePerson) CreateIdentifiers(customerNumber, externalID any) *PrivatePerson {
	p.setIdentifiers(NewIdentifiers().SetCustomerNumber(customerNumber).SetExternalID(externalID))
	return p
}

// SetIdentifiers replaces the identifiers block. Nil removes it.
func (p *PrivatePerson) SetIdentifiers(ids *Identifiers) *PrivatePerson {
	p.setIdentifiers(ids)
	return p
}

// SetCustomerNumber stores any scalar as a string in identifiers.
func (p *PrivatePerson) SetCustomerNumber(v any) *PrivatePerson {
	p.setCustomerNumber(v)
	return p
}

func (p *PrivatePerson) SetExternalID(v any) *PrivatePerson {
	p.setExternalID(v)
	return p
}

// CreateCommunications replaces the communications block.
func (p *PrivatePerson) CreateCommunications(email, phone, mobile, fax string) *PrivatePerson {
	p.setCommunications(NewCommunications().
		SetEmail(email).
		SetPhoneNumber(phone).
		SetMobilePhone(mobile).
		SetFax(fax))
	return p
}

func (p *PrivatePerson) SetCommunications(c *Communications) *PrivatePerson {
	p.setCommunications(c)
	return p
}

// SetEmail and the phone setters create communications on first
// non-empty use.
func (p *PrivatePerson) SetEmail(v string) *PrivatePerson {
	p.withCommunications(v, func(c *Communications) { c.SetEmail(v) })
	return p
}

func (p *PrivatePerson) SetPhone(v string) *PrivatePerson {
	p.withCommunications(v, func(c *Communications) { c.SetPhoneNumber(v) })
	return p
}

func (p *PrivatePerson) SetPhone2(v string) *PrivatePerson {
	p.withCommunications(v, func(c *Communications) { c.SetPhoneNumber2(v) })
	return p
}

func (p *PrivatePerson) SetMobilePhone(v string) *PrivatePerson {
	p.withCommunications(v, func(c *Communications) { c.SetMobilePhone(v) })
	return p
}

func (p *PrivatePerson) SetFax(v string) *PrivatePerson {
	p.withCommunications(v, func(c *Communications) { c.SetFax(v) })
	return p
}

// CreateAgent replaces the agent with one holding externalID.
func (p *PrivatePerson) CreateAgent(externalID any) *PrivatePerson {
	p.setAgent(NewAgent().SetExternalID(externalID))
	return p
}

// SetAgent replaces the agent. Nil removes it.
func (p *PrivatePerson) SetAgent(a *Agent) *PrivatePerson {
	p.setAgent(a)
	return p
}

func (p *PrivatePerson) SetAgentExternalID(v any) *PrivatePerson {
	p.setAgentExternalID(v)
	return p
}

// SetCustomField stores a coerced custom_data value. Nil removes it.
func (p *PrivatePerson) SetCustomField(key string, value any) *PrivatePerson {
	p.setCustomField(key, value)
	return p
}

// SetCustomData merges data into custom_data unchanged.
func (p *PrivatePerson) SetCustomData(data map[string]any) *PrivatePerson {
	p.setCustomData(data)
	return p
}

// Validate checks the fields the import endpoint requires.
func (p *PrivatePerson) Validate() error {
	v := &validator{}
	p.validateMeta(v)
	v.required("firstname", p.FirstName())
	v.required("lastname", p.LastName())
	p.validateAddress(v)
	if dob := p.DateOfBirth(); dob != "" && !normalize.IsDate(dob) {
		v.fail("date_of_birth must be in format YYYY-MM-DD")
	}
	return v.err()
}

// Submit posts p through the client set with SetAPIClient.
func (p *PrivatePerson) Submit(ctx context.Context) (map[string]any, error) {
	return p.submit(ctx)
}
