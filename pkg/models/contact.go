package models

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/ameax/json-import-api-go/pkg/normalize"
)

// Contact is a person attached to an organization.
type Contact struct {
	record

	identifiers    *Identifiers
	employment     *Employment
	communications *Communications

	derivedHonorifics string
}

// NewContact returns an empty contact for use with Organization.AddContactObject.
func NewContact() *Contact {
	return &Contact{record: newRecord()}
}

// ContactFromMap builds a Contact. Besides the nested form it accepts
// first_name/last_name, flat job_title/department and flat
// email/phone/mobile/fax keys.
func ContactFromMap(data map[string]any) (*Contact, error) {
	c := NewContact()
	if err := c.populator().run(data); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Contact) populator() populator {
	return populator{
		Fields: []fieldRule{
			stringRule("salutation", func(s string) { c.SetSalutation(s) }),
			stringRule("honorifics", func(s string) { c.SetHonorifics(s) }),
			stringRule("firstname", func(s string) { c.SetFirstName(s) }, "first_name"),
			stringRule("lastname", func(s string) { c.SetLastName(s) }, "last_name"),
			valueRule("date_of_birth", func(v any) { c.SetDateOfBirth(v) }),
			customDataRule(func(m map[string]any) { c.SetCustomData(m) }),
		},
		Nested: []nestedRule{
			{
				Key:  "identifiers",
				Flat: []flatField{{Legacy: "external_id", Canonical: "external_id"}},
				Apply: func(m map[string]any) error {
					ids, err := IdentifiersFromMap(m)
					if err != nil {
						return err
					}
					c.SetIdentifiers(ids)
					return nil
				},
			},
			{
				Key: "employment",
				Flat: []flatField{
					{Legacy: "job_title", Canonical: "job_title"},
					{Legacy: "department", Canonical: "department"},
				},
				Apply: func(m map[string]any) error {
					e, err := EmploymentFromMap(m)
					if err != nil {
						return err
					}
					c.SetEmployment(e)
					return nil
				},
			},
			{
				Key:  "communications",
				Flat: communicationsFlat,
				Apply: func(m map[string]any) error {
					comms, err := CommunicationsFromMap(m)
					if err != nil {
						return err
					}
					c.SetCommunications(comms)
					return nil
				},
			},
		},
		Passthrough: func(k string, v any) { c.store.SetKey(k, v) },
	}
}

// SetSalutation normalizes s. Text after a recognized title is written to
// honorifics and replaced on the next call. Blank input removes the
// salutation.
func (c *Contact) SetSalutation(s string) *Contact {
	c.setSalutation(s, &c.derivedHonorifics)
	return c
}

// SetHonorifics sets academic or honorary titles such as "Dr.". Values set
// here are kept by later SetSalutation calls.
func (c *Contact) SetHonorifics(s string) *Contact {
	c.setString("honorifics", strings.TrimSpace(s))
	c.derivedHonorifics = ""
	return c
}

// SetFirstName stores the trimmed name. Blank removes it.
func (c *Contact) SetFirstName(s string) *Contact {
	c.setString("firstname", strings.TrimSpace(s))
	return c
}

// SetLastName stores the trimmed name. Blank removes it.
func (c *Contact) SetLastName(s string) *Contact {
	c.setString("lastname", strings.TrimSpace(s))
	return c
}

// SetDateOfBirth accepts a time.Time or a date string.
func (c *Contact) SetDateOfBirth(v any) *Contact {
	d, _ := normalize.Date(v)
	c.setString("date_of_birth", d)
	return c
}

// SetIdentifiers replaces the identifiers block. Nil removes it.
func (c *Contact) SetIdentifiers(ids *Identifiers) *Contact {
	attach(c.store, "identifiers", &c.identifiers, ids)
	return c
}

// SetEmployment replaces the employment block. Nil removes it.
func (c *Contact) SetEmployment(e *Employment) *Contact {
	attach(c.store, "employment", &c.employment, e)
	return c
}

// SetCommunications replaces the communications block. Nil removes it.
func (c *Contact) SetCommunications(comms *Communications) *Contact {
	attach(c.store, "communications", &c.communications, comms)
	return c
}

// CreateIdentifiers replaces the identifiers with one holding externalID.
func (c *Contact) CreateIdentifiers(externalID any) *Contact {
	return c.SetIdentifiers(NewIdentifiers().SetExternalID(externalID))
}

// CreateEmployment replaces the employment block.
func (c *Contact) CreateEmployment(jobTitle, department string) *Contact {
	return c.SetEmployment(NewEmployment().SetJobTitle(jobTitle).SetDepartment(department))
}

// CreateCommunications replaces the communications block. Blank arguments
// are left out.
func (c *Contact) CreateCommunications(email, phone, mobile, fax string) *Contact {
	return c.SetCommunications(NewCommunications().
		SetEmail(email).
		SetPhoneNumber(phone).
		SetMobilePhone(mobile).
		SetFax(fax))
}

func (c *Contact) ensureIdentifiers() *Identifiers {
	return ensure(c.store, "identifiers", &c.identifiers, NewIdentifiers)
}

func (c *Contact) ensureEmployment() *Employment {
	return ensure(c.store, "employment", &c.employment, NewEmployment)
}

func (c *Contact) ensureCommunications() *Communications {
	return ensure(c.store, "communications", &c.communications, NewCommunications)
}

// SetExternalID writes identifiers.external_id, creating identifiers on
// first non-empty use.
func (c *Contact) SetExternalID(v any) *Contact {
	if normalize.Stringify(v) == "" && c.identifiers == nil {
		return c
	}
	c.ensureIdentifiers().SetExternalID(v)
	return c
}

// SetJobTitle and SetDepartment create the employment block on first
// non-empty use.
func (c *Contact) SetJobTitle(s string) *Contact {
	if s == "" && c.employment == nil {
		return c
	}
	c.ensureEmployment().SetJobTitle(s)
	return c
}

func (c *Contact) SetDepartment(s string) *Contact {
	if s == "" && c.employment == nil {
		return c
	}
	c.ensureEmployment().SetDepartment(s)
	return c
}

// The communication setters below create the communications block on
// first non-empty use. Blank values remove the field.
func (c *Contact) SetEmail(s string) *Contact {
	if s == "" && c.communications == nil {
		return c
	}
	c.ensureCommunications().SetEmail(s)
	return c
}

func (c *Contact) SetPhone(s string) *Contact {
	if s == "" && c.communications == nil {
		return c
	}
	c.ensureCommunications().SetPhoneNumber(s)
	return c
}

func (c *Contact) SetMobilePhone(s string) *Contact {
	if s == "" && c.communications == nil {
		return c
	}
	c.ensureCommunications().SetMobilePhone(s)
	return c
}

func (c *Contact) SetFax(s string) *Contact {
	if s == "" && c.communications == nil {
		return c
	}
	c.ensureCommunications().SetFax(s)
	return c
}

// SetCustomField stores a coerced custom_data value. Nil removes it.
func (c *Contact) SetCustomField(key string, value any) *Contact {
	c.setCustomField(key, value)
	return c
}

// SetCustomData merges data into custom_data unchanged. Nil values remove
// their keys.
func (c *Contact) SetCustomData(data map[string]any) *Contact {
	c.setCustomData(data)
	return c
}

func (c *Contact) Salutation() string  { return c.str("salutation") }
func (c *Contact) Honorifics() string  { return c.str("honorifics") }
func (c *Contact) FirstName() string   { return c.str("firstname") }
func (c *Contact) LastName() string    { return c.str("lastname") }
func (c *Contact) DateOfBirth() string { return c.str("date_of_birth") }

func (c *Contact) Identifiers() *Identifiers       { return c.identifiers }
func (c *Contact) Employment() *Employment         { return c.employment }
func (c *Contact) Communications() *Communications { return c.communications }

func (c *Contact) CustomField(key string) any { return c.customField(key) }
func (c *Contact) CustomData() map[string]any { return c.customData() }

// contactSetters maps snake_case keys accepted by ApplyFields to typed
// setters.
var contactSetters = map[string]func(c *Contact, v any){
	"salutation":    func(c *Contact, v any) { c.SetSalutation(normalize.Stringify(v)) },
	"honorifics":    func(c *Contact, v any) { c.SetHonorifics(normalize.Stringify(v)) },
	"firstname":     func(c *Contact, v any) { c.SetFirstName(normalize.Stringify(v)) },
	"first_name":    func(c *Contact, v any) { c.SetFirstName(normalize.Stringify(v)) },
	"lastname":      func(c *Contact, v any) { c.SetLastName(normalize.Stringify(v)) },
	"last_name":     func(c *Contact, v any) { c.SetLastName(normalize.Stringify(v)) },
	"date_of_birth": func(c *Contact, v any) { c.SetDateOfBirth(v) },
	"email":         func(c *Contact, v any) { c.SetEmail(normalize.Stringify(v)) },
	"phone":         func(c *Contact, v any) { c.SetPhone(normalize.Stringify(v)) },
	"phone_number":  func(c *Contact, v any) { c.SetPhone(normalize.Stringify(v)) },
	"mobile":        func(c *Contact, v any) { c.SetMobilePhone(normalize.Stringify(v)) },
	"mobile_phone":  func(c *Contact, v any) { c.SetMobilePhone(normalize.Stringify(v)) },
	"fax":           func(c *Contact, v any) { c.SetFax(normalize.Stringify(v)) },
	"job_title":     func(c *Contact, v any) { c.SetJobTitle(normalize.Stringify(v)) },
	"department":    func(c *Contact, v any) { c.SetDepartment(normalize.Stringify(v)) },
	"external_id":   func(c *Contact, v any) { c.SetExternalID(v) },
}

// ApplyFields routes each key to its typed setter. Keys are matched in
// snake_case, so "jobTitle" and "job_title" are equivalent. Unknown keys
// become custom fields.
func (c *Contact) ApplyFields(data map[string]any) *Contact {
	for _, key := range sortedKeys(data) {
		if set, ok := contactSetters[strcase.ToSnake(key)]; ok {
			set(c, data[key])
			continue
		}
		c.SetCustomField(key, data[key])
	}
	return c
}
