package models

import (
	"github.com/ameax/json-import-api-go/pkg/normalize"
)

// Communications holds phone numbers, email and fax.
type Communications struct {
	record
}

// NewCommunications returns an empty communications block.
func NewCommunications() *Communications {
	return &Communications{record: newRecord()}
}

// CommunicationsFromMap accepts canonical keys plus the short forms
// "phone", "phone2" and "mobile".
func CommunicationsFromMap(data map[string]any) (*Communications, error) {
	c := NewCommunications()
	if err := c.populator().run(data); err != nil {
		return nil, err
	}
	return c, nil
}

// communicationsFlat lists the legacy top-level keys that documents fold
// into their communications object.
var communicationsFlat = []flatField{
	{Legacy: "email", Canonical: "email"},
	{Legacy: "phone", Canonical: "phone_number"},
	{Legacy: "phone_number", Canonical: "phone_number"},
	{Legacy: "phone2", Canonical: "phone_number2"},
	{Legacy: "phone_number2", Canonical: "phone_number2"},
	{Legacy: "mobile", Canonical: "mobile_phone"},
	{Legacy: "mobile_phone", Canonical: "mobile_phone"},
	{Legacy: "fax", Canonical: "fax"},
}

func (c *Communications) populator() populator {
	return populator{
		Fields: []fieldRule{
			stringRule("phone_number", func(s string) { c.SetPhoneNumber(s) }, "phone"),
			stringRule("phone_number2", func(s string) { c.SetPhoneNumber2(s) }, "phone2"),
			stringRule("mobile_phone", func(s string) { c.SetMobilePhone(s) }, "mobile"),
			stringRule("email", func(s string) { c.SetEmail(s) }),
			stringRule("fax", func(s string) { c.SetFax(s) }),
		},
		Passthrough: func(k string, v any) { c.store.SetKey(k, v) },
	}
}

// SetPhoneNumber normalizes v before storing it. Blank removes it.
func (c *Communications) SetPhoneNumber(v string) *Communications {
	c.setString("phone_number", normalize.Phone(v))
	return c
}

// SetPhoneNumber2 sets the secondary phone number.
func (c *Communications) SetPhoneNumber2(v string) *Communications {
	c.setString("phone_number2", normalize.Phone(v))
	return c
}

// SetMobilePhone normalizes v like SetPhoneNumber.
func (c *Communications) SetMobilePhone(v string) *Communications {
	c.setString("mobile_phone", normalize.Phone(v))
	return c
}

// SetEmail stores the trimmed, lowercased address.
func (c *Communications) SetEmail(v string) *Communications {
	c.setString("email", normalize.Email(v))
	return c
}

// SetFax normalizes v like a phone number.
func (c *Communications) SetFax(v string) *Communications {
	c.setString("fax", normalize.Phone(v))
	return c
}

func (c *Communications) PhoneNumber() string  { return c.str("phone_number") }
func (c *Communications) PhoneNumber2() string { return c.str("phone_number2") }
func (c *Communications) MobilePhone() string  { return c.str("mobile_phone") }
func (c *Communications) Email() string        { return c.str("email") }
func (c *Communications) Fax() string          { return c.str("fax") }
