package models

import (
	"context"
	"strings"

	"github.com/ameax/json-import-api-go/pkg/normalize"
)

// Organization is an ameax_organization_account document.
type Organization struct {
	party

	businessInformation *BusinessInformation
	socialMedia         *SocialMedia
	contacts            []*Contact
}

// NewOrganization returns an empty organization with its meta header set.
func NewOrganization() *Organization {
	return &Organization{party: newParty(DocumentTypeOrganization)}
}

// OrganizationFromMap builds an Organization from nested or legacy flat
// input. The document type in meta is always forced.
func OrganizationFromMap(data map[string]any) (*Organization, error) {
	o := NewOrganization()
	if err := o.populator().run(data); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Organization) populator() populator {
	nested := append(o.partyRules(),
		nestedRule{
			Key: "business_information",
			Flat: []flatField{
				{Legacy: "vat_id", Canonical: "vat_id"},
				{Legacy: "iban", Canonical: "iban"},
			},
			Apply: func(m map[string]any) error {
				b, err := BusinessInformationFromMap(m)
				if err != nil {
					return err
				}
				o.SetBusinessInformation(b)
				return nil
			},
		},
		nestedRule{
			Key: "social_media",
			Flat: []flatField{
				{Legacy: "website", Canonical: "web"},
				{Legacy: "web", Canonical: "web"},
			},
			Apply: func(m map[string]any) error {
				s, err := SocialMediaFromMap(m)
				if err != nil {
					return err
				}
				o.SetSocialMedia(s)
				return nil
			},
		},
	)

	return populator{
		Fields: []fieldRule{
			o.metaRule(),
			stringRule("name", func(s string) { o.SetName(s) }),
			stringRule("additional_name", func(s string) { o.SetAdditionalName(s) }),
			{Key: "contacts", Apply: func(v any) error {
				for _, raw := range toMapSlice(v) {
					c, err := ContactFromMap(raw)
					if err != nil {
						return err
					}
					o.AddContactObject(c)
				}
				return nil
			}},
			customDataRule(func(m map[string]any) { o.SetCustomData(m) }),
		},
		Nested:      nested,
		Passthrough: func(k string, v any) { o.store.SetKey(k, v) },
	}
}

// SetName stores the trimmed organization name. Blank removes it.
func (o *Organization) SetName(name string) *Organization {
	o.setString("name", strings.TrimSpace(name))
	return o
}

// SetAdditionalName stores the trimmed second name line, such as a
// department or legal suffix. Blank removes it.
func (o *Organization) SetAdditionalName(name string) *Organization {
	o.setString("additional_name", strings.TrimSpace(name))
	return o
}

func (o *Organization) Name() string           { return o.str("name") }
func (o *Organization) AdditionalName() string { return o.str("additional_name") }

// CreateAddress attaches a new address with the required fields.
func (o *Organization) CreateAddress(postalCode, locality, country string) *Organization {
	o.setAddress(NewAddressWith(postalCode, locality, country))
	return o
}

// SetAddress replaces the address. Nil removes it.
func (o *Organization) SetAddress(a *Address) *Organization {
	o.setAddress(a)
	return o
}

// SetPostalCode and the other address setters fail until an address exists.
func (o *Organization) SetPostalCode(v string) error {
	return o.addressField("postal code", func(a *Address) { a.SetPostalCode(v) })
}

func (o *Organization) SetLocality(v string) error {
	return o.addressField("locality", func(a *Address) { a.SetLocality(v) })
}

func (o *Organization) SetCountry(v string) error {
	return o.addressField("country", func(a *Address) { a.SetCountry(v) })
}

func (o *Organization) SetRoute(v string) error {
	return o.addressField("route", func(a *Address) { a.SetRoute(v) })
}

func (o *Organization) SetStreet(v string) error {
	return o.addressField("street", func(a *Address) { a.SetStreet(v) })
}

func (o *Organization) SetHouseNumber(v string) error {
	return o.addressField("house number", func(a *Address) { a.SetHouseNumber(v) })
}

// CreateIdentifiers replaces the identifiers block.
func (o *Organization) CreateIdentifiers(customerNumber, externalID any) *Organization {
	o.setIdentifiers(NewIdentifiers().SetCustomerNumber(customerNumber).SetExternalID(externalID))
	return o
}

// SetIdentifiers replaces the identifiers block. Nil removes it.
func (o *Organization) SetIdentifiers(ids *Identifiers) *Organization {
	o.setIdentifiers(ids)
	return o
}

// SetCustomerNumber stores any scalar as a string in identifiers.
func (o *Organization) SetCustomerNumber(v any) *Organization {
	o.setCustomerNumber(v)
	return o
}

// SetExternalID writes identifiers.external_id.
func (o *Organization) SetExternalID(v any) *Organization {
	o.setExternalID(v)
	return o
}

// CreateCommunications replaces the communications block. Blank arguments
// are left out.
func (o *Organization) CreateCommunications(email, phone, mobile, fax string) *Organization {
	o.setCommunications(NewCommunications().
		SetEmail(email).
		SetPhoneNumber(phone).
		SetMobilePhone(mobile).
		SetFax(fax))
	return o
}

// SetCommunications replaces the communications block. Nil removes it.
func (o *Organization) SetCommunications(c *Communications) *Organization {
	o.setCommunications(c)
	return o
}

// SetEmail creates communications on first non-empty use.
func (o *Organization) SetEmail(v string) *Organization {
	o.withCommunications(v, func(c *Communications) { c.SetEmail(v) })
	return o
}

// SetPhone writes the normalized phone_number.
func (o *Organization) SetPhone(v string) *Organization {
	o.withCommunications(v, func(c *Communications) { c.SetPhoneNumber(v) })
	return o
}

func (o *Organization) SetPhone2(v string) *Organization {
	o.withCommunications(v, func(c *Communications) { c.SetPhoneNumber2(v) })
	return o
}

func (o *Organization) SetMobilePhone(v string) *Organization {
	o.withCommunications(v, func(c *Communications) { c.SetMobilePhone(v) })
	return o
}

func (o *Organization) SetFax(v string) *Organization {
	o.withCommunications(v, func(c *Communications) { c.SetFax(v) })
	return o
}

// CreateSocialMedia replaces social_media with one holding web.
func (o *Organization) CreateSocialMedia(web string) *Organization {
	return o.SetSocialMedia(NewSocialMedia().SetWeb(web))
}

// SetSocialMedia replaces social_media. Nil removes it.
func (o *Organization) SetSocialMedia(s *SocialMedia) *Organization {
	attach(o.store, "social_media", &o.socialMedia, s)
	return o
}

// SetWebsite writes social_media.web.
func (o *Organization) SetWebsite(web string) *Organization {
	if web == "" && o.socialMedia == nil {
		return o
	}
	ensure(o.store, "social_media", &o.socialMedia, NewSocialMedia).SetWeb(web)
	return o
}

// CreateBusinessInformation replaces business_information.
func (o *Organization) CreateBusinessInformation(vatID, iban string) *Organization {
	return o.SetBusinessInformation(NewBusinessInformation().SetVatID(vatID).SetIban(iban))
}

// SetBusinessInformation replaces business_information. Nil removes it.
func (o *Organization) SetBusinessInformation(b *BusinessInformation) *Organization {
	attach(o.store, "business_information", &o.businessInformation, b)
	return o
}

// SetVatID and SetIban create business_information on first non-empty
// use.
func (o *Organization) SetVatID(vatID string) *Organization {
	if vatID == "" && o.businessInformation == nil {
		return o
	}
	ensure(o.store, "business_information", &o.businessInformation, NewBusinessInformation).SetVatID(vatID)
	return o
}

func (o *Organization) SetIban(iban string) *Organization {
	if iban == "" && o.businessInformation == nil {
		return o
	}
	ensure(o.store, "business_information", &o.businessInformation, NewBusinessInformation).SetIban(iban)
	return o
}

// CreateAgent replaces the agent with one holding externalID.
func (o *Organization) CreateAgent(externalID any) *Organization {
	o.setAgent(NewAgent().SetExternalID(externalID))
	return o
}

// SetAgent replaces the agent. Nil removes it.
func (o *Organization) SetAgent(a *Agent) *Organization {
	o.setAgent(a)
	return o
}

// SetAgentExternalID writes agent.external_id, creating the agent on first
// non-empty use.
func (o *Organization) SetAgentExternalID(v any) *Organization {
	o.setAgentExternalID(v)
	return o
}

func (o *Organization) BusinessInformation() *BusinessInformation { return o.businessInformation }
func (o *Organization) SocialMedia() *SocialMedia                 { return o.socialMedia }

// AddContact builds a contact from names plus additional fields. Keys of
// additional are routed to typed contact setters; unknown keys become
// custom fields on the contact.
func (o *Organization) AddContact(firstName, lastName string, additional map[string]any) *Organization {
	c := NewContact().SetFirstName(firstName).SetLastName(lastName)
	c.ApplyFields(additional)
	return o.AddContactObject(c)
}

// AddContactObject appends a built contact.
func (o *Organization) AddContactObject(c *Contact) *Organization {
	if c == nil {
		return o
	}
	o.contacts = append(o.contacts, c)
	o.syncContacts()
	return o
}

// Contacts returns the contacts in insertion order.
func (o *Organization) Contacts() []*Contact {
	return o.contacts
}

func (o *Organization) syncContacts() {
	list := make([]any, len(o.contacts))
	for i, c := range o.contacts {
		list[i] = c.ToMap()
	}
	o.store.SetKey("contacts", list)
}

// SetCustomField stores a coerced custom_data value. Nil removes it.
func (o *Organization) SetCustomField(key string, value any) *Organization {
	o.setCustomField(key, value)
	return o
}

// SetCustomData merges data into custom_data without coercion. Nil values
// remove their keys.
func (o *Organization) SetCustomData(data map[string]any) *Organization {
	o.setCustomData(data)
	return o
}

// Validate checks the fields the import endpoint requires.
func (o *Organization) Validate() error {
	v := &validator{}
	o.validateMeta(v)
	v.required("name", o.Name())
	o.validateAddress(v)
	for i, c := range o.contacts {
		v.required(contactField(i, "firstname"), c.FirstName())
		v.required(contactField(i, "lastname"), c.LastName())
	}
	return v.err()
}

// Submit sends the organization through the attached API client.
func (o *Organization) Submit(ctx context.Context) (map[string]any, error) {
	return o.submit(ctx)
}

func contactField(i int, field string) string {
	return "contacts[" + normalize.Stringify(i) + "]." + field
}
