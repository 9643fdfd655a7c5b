package models_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameax/json-import-api-go/pkg/models"
)

func TestOrganization_EndToEnd(t *testing.T) {
	org := models.NewOrganization().
		SetName("ACME Corporation").
		SetAddress(models.NewAddressWith("12345", "Berlin", "de")).
		AddContact("John", "Doe", map[string]any{"email": "john@acme.com"})

	data := org.ToMap()

	address, ok := data["address"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "DE", address["country"])

	contacts, ok := data["contacts"].([]any)
	require.True(t, ok)
	require.Len(t, contacts, 1)
	contact := contacts[0].(map[string]any)
	assert.Equal(t, "john@acme.com", contact["communications"].(map[string]any)["email"])

	assert.NoError(t, org.Validate())
}

func TestOrganization_LazyCommunications(t *testing.T) {
	org := models.NewOrganization()

	org.SetEmail("")
	assert.NotContains(t, org.ToMap(), "communications")

	org.SetEmail("a@b.com")
	assert.Equal(t, "a@b.com", org.Get("communications.email"))

	org.SetPhone("+49 30 1").SetPhone2("+49 30 2")
	assert.Equal(t, map[string]any{
		"email":         "a@b.com",
		"phone_number":  "+49 30 1",
		"phone_number2": "+49 30 2",
	}, org.Communications().ToMap())

	org.SetWebsite("").SetVatID("").SetAgentExternalID(nil).SetCustomerNumber(nil)
	for _, key := range []string{"social_media", "business_information", "agent", "identifiers"} {
		assert.NotContains(t, org.ToMap(), key)
	}
}

func TestOrganization_AddressRequired(t *testing.T) {
	org := models.NewOrganization()

	tests := []struct {
		name  string
		set   func(string) error
		field string
	}{
		{name: "postal code", set: org.SetPostalCode, field: "postal code"},
		{name: "locality", set: org.SetLocality, field: "locality"},
		{name: "country", set: org.SetCountry, field: "country"},
		{name: "route", set: org.SetRoute, field: "route"},
		{name: "street", set: org.SetStreet, field: "street"},
		{name: "house number", set: org.SetHouseNumber, field: "house number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set("x")
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrInvalidArgument)
			assert.Equal(t, "Cannot set "+tt.field+" without an address. Create an address first.", err.Error())
		})
	}

	org.CreateAddress("12345", "Berlin", "DE")
	require.NoError(t, org.SetCountry("at"))
	require.NoError(t, org.SetStreet("Ring"))
	assert.Equal(t, "AT", org.Get("address.country"))
	assert.Equal(t, "Ring", org.Get("address.route"))
}

func TestOrganization_ContactsStayLive(t *testing.T) {
	c := models.NewContact().SetFirstName("Jane").SetLastName("Roe")
	org := models.NewOrganization().AddContactObject(c)

	c.SetEmail("jane@acme.com")
	assert.Equal(t, "jane@acme.com", org.Get("contacts").([]any)[0].(map[string]any)["communications"].(map[string]any)["email"])
	assert.Len(t, org.Contacts(), 1)
}

func TestOrganization_Validate(t *testing.T) {
	org := models.NewOrganization().AddContact("", "Doe", nil)

	err := org.Validate()
	require.Error(t, err)

	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{
		"name is required",
		"address is required",
		"contacts[0].firstname is required",
	}, verr.Errors)

	org.SetName("ACME").CreateAddress("", "Berlin", "DE")
	err = org.Validate()
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Errors, "address.postal_code is required")
}

func TestOrganizationFromMap_Legacy(t *testing.T) {
	org, err := models.OrganizationFromMap(map[string]any{
		"name":              "ACME",
		"email":             "Info@ACME.com",
		"phone":             "+49 30 1",
		"customer_number":   10001,
		"external_id":       "crm-1",
		"vat_id":            "DE123",
		"website":           "https://acme.example",
		"agent_external_id": "agent-7",
		"address":           map[string]any{"postal_code": "12345", "locality": "Berlin", "country": "de", "street": "Main"},
		"contacts": []any{
			map[string]any{"first_name": "John", "last_name": "Doe", "email": "john@acme.com"},
		},
		"custom_data": map[string]any{"tier": "1"},
		"industry":    "retail",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"meta": map[string]any{
			"document_type":  models.DocumentTypeOrganization,
			"schema_version": models.SchemaVersion,
		},
		"name":                 "ACME",
		"communications":       map[string]any{"email": "info@acme.com", "phone_number": "+49 30 1"},
		"identifiers":          map[string]any{"customer_number": "10001", "external_id": "crm-1"},
		"business_information": map[string]any{"vat_id": "DE123"},
		"social_media":         map[string]any{"web": "https://acme.example"},
		"agent":                map[string]any{"external_id": "agent-7"},
		"address": map[string]any{
			"postal_code": "12345",
			"locality":    "Berlin",
			"country":     "DE",
			"route":       "Main",
		},
		"contacts": []any{
			map[string]any{
				"firstname":      "John",
				"lastname":       "Doe",
				"communications": map[string]any{"email": "john@acme.com"},
			},
		},
		"custom_data": map[string]any{"tier": "1"},
		"industry":    "retail",
	}, org.ToMap())
}

func TestOrganizationFromMap_RoundTrip(t *testing.T) {
	org := models.NewOrganization().
		SetName("ACME Corporation").
		SetAdditionalName("Holding").
		CreateAddress("12345", "Berlin", "de").
		CreateIdentifiers("10001", "crm-1").
		CreateCommunications("info@acme.com", "+49 30 1", "+49 170 1", "").
		CreateBusinessInformation("DE123", "DE89370400440532013000").
		CreateSocialMedia("https://acme.example").
		CreateAgent(5).
		AddContact("John", "Doe", map[string]any{"email": "john@acme.com", "job_title": "CEO"}).
		SetCustomField("active", "true")
	require.NoError(t, org.SetImportMode(models.ImportModeCreateOrUpdate))

	again, err := models.OrganizationFromMap(org.ToMap())
	require.NoError(t, err)
	assert.Equal(t, org.ToMap(), again.ToMap())
	assert.Equal(t, "Holding", again.AdditionalName())
	assert.Equal(t, "DE123", again.BusinessInformation().VatID())
	assert.Equal(t, true, again.CustomField("active"))
}

func TestOrganization_CustomData(t *testing.T) {
	org, err := models.OrganizationFromMap(map[string]any{
		"name":        "x",
		"custom_data": map[string]any{"zip": "0815", "flag": "1"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"zip": "0815", "flag": "1"}, org.ToMap()["custom_data"])

	org.SetCustomField("active", "1")
	assert.Equal(t, true, org.CustomField("active"))

	org.SetCustomData(map[string]any{"zip": nil, "count": "42"})
	assert.Equal(t, map[string]any{"flag": "1", "active": true, "count": "42"}, org.ToMap()["custom_data"])

	org.SetCustomData(map[string]any{"flag": nil, "active": nil, "count": nil})
	assert.NotContains(t, org.ToMap(), "custom_data")
}
