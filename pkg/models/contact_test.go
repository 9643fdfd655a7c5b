package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameax/json-import-api-go/pkg/models"
)

func TestContact_Salutation(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantSalutation any
		wantHonorifics any
	}{
		{name: "english", input: "mr", wantSalutation: "Mr."},
		{name: "canonical", input: "Mr.", wantSalutation: "Mr."},
		{name: "german upper", input: "HERR", wantSalutation: "Mr."},
		{name: "fraeulein", input: "Fräulein", wantSalutation: "Ms."},
		{name: "combined", input: "Herr Dr.", wantSalutation: "Mr.", wantHonorifics: "Dr."},
		{name: "unknown", input: "Professor Jones", wantSalutation: "Professor Jones"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := models.NewContact().SetSalutation(tt.input)
			assert.Equal(t, tt.wantSalutation, c.Get("salutation"))
			assert.Equal(t, tt.wantHonorifics, c.Get("honorifics"))
		})
	}
}

func TestContact_SalutationReplacesDerivedHonorifics(t *testing.T) {
	tests := []struct {
		name           string
		build          func() *models.Contact
		wantSalutation any
		wantHonorifics any
	}{
		{
			name:           "derived then plain",
			build:          func() *models.Contact { return models.NewContact().SetSalutation("Herr Dr.").SetSalutation("Herr") },
			wantSalutation: "Mr.",
		},
		{
			name:           "derived then derived",
			build:          func() *models.Contact { return models.NewContact().SetSalutation("Herr Dr.").SetSalutation("Frau Prof.") },
			wantSalutation: "Ms.",
			wantHonorifics: "Prof.",
		},
		{
			name:           "explicit honorifics kept",
			build:          func() *models.Contact { return models.NewContact().SetHonorifics("Dr.").SetSalutation("Herr") },
			wantSalutation: "Mr.",
			wantHonorifics: "Dr.",
		},
		{
			name: "explicit after derived kept",
			build: func() *models.Contact {
				return models.NewContact().SetSalutation("Herr Dr.").SetHonorifics("Dr. med.").SetSalutation("Herr")
			},
			wantSalutation: "Mr.",
			wantHonorifics: "Dr. med.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.build()
			assert.Equal(t, tt.wantSalutation, c.Get("salutation"))
			assert.Equal(t, tt.wantHonorifics, c.Get("honorifics"))
		})
	}
}

func TestContact_LazyContainers(t *testing.T) {
	c := models.NewContact()

	c.SetEmail("").SetJobTitle("").SetExternalID(nil)
	assert.Empty(t, c.ToMap())

	c.SetEmail("Jane@Example.com").SetPhone("+49 1").SetJobTitle("CTO").SetExternalID(77)
	assert.Equal(t, "jane@example.com", c.Get("communications.email"))
	assert.Equal(t, "+49 1", c.Get("communications.phone_number"))
	assert.Equal(t, "CTO", c.Get("employment.job_title"))
	assert.Equal(t, "77", c.Get("identifiers.external_id"))

	// The same container is reused.
	c.SetMobilePhone("+49 2")
	assert.Equal(t, "+49 2", c.Communications().MobilePhone())
	assert.Equal(t, "jane@example.com", c.Communications().Email())
}

func TestContact_DateOfBirth(t *testing.T) {
	c := models.NewContact().SetDateOfBirth(time.Date(1980, 5, 17, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "1980-05-17", c.DateOfBirth())

	c.SetDateOfBirth("May 17, 1980")
	assert.Equal(t, "1980-05-17", c.DateOfBirth())

	c.SetDateOfBirth("unknown")
	assert.Equal(t, "unknown", c.DateOfBirth())
}

func TestContact_CustomFields(t *testing.T) {
	c := models.NewContact().
		SetCustomField("active", "true").
		SetCustomField("count", "42").
		SetCustomField("ratio", "4.5")

	assert.Equal(t, map[string]any{
		"active": true,
		"count":  42,
		"ratio":  "4.5",
	}, c.CustomData())

	c.SetCustomField("active", nil).SetCustomField("count", nil).SetCustomField("ratio", nil)
	assert.False(t, c.Has("custom_data"))
}

func TestContact_ApplyFields(t *testing.T) {
	c := models.NewContact().ApplyFields(map[string]any{
		"email":      "john@acme.com",
		"jobTitle":   "Engineer",
		"department": "R&D",
		"salutation": "herr",
		"mobile":     "+49 170",
		"shoe_size":  "44",
	})

	assert.Equal(t, "john@acme.com", c.Communications().Email())
	assert.Equal(t, "+49 170", c.Communications().MobilePhone())
	assert.Equal(t, "Engineer", c.Employment().JobTitle())
	assert.Equal(t, "R&D", c.Employment().Department())
	assert.Equal(t, "Mr.", c.Salutation())
	assert.Equal(t, 44, c.CustomField("shoe_size"))
}

func TestContactFromMap(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want map[string]any
	}{
		{
			name: "legacy flat keys",
			data: map[string]any{
				"first_name": "John",
				"last_name":  "Doe",
				"email":      "JOHN@acme.com",
				"phone":      "+49 30 1",
				"job_title":  "CEO",
			},
			want: map[string]any{
				"firstname":      "John",
				"lastname":       "Doe",
				"communications": map[string]any{"email": "john@acme.com", "phone_number": "+49 30 1"},
				"employment":     map[string]any{"job_title": "CEO"},
			},
		},
		{
			name: "nested canonical",
			data: map[string]any{
				"firstname":      "Jane",
				"lastname":       "Roe",
				"salutation":     "Frau Prof.",
				"identifiers":    map[string]any{"external_id": 5},
				"communications": map[string]any{"fax": "1"},
				"custom_data":    map[string]any{"vip": "1"},
				"nickname":       "JR",
			},
			want: map[string]any{
				"firstname":      "Jane",
				"lastname":       "Roe",
				"salutation":     "Ms.",
				"honorifics":     "Prof.",
				"identifiers":    map[string]any{"external_id": "5"},
				"communications": map[string]any{"fax": "1"},
				"custom_data":    map[string]any{"vip": "1"},
				"nickname":       "JR",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := models.ContactFromMap(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.ToMap())
		})
	}
}
