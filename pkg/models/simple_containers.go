package models

import (
	"strings"

	"github.com/ameax/json-import-api-go/pkg/normalize"
)

// Employment describes a contact's position.
type Employment struct {
	record
}

// NewEmployment returns an empty employment block.
func NewEmployment() *Employment {
	return &Employment{record: newRecord()}
}

// EmploymentFromMap builds Employment from job_title and department.
func EmploymentFromMap(data map[string]any) (*Employment, error) {
	e := NewEmployment()
	err := populator{
		Fields: []fieldRule{
			stringRule("job_title", func(s string) { e.SetJobTitle(s) }),
			stringRule("department", func(s string) { e.SetDepartment(s) }),
		},
		Passthrough: func(k string, v any) { e.store.SetKey(k, v) },
	}.run(data)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Employment) SetJobTitle(v string) *Employment {
	e.setString("job_title", strings.TrimSpace(v))
	return e
}

func (e *Employment) SetDepartment(v string) *Employment {
	e.setString("department", strings.TrimSpace(v))
	return e
}

func (e *Employment) JobTitle() string   { return e.str("job_title") }
func (e *Employment) Department() string { return e.str("department") }

// BusinessInformation holds tax and banking identifiers of an organization.
type BusinessInformation struct {
	record
}

// NewBusinessInformation returns an empty business_information block.
func NewBusinessInformation() *BusinessInformation {
	return &BusinessInformation{record: newRecord()}
}

func BusinessInformationFromMap(data map[string]any) (*BusinessInformation, error) {
	b := NewBusinessInformation()
	err := populator{
		Fields: []fieldRule{
			stringRule("vat_id", func(s string) { b.SetVatID(s) }),
			stringRule("iban", func(s string) { b.SetIban(s) }),
		},
		Passthrough: func(k string, v any) { b.store.SetKey(k, v) },
	}.run(data)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// SetVatID stores the VAT id as given. Blank removes it.
func (b *BusinessInformation) SetVatID(v string) *BusinessInformation {
	b.setString("vat_id", strings.TrimSpace(v))
	return b
}

func (b *BusinessInformation) SetIban(v string) *BusinessInformation {
	b.setString("iban", strings.TrimSpace(v))
	return b
}

func (b *BusinessInformation) VatID() string { return b.str("vat_id") }
func (b *BusinessInformation) Iban() string  { return b.str("iban") }

// SocialMedia holds web presence links.
type SocialMedia struct {
	record
}

// NewSocialMedia returns an empty social_media block.
func NewSocialMedia() *SocialMedia {
	return &SocialMedia{record: newRecord()}
}

func SocialMediaFromMap(data map[string]any) (*SocialMedia, error) {
	s := NewSocialMedia()
	err := populator{
		Fields: []fieldRule{
			stringRule("web", func(v string) { s.SetWeb(v) }, "website"),
		},
		Passthrough: func(k string, v any) { s.store.SetKey(k, v) },
	}.run(data)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SetWeb sets the website URL as given.
func (s *SocialMedia) SetWeb(v string) *SocialMedia {
	s.setString("web", strings.TrimSpace(v))
	return s
}

func (s *SocialMedia) Web() string { return s.str("web") }

// Agent references the responsible user by external id.
type Agent struct {
	record
}

// NewAgent returns an empty agent.
func NewAgent() *Agent {
	return &Agent{record: newRecord()}
}

// AgentFromMap builds an Agent. external_id may be any scalar.
func AgentFromMap(data map[string]any) (*Agent, error) {
	a := NewAgent()
	err := populator{
		Fields: []fieldRule{
			valueRule("external_id", func(v any) { a.SetExternalID(v) }),
		},
		Passthrough: func(k string, v any) { a.store.SetKey(k, v) },
	}.run(data)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// SetExternalID accepts a string or integer id. Nil removes it.
func (a *Agent) SetExternalID(v any) *Agent {
	a.setString("external_id", normalize.Stringify(v))
	return a
}

func (a *Agent) ExternalID() string { return a.str("external_id") }
