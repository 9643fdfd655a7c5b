package models

import (
	"fmt"

	"github.com/ameax/json-import-api-go/pkg/normalize"
)

// party is the account shape shared by Organization and PrivatePerson.
type party struct {
	document

	address        *Address
	identifiers    *Identifiers
	communications *Communications
	agent          *Agent
}

func newParty(documentType string) party {
	return party{document: newDocument(documentType)}
}

func (p *party) Address() *Address               { return p.address }
func (p *party) Identifiers() *Identifiers       { return p.identifiers }
func (p *party) Communications() *Communications { return p.communications }
func (p *party) Agent() *Agent                   { return p.agent }

func (p *party) setAddress(a *Address) {
	attach(p.store, "address", &p.address, a)
}

// addressField applies set to the existing address. Without one it fails
// naming the field.
func (p *party) addressField(field string, set func(a *Address)) error {
	if p.address == nil {
		return newInvalidArgument("address",
			fmt.Sprintf("Cannot set %s without an address. Create an address first.", field), nil)
	}
	set(p.address)
	return nil
}

func (p *party) setIdentifiers(ids *Identifiers) {
	attach(p.store, "identifiers", &p.identifiers, ids)
}

func (p *party) setCustomerNumber(v any) {
	if _, ok := normalize.CustomerNumber(v); !ok && p.identifiers == nil {
		return
	}
	ensure(p.store, "identifiers", &p.identifiers, NewIdentifiers).SetCustomerNumber(v)
}

func (p *party) setExternalID(v any) {
	if normalize.Stringify(v) == "" && p.identifiers == nil {
		return
	}
	ensure(p.store, "identifiers", &p.identifiers, NewIdentifiers).SetExternalID(v)
}

func (p *party) setCommunications(c *Communications) {
	attach(p.store, "communications", &p.communications, c)
}

// withCommunications runs set on the communications object, creating it
// unless value is empty.
func (p *party) withCommunications(value string, set func(c *Communications)) {
	if value == "" && p.communications == nil {
		return
	}
	set(ensure(p.store, "communications", &p.communications, NewCommunications))
}

func (p *party) setAgent(a *Agent) {
	attach(p.store, "agent", &p.agent, a)
}

func (p *party) setAgentExternalID(v any) {
	if normalize.Stringify(v) == "" && p.agent == nil {
		return
	}
	ensure(p.store, "agent", &p.agent, NewAgent).SetExternalID(v)
}

// partyRules are the nested rules common to both account types.
func (p *party) partyRules() []nestedRule {
	return []nestedRule{
		{
			Key: "identifiers",
			Flat: []flatField{
				{Legacy: "customer_number", Canonical: "customer_number"},
				{Legacy: "external_id", Canonical: "external_id"},
			},
			Apply: func(m map[string]any) error {
				ids, err := IdentifiersFromMap(m)
				if err != nil {
					return err
				}
				p.setIdentifiers(ids)
				return nil
			},
		},
		{
			Key: "address",
			Apply: func(m map[string]any) error {
				a, err := AddressFromMap(m)
				if err != nil {
					return err
				}
				p.setAddress(a)
				return nil
			},
		},
		{
			Key:  "communications",
			Flat: communicationsFlat,
			Apply: func(m map[string]any) error {
				c, err := CommunicationsFromMap(m)
				if err != nil {
					return err
				}
				p.setCommunications(c)
				return nil
			},
		},
		{
			Key:  "agent",
			Flat: []flatField{{Legacy: "agent_external_id", Canonical: "external_id"}},
			Apply: func(m map[string]any) error {
				a, err := AgentFromMap(m)
				if err != nil {
					return err
				}
				p.setAgent(a)
				return nil
			},
		},
	}
}

// validateAddress appends missing address fields to errs.
func (p *party) validateAddress(v *validator) {
	if p.address == nil {
		v.fail("address is required")
		return
	}
	v.required("address.postal_code", p.address.PostalCode())
	v.required("address.locality", p.address.Locality())
	v.required("address.country", p.address.Country())
}
