package models

import (
	"github.com/ameax/json-import-api-go/pkg/normalize"
)

// Address is a postal address. Keys outside the known set are kept as-is.
type Address struct {
	record
}

// NewAddress returns an empty Address.
func NewAddress() *Address {
	return &Address{record: newRecord()}
}

// NewAddressWith returns an Address with its required fields set.
func NewAddressWith(postalCode, locality, country string) *Address {
	return NewAddress().
		SetPostalCode(postalCode).
		SetLocality(locality).
		SetCountry(country)
}

// AddressFromMap builds an Address from input that may use "street" for
// "route".
func AddressFromMap(data map[string]any) (*Address, error) {
	a := NewAddress()
	if err := a.populator().run(data); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Address) populator() populator {
	return populator{
		Fields: []fieldRule{
			stringRule("postal_code", func(s string) { a.SetPostalCode(s) }),
			stringRule("locality", func(s string) { a.SetLocality(s) }),
			stringRule("country", func(s string) { a.SetCountry(s) }),
			stringRule("route", func(s string) { a.SetRoute(s) }, "street"),
			stringRule("house_number", func(s string) { a.SetHouseNumber(s) }),
		},
		Passthrough: func(k string, v any) { a.store.SetKey(k, v) },
	}
}

// SetPostalCode sets the postal code. Blank removes it.
func (a *Address) SetPostalCode(v string) *Address {
	a.setString("postal_code", v)
	return a
}

// SetLocality sets the city or town.
func (a *Address) SetLocality(v string) *Address {
	a.setString("locality", v)
	return a
}

// SetCountry stores the uppercased country code.
func (a *Address) SetCountry(v string) *Address {
	a.setString("country", normalize.Country(v))
	return a
}

// SetRoute sets the street name.
func (a *Address) SetRoute(v string) *Address {
	a.setString("route", v)
	return a
}

// SetStreet is an alias for SetRoute.
func (a *Address) SetStreet(v string) *Address {
	return a.SetRoute(v)
}

// SetHouseNumber stores the house number as given, suffixes included.
func (a *Address) SetHouseNumber(v string) *Address {
	a.setString("house_number", v)
	return a
}

// SetExtra stores an arbitrary address key. A nil value removes it.
func (a *Address) SetExtra(key string, v any) *Address {
	a.setValue(key, v)
	return a
}

// Getters return "" for unset fields.
func (a *Address) PostalCode() string  { return a.str("postal_code") }
func (a *Address) Locality() string    { return a.str("locality") }
func (a *Address) Country() string     { return a.str("country") }
func (a *Address) Route() string       { return a.str("route") }
func (a *Address) HouseNumber() string { return a.str("house_number") }
