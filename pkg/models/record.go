package models

import (
	"github.com/ameax/json-import-api-go/pkg/dotpath"
	"github.com/ameax/json-import-api-go/pkg/normalize"
)

const customDataKey = "custom_data"

// record is the storage shared by every container and document.
type record struct {
	store *dotpath.Store
}

func newRecord() record {
	return record{store: dotpath.New()}
}

// ToMap returns the nested, JSON-ready form. The map is live: later
// mutations through setters are visible in it.
func (r *record) ToMap() map[string]any {
	return r.store.Map()
}

// Get returns the value at a dot path, or nil.
func (r *record) Get(path string) any {
	return r.store.Get(path, nil)
}

// Has reports whether a non-nil value exists at a dot path.
func (r *record) Has(path string) bool {
	return r.store.Has(path)
}

func (r *record) str(path string) string {
	s, _ := r.store.String(path)
	return s
}

// setString stores a non-empty string at path and removes the key otherwise.
func (r *record) setString(path, value string) {
	if value == "" {
		r.store.Remove(path)
		return
	}
	r.store.Set(path, value)
}

// setValue stores v at path and removes the key when v is nil.
func (r *record) setValue(path string, v any) {
	if v == nil {
		r.store.Remove(path)
		return
	}
	r.store.Set(path, v)
}

// setCustomField writes one custom_data entry. A nil value removes the
// entry and drops custom_data once it is empty.
// setSalutation stores the normalized salutation. Honorifics derived by the
// previous call are removed first unless they have been changed since;
// derived tracks them between calls.
func (r *record) setSalutation(s string, derived *string) {
	res, _ := normalize.Salutation(s)
	r.setString("salutation", res.Salutation)
	if *derived != "" && r.str("honorifics") == *derived {
		r.store.Remove("honorifics")
	}
	*derived = res.Honorifics
	if res.Honorifics != "" {
		r.store.Set("honorifics", res.Honorifics)
	}
}

func (r *record) setCustomField(key string, value any) {
	if value == nil {
		r.putCustom(key, nil)
		return
	}
	r.putCustom(key, normalize.CustomFieldValue(value))
}

// setCustomData stores every value as given; nil removes the key.
func (r *record) setCustomData(data map[string]any) {
	for k, v := range data {
		r.putCustom(k, v)
	}
}

func (r *record) putCustom(key string, value any) {
	bag, _ := r.store.Submap(customDataKey)
	if value == nil {
		if bag == nil {
			return
		}
		delete(bag, key)
		if len(bag) == 0 {
			r.store.Remove(customDataKey)
		}
		return
	}
	if bag == nil {
		bag = map[string]any{}
		r.store.SetKey(customDataKey, bag)
	}
	bag[key] = value
}

func (r *record) customField(key string) any {
	bag, _ := r.store.Submap(customDataKey)
	return bag[key]
}

func (r *record) customData() map[string]any {
	bag, _ := r.store.Submap(customDataKey)
	return bag
}

// mapper is implemented by every container.
type mapper interface {
	comparable
	ToMap() map[string]any
}

// ensure returns *slot, creating it with create and mirroring it into
// store under key on first use.
func ensure[P mapper](store *dotpath.Store, key string, slot *P, create func() P) P {
	var zero P
	if *slot == zero {
		*slot = create()
		store.SetKey(key, (*slot).ToMap())
	}
	return *slot
}

// attach replaces *slot with c and mirrors it into store under key.
func attach[P mapper](store *dotpath.Store, key string, slot *P, c P) {
	var zero P
	*slot = c
	if c == zero {
		store.Remove(key)
		return
	}
	store.SetKey(key, c.ToMap())
}
