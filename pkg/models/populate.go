package models

import (
	"sort"

	"github.com/ameax/json-import-api-go/pkg/normalize"
)

// fieldRule resolves one canonical field from heterogeneous input. Key is
// tried first, then each alias in order; the first non-nil value wins.
type fieldRule struct {
	Key     string
	Aliases []string
	Apply   func(v any) error
}

func (r fieldRule) keys() []string {
	return append([]string{r.Key}, r.Aliases...)
}

func (r fieldRule) resolve(data map[string]any) (any, bool) {
	for _, k := range r.keys() {
		if v, ok := data[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// flatField maps a legacy top-level key onto a key inside a nested object.
type flatField struct {
	Legacy    string
	Canonical string
}

// nestedRule converges a nested object under Key with legacy flat keys
// found beside it. Values in the nested object take precedence.
type nestedRule struct {
	Key   string
	Flat  []flatField
	Apply func(m map[string]any) error
}

func (r nestedRule) keys() []string {
	keys := []string{r.Key}
	for _, f := range r.Flat {
		keys = append(keys, f.Legacy)
	}
	return keys
}

func (r nestedRule) collect(data map[string]any) (map[string]any, bool) {
	m := map[string]any{}
	found := false
	if nested, ok := data[r.Key].(map[string]any); ok {
		for k, v := range nested {
			m[k] = v
		}
		found = true
	}
	for _, f := range r.Flat {
		v, ok := data[f.Legacy]
		if !ok || v == nil {
			continue
		}
		if existing, ok := m[f.Canonical]; ok && existing != nil {
			continue
		}
		m[f.Canonical] = v
		found = true
	}
	return m, found
}

// populator applies field rules, then nested rules, then hands every
// unclaimed key to Passthrough. A nil Passthrough drops unclaimed keys.
type populator struct {
	Fields      []fieldRule
	Nested      []nestedRule
	Passthrough func(key string, v any)
}

func (p populator) run(data map[string]any) error {
	claimed := map[string]bool{}

	for _, rule := range p.Fields {
		for _, k := range rule.keys() {
			claimed[k] = true
		}
		v, ok := rule.resolve(data)
		if !ok {
			continue
		}
		if err := rule.Apply(v); err != nil {
			return err
		}
	}

	for _, rule := range p.Nested {
		for _, k := range rule.keys() {
			claimed[k] = true
		}
		m, ok := rule.collect(data)
		if !ok {
			continue
		}
		if err := rule.Apply(m); err != nil {
			return err
		}
	}

	if p.Passthrough == nil {
		return nil
	}
	rest := make([]string, 0, len(data))
	for k, v := range data {
		if !claimed[k] && v != nil {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		p.Passthrough(k, data[k])
	}
	return nil
}

// stringRule builds a rule whose value is stringified before set is called.
func stringRule(key string, set func(string), aliases ...string) fieldRule {
	return fieldRule{
		Key:     key,
		Aliases: aliases,
		Apply: func(v any) error {
			set(normalize.Stringify(v))
			return nil
		},
	}
}

// checkedStringRule is stringRule for setters that can fail.
func checkedStringRule(key string, set func(string) error, aliases ...string) fieldRule {
	return fieldRule{
		Key:     key,
		Aliases: aliases,
		Apply: func(v any) error {
			return set(normalize.Stringify(v))
		},
	}
}

// valueRule passes the raw value to set.
func valueRule(key string, set func(any), aliases ...string) fieldRule {
	return fieldRule{
		Key:     key,
		Aliases: aliases,
		Apply: func(v any) error {
			set(v)
			return nil
		},
	}
}

// customDataRule applies a custom_data object through set.
func customDataRule(set func(map[string]any)) fieldRule {
	return fieldRule{
		Key: customDataKey,
		Apply: func(v any) error {
			if m, ok := v.(map[string]any); ok {
				set(m)
			}
			return nil
		},
	}
}
