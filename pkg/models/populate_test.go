package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldRule_Resolve(t *testing.T) {
	rule := fieldRule{Key: "route", Aliases: []string{"street"}}

	tests := []struct {
		name    string
		data    map[string]any
		want    any
		wantHit bool
	}{
		{name: "canonical", data: map[string]any{"route": "Main St"}, want: "Main St", wantHit: true},
		{name: "alias", data: map[string]any{"street": "Side St"}, want: "Side St", wantHit: true},
		{name: "canonical wins", data: map[string]any{"route": "Main St", "street": "Side St"}, want: "Main St", wantHit: true},
		{name: "nil canonical falls back", data: map[string]any{"route": nil, "street": "Side St"}, want: "Side St", wantHit: true},
		{name: "absent", data: map[string]any{"other": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rule.resolve(tt.data)
			assert.Equal(t, tt.wantHit, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNestedRule_Collect(t *testing.T) {
	rule := nestedRule{Key: "communications", Flat: communicationsFlat}

	tests := []struct {
		name      string
		data      map[string]any
		want      map[string]any
		wantFound bool
	}{
		{
			name:      "nested only",
			data:      map[string]any{"communications": map[string]any{"email": "a@b.com"}},
			want:      map[string]any{"email": "a@b.com"},
			wantFound: true,
		},
		{
			name:      "flat legacy keys",
			data:      map[string]any{"phone": "123", "mobile": "456", "fax": "789"},
			want:      map[string]any{"phone_number": "123", "mobile_phone": "456", "fax": "789"},
			wantFound: true,
		},
		{
			name: "nested takes precedence",
			data: map[string]any{
				"communications": map[string]any{"email": "nested@b.com"},
				"email":          "flat@b.com",
				"phone":          "123",
			},
			want:      map[string]any{"email": "nested@b.com", "phone_number": "123"},
			wantFound: true,
		},
		{
			name: "empty nested object",
			data: map[string]any{"communications": map[string]any{}},
			want: map[string]any{}, wantFound: true,
		},
		{
			name: "nothing",
			data: map[string]any{"name": "x"},
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := rule.collect(tt.data)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNestedRule_CollectDoesNotAliasInput(t *testing.T) {
	nested := map[string]any{"email": "a@b.com"}
	rule := nestedRule{Key: "communications", Flat: communicationsFlat}

	got, _ := rule.collect(map[string]any{"communications": nested, "phone": "1"})
	got["extra"] = true

	assert.NotContains(t, nested, "extra")
	assert.NotContains(t, nested, "phone_number")
}

func TestPopulator_Run(t *testing.T) {
	applied := map[string]any{}
	passed := map[string]any{}

	p := populator{
		Fields: []fieldRule{
			{Key: "a", Aliases: []string{"alpha"}, Apply: func(v any) error {
				applied["a"] = v
				return nil
			}},
		},
		Nested: []nestedRule{
			{Key: "n", Flat: []flatField{{Legacy: "flat", Canonical: "inner"}}, Apply: func(m map[string]any) error {
				applied["n"] = m
				return nil
			}},
		},
		Passthrough: func(k string, v any) { passed[k] = v },
	}

	err := p.run(map[string]any{
		"alpha":   1,
		"flat":    "x",
		"unknown": "kept",
		"skipped": nil,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"a": 1, "n": map[string]any{"inner": "x"}}, applied)
	assert.Equal(t, map[string]any{"unknown": "kept"}, passed)
}

func TestPopulator_RunStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	called := false

	p := populator{
		Fields: []fieldRule{
			{Key: "a", Apply: func(any) error { return boom }},
			{Key: "b", Apply: func(any) error {
				called = true
				return nil
			}},
		},
	}

	err := p.run(map[string]any{"a": 1, "b": 2})
	assert.ErrorIs(t, err, boom)
	assert.False(t, called)
}

func TestAliasTables(t *testing.T) {
	// The legacy spellings each container accepts on input.
	tests := []struct {
		name    string
		rules   []fieldRule
		key     string
		aliases []string
	}{
		{name: "address street", rules: NewAddress().populator().Fields, key: "route", aliases: []string{"street"}},
		{name: "communications phone", rules: NewCommunications().populator().Fields, key: "phone_number", aliases: []string{"phone"}},
		{name: "communications mobile", rules: NewCommunications().populator().Fields, key: "mobile_phone", aliases: []string{"mobile"}},
		{name: "contact first name", rules: NewContact().populator().Fields, key: "firstname", aliases: []string{"first_name"}},
		{name: "contact last name", rules: NewContact().populator().Fields, key: "lastname", aliases: []string{"last_name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, rule := range tt.rules {
				if rule.Key == tt.key {
					assert.Equal(t, tt.aliases, rule.Aliases)
					return
				}
			}
			t.Fatalf("no rule for %q", tt.key)
		})
	}
}
