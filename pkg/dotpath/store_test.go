package dotpath_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameax/json-import-api-go/pkg/dotpath"
)

func TestStore_SetGet(t *testing.T) {
	s := dotpath.New()
	s.Set("a.b.c", 42)

	assert.Equal(t, 42, s.Get("a.b.c", nil))
	assert.True(t, s.Has("a.b.c"))
	assert.True(t, s.Has("a.b"))
	assert.Equal(t, map[string]any{"a": map[string]any{"b": map[string]any{"c": 42}}}, s.Map())
}

func TestStore_GetDefault(t *testing.T) {
	s := dotpath.New()
	s.Set("a", "scalar")

	tests := []struct {
		name string
		path string
	}{
		{name: "never set", path: "x.y"},
		{name: "through scalar", path: "a.b"},
		{name: "missing leaf", path: "a.b.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "default", s.Get(tt.path, "default"))
			assert.False(t, s.Has(tt.path))
		})
	}
}

func TestStore_NilIsAbsent(t *testing.T) {
	s := dotpath.New()
	s.Set("k", nil)

	assert.False(t, s.Has("k"))
	assert.Equal(t, "d", s.Get("k", "d"))
}

func TestStore_SetOverwritesScalarWithMap(t *testing.T) {
	s := dotpath.New()
	s.Set("a", "scalar")
	s.Set("a.b", 1)

	assert.Equal(t, 1, s.Get("a.b", nil))
}

func TestStore_Remove(t *testing.T) {
	s := dotpath.New()
	s.Set("a.b.c", 1).Set("a.b.d", 2)

	s.Remove("a.b.c")
	assert.False(t, s.Has("a.b.c"))
	assert.True(t, s.Has("a.b.d"))

	// Missing paths are a no-op.
	assert.NotPanics(t, func() {
		s.Remove("x.y.z")
		s.Remove("a.b.d.e")
	})
	assert.True(t, s.Has("a.b.d"))
}

func TestStore_FromSharesMap(t *testing.T) {
	m := map[string]any{"name": "ACME"}
	s := dotpath.From(m)
	s.Set("address.locality", "Berlin")

	assert.Equal(t, "Berlin", m["address"].(map[string]any)["locality"])
	assert.Equal(t, 0, dotpath.From(nil).Len())
}

func TestStore_TypedGetters(t *testing.T) {
	s := dotpath.New()
	s.Set("s", "text").Set("i", 7).Set("f", 2.5).Set("whole", 3.0).Set("m.k", true)

	str, ok := s.String("s")
	assert.True(t, ok)
	assert.Equal(t, "text", str)

	i, ok := s.Int("i")
	assert.True(t, ok)
	assert.Equal(t, 7, i)

	i, ok = s.Int("whole")
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = s.Int("f")
	assert.False(t, ok)

	f, ok := s.Float("i")
	assert.True(t, ok)
	assert.Equal(t, 7.0, f)

	sub, ok := s.Submap("m")
	assert.True(t, ok)
	assert.Equal(t, true, sub["k"])

	b, ok := s.Bool("m.k")
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = s.Bool("s")
	assert.False(t, ok)
}

func TestStore_SerializationIsStable(t *testing.T) {
	s := dotpath.New()
	s.Set("b", 1).Set("a.z", 2).Set("a.y", 3)

	first, err := json.Marshal(s.Map())
	require.NoError(t, err)
	second, err := json.Marshal(s.Map())
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.JSONEq(t, `{"a":{"y":3,"z":2},"b":1}`, string(first))
}
