package exemplar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExemplar checks accessors against the values an exemplar was
// built with.
func TestExemplar(t *testing.T) {
	e := New(map[string]string{"outlook": "sunny", "windy": "false"}, "yes")

	v, ok := e.ValueFor("outlook")
	require.True(t, ok)
	assert.Equal(t, "sunny", v)

	_, ok = e.ValueFor("humidity")
	assert.False(t, ok)

	assert.Equal(t, "yes", e.Label())
	assert.Equal(t, []string{"outlook", "windy"}, e.AttributeNames())
	assert.Equal(t, "[outlook:sunny windy:false -> yes]", e.String())
}

// TestExemplarImmutable checks mutating the source map after New does
// not reach the exemplar.
func TestExemplarImmutable(t *testing.T) {
	source := map[string]string{"outlook": "sunny"}
	e := New(source, "yes")

	source["outlook"] = "rain"
	source["windy"] = "true"

	v, ok := e.ValueFor("outlook")
	require.True(t, ok)
	assert.Equal(t, "sunny", v)
	_, ok = e.ValueFor("windy")
	assert.False(t, ok)
}

// TestValues checks the bare mapping satisfies Sample lookups.
func TestValues(t *testing.T) {
	var _ Sample = Values{}

	v := Values{"outlook": "sunny"}
	value, ok := v.ValueFor("outlook")
	require.True(t, ok)
	assert.Equal(t, "sunny", value)
	_, ok = v.ValueFor("windy")
	assert.False(t, ok)
}

// TestAttributeValid checks values outside the declared domain are
// rejected with an error naming the attribute.
func TestAttributeValid(t *testing.T) {
	a := NewAttribute("outlook", []string{"sunny", "overcast", "rain"})

	assert.Equal(t, "outlook", a.Name())
	assert.Equal(t, []string{"sunny", "overcast", "rain"}, a.Values())

	ok, err := a.Valid("overcast")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.Valid("snowy")
	assert.False(t, ok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outlook")
}
