package yaml

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadAttributes checks attributes and their value domains are
// parsed from a metadata document, with scalar values rendered as
// strings.
func TestReadAttributes(t *testing.T) {
	metadata := []byte(`
attributes:
  outlook:
    - sunny
    - overcast
    - rain
  windy:
    - true
    - false
  temperature:
    - 64
    - 72
    - 85
`)
	attributes, err := ReadAttributes(metadata)
	require.NoError(t, err)
	require.Len(t, attributes, 3)

	sort.Slice(attributes, func(i, j int) bool {
		return attributes[i].Name() < attributes[j].Name()
	})
	assert.Equal(t, "outlook", attributes[0].Name())
	assert.Equal(t, []string{"sunny", "overcast", "rain"}, attributes[0].Values())
	assert.Equal(t, "temperature", attributes[1].Name())
	assert.Equal(t, []string{"64", "72", "85"}, attributes[1].Values())
	assert.Equal(t, "windy", attributes[2].Name())
	assert.Equal(t, []string{"true", "false"}, attributes[2].Values())
}

// TestReadAttributesErrors checks documents without usable attribute
// information are rejected.
func TestReadAttributesErrors(t *testing.T) {
	for name, metadata := range map[string]string{
		"not YAML":             "attributes:\n\t- outlook",
		"no attributes":        "features:\n  outlook:\n    - sunny\n",
		"attribute w/o values": "attributes:\n  outlook: []\n",
	} {
		_, err := ReadAttributes([]byte(metadata))
		assert.Error(t, err, "metadata with %s should not parse", name)
	}
}

// TestReadAttributesFromFile checks a missing file yields an error.
func TestReadAttributesFromFile(t *testing.T) {
	_, err := ReadAttributesFromFile("testdata/does-not-exist.yml")
	assert.Error(t, err)
}
