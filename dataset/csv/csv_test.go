package csv

import (
	"strings"
	"testing"

	"github.com/sapling-ml/sapling/exemplar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orAttributes() []*exemplar.Attribute {
	return []*exemplar.Attribute{
		exemplar.NewAttribute("x1", []string{"0", "1"}),
		exemplar.NewAttribute("x2", []string{"0", "1"}),
	}
}

// TestReadExemplars checks exemplars are parsed from a CSV stream
// with the header deciding column order.
func TestReadExemplars(t *testing.T) {
	stream := strings.NewReader(`x1,y,x2
0,0,0
0,1,1
1,1,0
1,1,1
`)
	exemplars, err := ReadExemplars(stream, orAttributes(), "y")
	require.NoError(t, err)
	require.Len(t, exemplars, 4)

	first := exemplars[0]
	v, ok := first.ValueFor("x1")
	require.True(t, ok)
	assert.Equal(t, "0", v)
	v, ok = first.ValueFor("x2")
	require.True(t, ok)
	assert.Equal(t, "0", v)
	assert.Equal(t, "0", first.Label())

	assert.Equal(t, "1", exemplars[3].Label())
}

// TestReadExemplarsByRow checks the per-row callback can stop the
// parsing early.
func TestReadExemplarsByRow(t *testing.T) {
	stream := strings.NewReader(`x1,x2,y
0,0,0
0,1,1
1,0,1
`)
	var rows []int
	err := ReadExemplarsByRow(stream, orAttributes(), "y", func(row int, e exemplar.Exemplar) (bool, error) {
		rows = append(rows, row)
		return len(rows) < 2, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, rows, "row numbers count from the line after the header")
}

// TestReadExemplarsErrors checks malformed streams are rejected with
// a descriptive error.
func TestReadExemplarsErrors(t *testing.T) {
	for name, stream := range map[string]string{
		"empty stream":       "",
		"unknown attribute":  "x1,x3,y\n0,0,0\n",
		"missing label":      "x1,x2\n0,0\n",
		"value out of range": "x1,x2,y\n0,2,0\n",
		"short row":          "x1,x2,y\n0,0\n",
	} {
		_, err := ReadExemplars(strings.NewReader(stream), orAttributes(), "y")
		assert.Error(t, err, "stream with %s should not parse", name)
	}
}
