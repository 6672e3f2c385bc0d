package sapling

import (
	"context"
	"testing"

	"github.com/sapling-ml/sapling/dataset"
	"github.com/sapling-ml/sapling/exemplar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPartition checks information gain for a split that fully
// separates an evenly distributed pair of labels: the parent entropy
// is 1 bit and the subsets are pure, so the gain is the full bit.
func TestNewPartition(t *testing.T) {
	ctx := context.Background()
	ds := dataset.New([]exemplar.Exemplar{
		exemplar.New(map[string]string{"a": "0"}, "no"),
		exemplar.New(map[string]string{"a": "0"}, "no"),
		exemplar.New(map[string]string{"a": "1"}, "yes"),
		exemplar.New(map[string]string{"a": "1"}, "yes"),
	})

	part, err := NewPartition(ctx, ds, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", part.Attribute)
	assert.Len(t, part.Subsets, 2)
	assert.InDelta(t, 1.0, part.Gain, 1e-9)
}

// TestNewPartitionSingleValue checks a split on an attribute with one
// observed value produces a single subset and zero gain.
func TestNewPartitionSingleValue(t *testing.T) {
	ctx := context.Background()
	ds := dataset.New([]exemplar.Exemplar{
		exemplar.New(map[string]string{"a": "0"}, "no"),
		exemplar.New(map[string]string{"a": "0"}, "yes"),
	})

	part, err := NewPartition(ctx, ds, "a")
	require.NoError(t, err)
	assert.Len(t, part.Subsets, 1)
	assert.InDelta(t, 0.0, part.Gain, 1e-9)
}

// TestBestPartitionTieBreak checks equal-gain attributes resolve to
// the lexicographically smallest name.
func TestBestPartitionTieBreak(t *testing.T) {
	ctx := context.Background()
	// b and a carry identical values, so their gains are identical.
	ds := dataset.New([]exemplar.Exemplar{
		exemplar.New(map[string]string{"b": "0", "a": "0"}, "no"),
		exemplar.New(map[string]string{"b": "1", "a": "1"}, "yes"),
	})

	part, err := bestPartition(ctx, ds, []string{"b", "a"})
	require.NoError(t, err)
	assert.Equal(t, "a", part.Attribute)
}

// TestBestPartitionPrefersInformativeAttribute checks the attribute
// separating the labels wins over an uninformative one.
func TestBestPartitionPrefersInformativeAttribute(t *testing.T) {
	ctx := context.Background()
	ds := dataset.New([]exemplar.Exemplar{
		exemplar.New(map[string]string{"noise": "0", "signal": "0"}, "no"),
		exemplar.New(map[string]string{"noise": "1", "signal": "0"}, "no"),
		exemplar.New(map[string]string{"noise": "0", "signal": "1"}, "yes"),
		exemplar.New(map[string]string{"noise": "1", "signal": "1"}, "yes"),
	})

	part, err := bestPartition(ctx, ds, []string{"noise", "signal"})
	require.NoError(t, err)
	assert.Equal(t, "signal", part.Attribute)
	assert.InDelta(t, 1.0, part.Gain, 1e-9)
}
