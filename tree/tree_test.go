package tree

import (
	"context"
	"strings"
	"testing"

	"github.com/sapling-ml/sapling/dataset"
	"github.com/sapling-ml/sapling/exemplar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orTree is the tree for a 2-input logical OR: x1=1 predicts 1,
// otherwise x2 decides.
func orTree() *Tree {
	return New(&Decision{
		Attribute: "x1",
		Children: map[string]Node{
			"0": &Decision{
				Attribute: "x2",
				Children: map[string]Node{
					"0": &Leaf{Label: "0"},
					"1": &Leaf{Label: "1"},
				},
			},
			"1": &Leaf{Label: "1"},
		},
	}, []string{"x1", "x2"})
}

// TestPredict checks traversal reaches the right leaves.
func TestPredict(t *testing.T) {
	tr := orTree()

	label, ok := tr.Predict(exemplar.Values{"x1": "0", "x2": "0"})
	require.True(t, ok)
	assert.Equal(t, "0", label)

	label, ok = tr.Predict(exemplar.Values{"x1": "1", "x2": "0"})
	require.True(t, ok)
	assert.Equal(t, "1", label)

	label, ok = tr.Predict(exemplar.Values{"x1": "1"})
	require.True(t, ok, "attributes below the reached leaf are not needed")
	assert.Equal(t, "1", label)
}

// TestPredictAbsent checks unseen values and undefined attributes
// yield no prediction instead of an error or a guess.
func TestPredictAbsent(t *testing.T) {
	tr := orTree()

	_, ok := tr.Predict(exemplar.Values{"x1": "0", "x2": "2"})
	assert.False(t, ok, "unseen value for a tested attribute")

	_, ok = tr.Predict(exemplar.Values{"x1": "2"})
	assert.False(t, ok, "unseen value at the root")

	_, ok = tr.Predict(exemplar.Values{"x2": "1"})
	assert.False(t, ok, "tested attribute not defined on the instance")

	_, ok = tr.Predict(exemplar.Values{})
	assert.False(t, ok, "empty instance on a decision root")
}

// TestPredictNilTree checks nil trees decline to predict.
func TestPredictNilTree(t *testing.T) {
	var tr *Tree
	_, ok := tr.Predict(exemplar.Values{"x1": "0"})
	assert.False(t, ok)
}

// TestValidate checks a tree against matching and mismatching sets.
func TestValidate(t *testing.T) {
	ctx := context.Background()
	tr := orTree()

	valid, err := tr.Validate(ctx, dataset.New([]exemplar.Exemplar{
		exemplar.New(map[string]string{"x1": "0", "x2": "0"}, "0"),
		exemplar.New(map[string]string{"x1": "0", "x2": "1"}, "1"),
		exemplar.New(map[string]string{"x1": "1", "x2": "0"}, "1"),
		exemplar.New(map[string]string{"x1": "1", "x2": "1"}, "1"),
	}))
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = tr.Validate(ctx, dataset.New([]exemplar.Exemplar{
		exemplar.New(map[string]string{"x1": "0", "x2": "0"}, "1"),
	}))
	require.NoError(t, err)
	assert.False(t, valid, "a wrong label is a mismatch")

	valid, err = tr.Validate(ctx, dataset.New([]exemplar.Exemplar{
		exemplar.New(map[string]string{"x1": "0", "x2": "5"}, "1"),
	}))
	require.NoError(t, err)
	assert.False(t, valid, "an absent prediction is a mismatch")
}

// TestWalk checks every node is visited exactly once, parents first.
func TestWalk(t *testing.T) {
	tr := orTree()

	var leaves, decisions int
	err := tr.Walk(func(n Node) error {
		switch n.(type) {
		case *Leaf:
			leaves++
		case *Decision:
			decisions++
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, leaves)
	assert.Equal(t, 2, decisions)
}

// TestString checks the rendering mentions every attribute, value and
// label of the tree.
func TestString(t *testing.T) {
	s := orTree().String()
	for _, fragment := range []string{"[x1]", "[x2]", "|__0", "|__1", "-> 0", "-> 1"} {
		assert.True(t, strings.Contains(s, fragment), "rendering should contain %q:\n%s", fragment, s)
	}
}

// TestInputsFor checks the assignments driving the tree to each label.
func TestInputsFor(t *testing.T) {
	tr := orTree()

	zero := InputsFor(tr, "0")
	require.Len(t, zero, 1)
	assert.Equal(t, exemplar.Values{"x1": "0", "x2": "0"}, zero[0])

	one := InputsFor(tr, "1")
	require.Len(t, one, 2)
	assert.Contains(t, one, exemplar.Values{"x1": "0", "x2": "1"})
	assert.Contains(t, one, exemplar.Values{"x1": "1"})

	assert.Empty(t, InputsFor(tr, "7"))
	assert.Empty(t, InputsFor(New(&Leaf{Label: "0"}, nil), "0"), "a leaf-only tree is unconstrained")
}
