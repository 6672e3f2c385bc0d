package tree

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sapling-ml/sapling/dataset"
	"github.com/sapling-ml/sapling/exemplar"
)

/*
Tree represents a classification tree. It is composed of the root node
of the tree and the full set of attribute names that were available
when it was grown.

A tree exclusively owns its node graph and is immutable after growing:
it is safe to share across goroutines for prediction.
*/
type Tree struct {
	Root       Node
	Attributes []string
}

/*
New takes a root Node and a slice of attribute names and returns a tree
with them. The attribute slice is copied and sorted.
*/
func New(root Node, attributes []string) *Tree {
	attrs := make([]string, len(attributes))
	copy(attrs, attributes)
	sort.Strings(attrs)
	return &Tree{Root: root, Attributes: attrs}
}

/*
Predict takes a sample and walks the tree from the root answering each
decision node with the sample's value for the tested attribute. It
returns the label of the leaf that is reached and true.

If at some decision node the sample defines no value for the tested
attribute, or defines a value that was never observed there during
growing, Predict returns the zero label and false: the tree makes no
claim for such samples rather than guessing.
*/
func (t *Tree) Predict(s exemplar.Sample) (string, bool) {
	if t == nil || t.Root == nil {
		return "", false
	}
	n := t.Root
	for {
		switch node := n.(type) {
		case *Leaf:
			return node.Label, true
		case *Decision:
			v, ok := s.ValueFor(node.Attribute)
			if !ok {
				return "", false
			}
			child, ok := node.Children[v]
			if !ok {
				return "", false
			}
			n = child
		default:
			return "", false
		}
	}
}

/*
Validate takes a context and a dataset and returns true if the tree
reproduces the dataset exactly: for every exemplar, Predict on its
attributes returns its label. A prediction the tree declines to make
counts as a mismatch. An error is only returned if the dataset cannot
be read or the context expires, never for mismatches.
*/
func (t *Tree) Validate(ctx context.Context, ds dataset.Dataset) (bool, error) {
	exemplars, err := ds.Exemplars(ctx)
	if err != nil {
		return false, err
	}
	for _, e := range exemplars {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		label, ok := t.Predict(e)
		if !ok || label != e.Label() {
			return false, nil
		}
	}
	return true, nil
}

/*
Walk goes through the tree depth-first in pre-order, running the given
function with every traversed node. If the call to the function returns
an error, the walk is aborted and the error is returned.
*/
func (t *Tree) Walk(f func(Node) error) error {
	if t == nil || t.Root == nil {
		return nil
	}
	return walk(t.Root, f)
}

func walk(n Node, f func(Node) error) error {
	err := f(n)
	if err != nil {
		return err
	}
	if d, ok := n.(*Decision); ok {
		for _, v := range childValues(d) {
			err = walk(d.Children[v], f)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Tree) String() string {
	if t == nil || t.Root == nil {
		return ""
	}
	return nodeString(t.Root)
}

func nodeString(n Node) string {
	switch n := n.(type) {
	case *Leaf:
		return fmt.Sprintf("-> %s\n", n.Label)
	case *Decision:
		result := fmt.Sprintf("[%s]\n", n.Attribute)
		values := childValues(n)
		for i, v := range values {
			lines := strings.Split(nodeString(n.Children[v]), "\n")
			result = fmt.Sprintf("%s|__%s %s\n", result, v, lines[0])
			for _, line := range lines[1:] {
				if len(line) == 0 {
					continue
				}
				if i == len(values)-1 {
					result = fmt.Sprintf("%s   %s\n", result, line)
				} else {
					result = fmt.Sprintf("%s|  %s\n", result, line)
				}
			}
		}
		return result
	}
	return ""
}

func childValues(d *Decision) []string {
	values := make([]string, 0, len(d.Children))
	for v := range d.Children {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
