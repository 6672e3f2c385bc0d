/*
Package sapling grows classification trees from labeled exemplars with
the ID3 algorithm and uses them to classify new instances.

Growing recursively partitions the training exemplars on the attribute
with maximum information gain until a partition is pure or no
attributes remain, producing an immutable tree.Tree of decision and
leaf nodes. The resulting tree predicts the label of unseen instances
by walking its decisions, and can be validated to reproduce its own
training set exactly.
*/
package sapling

import (
	"context"
	"sort"

	"github.com/sapling-ml/sapling/dataset"
	"github.com/sapling-ml/sapling/tree"
)

// Error represents an error related with growing trees
type Error string

/*
ErrNoExemplars is the error returned when asked to grow a tree from a
dataset with no exemplars: no leaf label can be chosen for it.
*/
const ErrNoExemplars = Error("cannot grow a tree from zero exemplars")

func (e Error) Error() string {
	return string(e)
}

/*
Grow takes a context, a dataset of training exemplars and the set of
attribute names to consider, and grows a classification tree that
predicts the exemplars' labels from those attributes.

It returns ErrNoExemplars if the dataset is empty,
dataset.ErrInconsistentSchema if the exemplars do not agree on the
attributes they define, and a dataset.MissingAttributeError if an
exemplar reaching a split does not define the split attribute. No
partial tree is ever returned alongside an error.
*/
func Grow(ctx context.Context, ds dataset.Dataset, attributes []string) (*tree.Tree, error) {
	err := checkGrowable(ctx, ds)
	if err != nil {
		return nil, err
	}
	root, err := grow(ctx, ds, attributes)
	if err != nil {
		return nil, err
	}
	return tree.New(root, attributes), nil
}

func checkGrowable(ctx context.Context, ds dataset.Dataset) error {
	count, err := ds.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNoExemplars
	}
	return dataset.CheckSchema(ctx, ds)
}

func grow(ctx context.Context, ds dataset.Dataset, attributes []string) (tree.Node, error) {
	leaf, part, err := step(ctx, ds, attributes)
	if err != nil {
		return nil, err
	}
	if leaf != nil {
		return leaf, nil
	}
	remaining := withoutAttribute(attributes, part.Attribute)
	children := make(map[string]tree.Node, len(part.Subsets))
	for value, subset := range part.Subsets {
		child, err := grow(ctx, subset, remaining)
		if err != nil {
			return nil, err
		}
		children[value] = child
	}
	return &tree.Decision{Attribute: part.Attribute, Children: children}, nil
}

// step performs a single growing step on a partition: it either
// resolves the partition to a leaf (pure labels, or no attributes left
// to test) or selects the partition of maximum information gain to
// branch on. Exactly one of the two results is non-nil.
func step(ctx context.Context, ds dataset.Dataset, attributes []string) (*tree.Leaf, *Partition, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	labelCounts, err := ds.CountLabels(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(labelCounts) == 1 {
		for label := range labelCounts {
			return &tree.Leaf{Label: label}, nil, nil
		}
	}
	if len(attributes) == 0 {
		return &tree.Leaf{Label: majorityLabel(labelCounts)}, nil, nil
	}
	part, err := bestPartition(ctx, ds, attributes)
	if err != nil {
		return nil, nil, err
	}
	return nil, part, nil
}

// majorityLabel returns the most frequent label. Labels tied for the
// highest count resolve to the lexicographically smallest, so growing
// is reproducible across runs.
func majorityLabel(labelCounts map[string]int) string {
	labels := make([]string, 0, len(labelCounts))
	for label := range labelCounts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	var majority string
	var majorityCount int
	for _, label := range labels {
		if labelCounts[label] > majorityCount {
			majority = label
			majorityCount = labelCounts[label]
		}
	}
	return majority
}

func withoutAttribute(attributes []string, attribute string) []string {
	remaining := make([]string, 0, len(attributes)-1)
	for _, a := range attributes {
		if a != attribute {
			remaining = append(remaining, a)
		}
	}
	return remaining
}
