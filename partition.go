package sapling

import (
	"context"
	"sort"

	"github.com/sapling-ml/sapling/dataset"
)

/*
Partition represents the split of a dataset by the observed values of
one attribute, with the information gain the split achieves on the
label distribution.
*/
type Partition struct {
	Attribute string
	Subsets   map[string]dataset.Dataset
	Gain      float64
}

/*
NewPartition takes a context.Context, a dataset and an attribute name
and returns the partition of the dataset by the values the exemplars
define for the attribute. The information gain is the entropy of the
dataset minus the size-weighted entropies of the subsets.
*/
func NewPartition(ctx context.Context, ds dataset.Dataset, attribute string) (*Partition, error) {
	gain, err := ds.Entropy(ctx)
	if err != nil {
		return nil, err
	}
	count, err := ds.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalCount := float64(count)
	subsets, err := ds.SplitOn(ctx, attribute)
	if err != nil {
		return nil, err
	}
	for _, subset := range subsets {
		subsetEntropy, err := subset.Entropy(ctx)
		if err != nil {
			return nil, err
		}
		subsetCount, err := subset.Count(ctx)
		if err != nil {
			return nil, err
		}
		gain -= subsetEntropy * float64(subsetCount) / totalCount
	}
	return &Partition{attribute, subsets, gain}, nil
}

// bestPartition returns the partition with maximum information gain
// among the given attributes. Candidates are evaluated in attribute
// name order and replace the running best only on strictly greater
// gain, so ties always resolve to the lexicographically smallest
// attribute name and growing is reproducible across runs.
func bestPartition(ctx context.Context, ds dataset.Dataset, attributes []string) (*Partition, error) {
	candidates := make([]string, len(attributes))
	copy(candidates, attributes)
	sort.Strings(candidates)
	var selected *Partition
	for _, attribute := range candidates {
		part, err := NewPartition(ctx, ds, attribute)
		if err != nil {
			return nil, err
		}
		if selected == nil || part.Gain > selected.Gain {
			selected = part
		}
	}
	return selected, nil
}
