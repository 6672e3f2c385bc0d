package dataset

import (
	"context"
	"math"
	"sort"

	"github.com/sapling-ml/sapling/exemplar"
)

const (
	exemplarCountThresholdForDatasetImplementation = 1000
)

/*
Dataset represents a collection of exemplars: a training partition.

Its Entropy method returns the base-2 entropy of the label distribution
of the partition: a measure of the disinformation we have on the labels
of exemplars that belong to it.

Its SplitOn method takes an attribute name and partitions the dataset by
the values the exemplars define for it, returning one sub-dataset per
observed value.

Its Exemplars method returns the exemplars it contains.
*/
type Dataset interface {
	Count(context.Context) (int, error)
	Exemplars(context.Context) ([]exemplar.Exemplar, error)
	CountLabels(context.Context) (map[string]int, error)
	Entropy(context.Context) (float64, error)
	AttributeValues(ctx context.Context, attribute string) ([]string, error)
	SplitOn(ctx context.Context, attribute string) (map[string]Dataset, error)
}

type attributeFilter struct {
	attribute string
	value     string
}

type memoryIntensiveSubsettingDataset struct {
	entropy   *float64
	exemplars []exemplar.Exemplar
}

type cpuIntensiveSubsettingDataset struct {
	entropy   *float64
	count     *int
	exemplars []exemplar.Exemplar
	filters   []attributeFilter
}

/*
New takes a slice of exemplars and returns a dataset built with them.
The dataset will be a CPU intensive one when the number of exemplars is
over exemplarCountThresholdForDatasetImplementation
*/
func New(exemplars []exemplar.Exemplar) Dataset {
	if len(exemplars) > exemplarCountThresholdForDatasetImplementation {
		return &cpuIntensiveSubsettingDataset{nil, nil, exemplars, nil}
	}
	return &memoryIntensiveSubsettingDataset{nil, exemplars}
}

/*
NewMemoryIntensive takes a slice of exemplars and returns a Dataset
built with them. A memory-intensive dataset is an implementation that
replicates the slice of exemplars when splitting to reduce
calculations at the cost of increased memory.
*/
func NewMemoryIntensive(exemplars []exemplar.Exemplar) Dataset {
	return &memoryIntensiveSubsettingDataset{nil, exemplars}
}

/*
NewCPUIntensive takes a slice of exemplars and returns a Dataset
built with them. A cpu-intensive dataset is an implementation that
instead of replicating the exemplars when splitting, stores the
applying attribute-value filters that define the subset and keeps the
same exemplar slice. This can achieve a drastic reduction in memory use
that comes at the cost of CPU time: every calculation that goes over
the exemplars of the dataset will apply the filters of the dataset
on all original exemplars (the ones provided to this method).
*/
func NewCPUIntensive(exemplars []exemplar.Exemplar) Dataset {
	return &cpuIntensiveSubsettingDataset{nil, nil, exemplars, nil}
}

/*
CheckSchema takes a context and a dataset and returns
ErrInconsistentSchema if the exemplars in the dataset do not all define
the same set of attribute names, or an error if the dataset cannot be
read.
*/
func CheckSchema(ctx context.Context, ds Dataset) error {
	exemplars, err := ds.Exemplars(ctx)
	if err != nil {
		return err
	}
	if len(exemplars) == 0 {
		return nil
	}
	names := exemplars[0].AttributeNames()
	for _, e := range exemplars[1:] {
		eNames := e.AttributeNames()
		if len(eNames) != len(names) {
			return ErrInconsistentSchema
		}
		for i, name := range names {
			if eNames[i] != name {
				return ErrInconsistentSchema
			}
		}
	}
	return nil
}

func (s *memoryIntensiveSubsettingDataset) Count(ctx context.Context) (int, error) {
	return len(s.exemplars), nil
}

func (s *cpuIntensiveSubsettingDataset) Count(ctx context.Context) (int, error) {
	if s.count != nil {
		return *s.count, nil
	}
	var length int
	err := s.iterateOnDataset(ctx, func(_ exemplar.Exemplar) (bool, error) {
		length++
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	s.count = &length
	return length, nil
}

func (s *memoryIntensiveSubsettingDataset) Exemplars(ctx context.Context) ([]exemplar.Exemplar, error) {
	return s.exemplars, nil
}

func (s *cpuIntensiveSubsettingDataset) Exemplars(ctx context.Context) ([]exemplar.Exemplar, error) {
	var exemplars []exemplar.Exemplar
	err := s.iterateOnDataset(ctx, func(e exemplar.Exemplar) (bool, error) {
		exemplars = append(exemplars, e)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return exemplars, nil
}

func (s *memoryIntensiveSubsettingDataset) CountLabels(ctx context.Context) (map[string]int, error) {
	result := make(map[string]int)
	for _, e := range s.exemplars {
		result[e.Label()]++
	}
	return result, nil
}

func (s *cpuIntensiveSubsettingDataset) CountLabels(ctx context.Context) (map[string]int, error) {
	result := make(map[string]int)
	err := s.iterateOnDataset(ctx, func(e exemplar.Exemplar) (bool, error) {
		result[e.Label()]++
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *memoryIntensiveSubsettingDataset) Entropy(ctx context.Context) (float64, error) {
	if s.entropy != nil {
		return *s.entropy, nil
	}
	labelCounts, err := s.CountLabels(ctx)
	if err != nil {
		return 0.0, err
	}
	result := entropyOf(labelCounts)
	s.entropy = &result
	return result, nil
}

func (s *cpuIntensiveSubsettingDataset) Entropy(ctx context.Context) (float64, error) {
	if s.entropy != nil {
		return *s.entropy, nil
	}
	labelCounts, err := s.CountLabels(ctx)
	if err != nil {
		return 0.0, err
	}
	result := entropyOf(labelCounts)
	s.entropy = &result
	return result, nil
}

func (s *memoryIntensiveSubsettingDataset) AttributeValues(ctx context.Context, attribute string) ([]string, error) {
	encountered := make(map[string]bool)
	for _, e := range s.exemplars {
		v, ok := e.ValueFor(attribute)
		if !ok {
			return nil, &MissingAttributeError{Attribute: attribute}
		}
		encountered[v] = true
	}
	return sortedKeys(encountered), nil
}

func (s *cpuIntensiveSubsettingDataset) AttributeValues(ctx context.Context, attribute string) ([]string, error) {
	encountered := make(map[string]bool)
	err := s.iterateOnDataset(ctx, func(e exemplar.Exemplar) (bool, error) {
		v, ok := e.ValueFor(attribute)
		if !ok {
			return false, &MissingAttributeError{Attribute: attribute}
		}
		encountered[v] = true
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return sortedKeys(encountered), nil
}

func (s *memoryIntensiveSubsettingDataset) SplitOn(ctx context.Context, attribute string) (map[string]Dataset, error) {
	subsets := make(map[string][]exemplar.Exemplar)
	for _, e := range s.exemplars {
		v, ok := e.ValueFor(attribute)
		if !ok {
			return nil, &MissingAttributeError{Attribute: attribute}
		}
		subsets[v] = append(subsets[v], e)
	}
	result := make(map[string]Dataset, len(subsets))
	for v, exemplars := range subsets {
		result[v] = &memoryIntensiveSubsettingDataset{nil, exemplars}
	}
	return result, nil
}

func (s *cpuIntensiveSubsettingDataset) SplitOn(ctx context.Context, attribute string) (map[string]Dataset, error) {
	values, err := s.AttributeValues(ctx, attribute)
	if err != nil {
		return nil, err
	}
	result := make(map[string]Dataset, len(values))
	for _, v := range values {
		filters := append([]attributeFilter{{attribute, v}}, s.filters...)
		result[v] = &cpuIntensiveSubsettingDataset{nil, nil, s.exemplars, filters}
	}
	return result, nil
}

func (s *cpuIntensiveSubsettingDataset) iterateOnDataset(ctx context.Context, lambda func(exemplar.Exemplar) (bool, error)) error {
	for _, e := range s.exemplars {
		if err := ctx.Err(); err != nil {
			return err
		}
		skip := false
		for _, f := range s.filters {
			v, ok := e.ValueFor(f.attribute)
			if !ok || v != f.value {
				skip = true
				break
			}
		}
		if !skip {
			ok, err := lambda(e)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
		}
	}
	return nil
}

// entropyOf returns the base-2 entropy of the given label distribution.
// A partition with at most one label has entropy exactly 0.
func entropyOf(labelCounts map[string]int) float64 {
	if len(labelCounts) <= 1 {
		return 0.0
	}
	var total float64
	for _, c := range labelCounts {
		total += float64(c)
	}
	var result float64
	for _, c := range labelCounts {
		p := float64(c) / total
		result -= p * math.Log2(p)
	}
	return result
}

func sortedKeys(m map[string]bool) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}
