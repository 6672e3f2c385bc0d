package queue

import (
	"fmt"

	"github.com/sapling-ml/sapling/dataset"
	"github.com/sapling-ml/sapling/tree"
)

// Task represents a pending subtree of a growing tree.
type Task struct {
	// An ID to identify the task on the queue
	ID string
	// The partition of training data whose exemplars
	// satisfied the attribute values on the path from
	// the root down to this subtree.
	Dataset dataset.Dataset
	// The attribute names that can still be used
	// to split the partition. It excludes the
	// attributes tested on ancestor nodes.
	Attributes []string
	// Attach places the finished node of the subtree
	// at its slot on the tree under construction.
	Attach func(tree.Node)
}

func (t *Task) String() string {
	return fmt.Sprintf("{Task %s}", t.ID)
}
