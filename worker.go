package sapling

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sapling-ml/sapling/dataset"
	"github.com/sapling-ml/sapling/queue"
	"github.com/sapling-ml/sapling/tree"
)

// Planting is a tree under construction. Workers attach finished
// subtrees to it while processing tasks from a queue; once the queue
// drains, Tree returns the grown tree.
//
// Growing concurrently yields the same tree as Grow on the same
// dataset: attribute selection is deterministic per partition and
// independent subtrees share no state beyond their slot on the parent.
type Planting struct {
	attributes []string
	mu         sync.Mutex
	root       tree.Node
	nextID     uint64
}

/*
Seed takes a context, a dataset, a slice of attribute names and a queue
and sets everything up so that workers that consume from the queue
afterwards grow a tree that predicts the dataset's labels using the
given attributes. Specifically it checks the dataset can be grown from
and pushes the task to develop the root of the tree onto the queue.

It returns the planting the workers will fill in, or an error if the
dataset is not growable or the task cannot be pushed.
*/
func Seed(ctx context.Context, ds dataset.Dataset, attributes []string, q queue.Queue) (*Planting, error) {
	err := checkGrowable(ctx, ds)
	if err != nil {
		return nil, err
	}
	attrs := make([]string, len(attributes))
	copy(attrs, attributes)
	p := &Planting{attributes: attrs}
	task := p.newTask(ds, attrs, func(n tree.Node) {
		p.mu.Lock()
		p.root = n
		p.mu.Unlock()
	})
	err = q.Push(ctx, task)
	if err != nil {
		return nil, err
	}
	return p, nil
}

/*
Tree returns the grown tree, or an error if the root has not been
developed yet, that is, if the workers have not drained the queue.
*/
func (p *Planting) Tree() (*tree.Tree, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.root == nil {
		return nil, fmt.Errorf("planting has no root node: growing has not finished")
	}
	return tree.New(p.root, p.attributes), nil
}

func (p *Planting) newTask(ds dataset.Dataset, attributes []string, attach func(tree.Node)) *queue.Task {
	id := atomic.AddUint64(&p.nextID, 1)
	return &queue.Task{
		ID:         strconv.FormatUint(id, 10),
		Dataset:    ds,
		Attributes: attributes,
		Attach:     attach,
	}
}

// Work takes a context, a planting, a queue and an emptyQueueSleep
// duration and enters a loop in which it:
//   - pulls a task from the queue,
//   - develops its subtree one step, attaching the resulting leaf or
//     decision node and pushing tasks for the decision's children,
//   - marks the task as completed on the queue.
//
// If at some point no task can be pulled and the sum of tasks running
// and pending on the queue is 0, the worker ends returning nil. If no
// task can be pulled but the sum is not 0, the worker will sleep for
// the given emptyQueueSleep duration and then retry.
//
// Work will return a non-nil error if the given context times out or
// is cancelled, if developing a subtree fails or if an operation with
// the given queue returns a non-nil error.
func Work(ctx context.Context, p *Planting, q queue.Queue, emptyQueueSleep time.Duration) error {
	for {
		task, err := q.Pull(ctx)
		if err != nil {
			return err
		}
		if task == nil {
			pending, running, err := q.Count(ctx)
			if err != nil {
				return err
			}
			if pending+running == 0 {
				break
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(emptyQueueSleep):
			}
			continue
		}
		err = workTask(ctx, task, p, q)
		if err != nil {
			return err
		}
		err = ctx.Err()
		if err != nil {
			return err
		}
	}
	return nil
}

func workTask(ctx context.Context, task *queue.Task, p *Planting, q queue.Queue) error {
	defer func() {
		q.Drop(ctx, task.ID)
	}()
	leaf, part, err := step(ctx, task.Dataset, task.Attributes)
	if err != nil {
		return err
	}
	if leaf != nil {
		task.Attach(leaf)
		return q.Complete(ctx, task.ID)
	}
	remaining := withoutAttribute(task.Attributes, part.Attribute)
	d := &tree.Decision{
		Attribute: part.Attribute,
		Children:  make(map[string]tree.Node, len(part.Subsets)),
	}
	for value, subset := range part.Subsets {
		value := value
		st := p.newTask(subset, remaining, func(n tree.Node) {
			p.mu.Lock()
			d.Children[value] = n
			p.mu.Unlock()
		})
		err = q.Push(ctx, st)
		if err != nil {
			return err
		}
	}
	task.Attach(d)
	return q.Complete(ctx, task.ID)
}

/*
GrowConcurrently grows a tree like Grow but develops independent
subtrees in parallel with the given number of workers. It produces a
tree structurally identical to the one Grow returns for the same
dataset and attributes.
*/
func GrowConcurrently(ctx context.Context, ds dataset.Dataset, attributes []string, workers int) (*tree.Tree, error) {
	if workers < 1 {
		workers = 1
	}
	q := queue.New()
	defer q.Stop(ctx)
	p, err := Seed(ctx, ds, attributes, q)
	if err != nil {
		return nil, err
	}
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			errs <- Work(ctx, p, q, 10*time.Millisecond)
		}()
	}
	for i := 0; i < workers; i++ {
		werr := <-errs
		if werr != nil && err == nil {
			err = werr
		}
	}
	if err != nil {
		return nil, err
	}
	return p.Tree()
}
