package queue

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPushPullOrder checks tasks are pulled in the order they were
// pushed, through enough tasks to force the backing buffer to grow
// and wrap around.
func TestPushPullOrder(t *testing.T) {
	ctx := context.Background()
	q := New()
	defer q.Stop(ctx)

	for i := 0; i < 3; i++ {
		require.NoError(t, q.Push(ctx, &Task{ID: fmt.Sprintf("%d", i)}))
	}
	task, err := q.Pull(ctx)
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, "0", task.ID)
	require.NoError(t, q.Complete(ctx, task.ID))

	for i := 3; i < 10; i++ {
		require.NoError(t, q.Push(ctx, &Task{ID: fmt.Sprintf("%d", i)}))
	}
	for i := 1; i < 10; i++ {
		task, err = q.Pull(ctx)
		require.NoError(t, err)
		require.NotNil(t, task)
		assert.Equal(t, fmt.Sprintf("%d", i), task.ID)
		require.NoError(t, q.Complete(ctx, task.ID))
	}
}

// TestPullEmpty checks pulling from an empty queue yields no task and
// no error.
func TestPullEmpty(t *testing.T) {
	ctx := context.Background()
	q := New()
	defer q.Stop(ctx)

	task, err := q.Pull(ctx)
	require.NoError(t, err)
	assert.Nil(t, task)
}

// TestCount checks tasks move between the pending and running counts
// as they are pushed, pulled and completed.
func TestCount(t *testing.T) {
	ctx := context.Background()
	q := New()
	defer q.Stop(ctx)

	pending, running, err := q.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pending)
	assert.Equal(t, 0, running)

	require.NoError(t, q.Push(ctx, &Task{ID: "a"}))
	require.NoError(t, q.Push(ctx, &Task{ID: "b"}))
	pending, running, err = q.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, pending)
	assert.Equal(t, 0, running)

	_, err = q.Pull(ctx)
	require.NoError(t, err)
	pending, running, err = q.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
	assert.Equal(t, 1, running)

	require.NoError(t, q.Complete(ctx, "a"))
	pending, running, err = q.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
	assert.Equal(t, 0, running)
}

// TestDrop checks a dropped task goes back to pending and can be
// pulled again, while dropping an unknown ID changes nothing.
func TestDrop(t *testing.T) {
	ctx := context.Background()
	q := New()
	defer q.Stop(ctx)

	require.NoError(t, q.Push(ctx, &Task{ID: "a"}))
	task, err := q.Pull(ctx)
	require.NoError(t, err)
	require.NotNil(t, task)

	require.NoError(t, q.Drop(ctx, "a"))
	pending, running, err := q.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
	assert.Equal(t, 0, running)

	task, err = q.Pull(ctx)
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, "a", task.ID)

	require.NoError(t, q.Complete(ctx, "a"))
	require.NoError(t, q.Drop(ctx, "a"))
	pending, running, err = q.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pending)
	assert.Equal(t, 0, running, "dropping a completed task does not requeue it")
}

// TestWaitFor checks WaitFor returns once the queue is empty and
// honours cancellation while tasks remain.
func TestWaitFor(t *testing.T) {
	ctx := context.Background()
	q := New()
	defer q.Stop(ctx)

	require.NoError(t, WaitFor(ctx, q))

	require.NoError(t, q.Push(ctx, &Task{ID: "a"}))
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.Error(t, WaitFor(cancelled, q))
}
