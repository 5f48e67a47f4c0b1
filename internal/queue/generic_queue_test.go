package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewGenericQueue_Success tests the queue factory function.
func TestNewGenericQueue_Success(t *testing.T) {
	t.Parallel()

	q := NewGenericQueue[string]()

	assert.NotNil(t, q)
	assert.Empty(t, q.items)
	assert.Empty(t, q.success)
	assert.Empty(t, q.skipped)
	assert.NotNil(t, q.inProgress)
	assert.Equal(t, 0, q.head)
	assert.False(t, q.hasStarted)
	assert.False(t, q.hasFinished)
}

// TestEnqueueDequeue_Success tests enqueueing and dequeueing.
func TestEnqueueDequeue_Success(t *testing.T) {
	t.Parallel()

	q := NewGenericQueue[string]()

	q.Enqueue("item1", "item2", "item3")

	assert.Len(t, q.items, 3)
	assert.Equal(t, []string{"item1", "item2", "item3"}, q.items)

	item, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "item1", item)

	item, ok = q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "item2", item)

	item, ok = q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "item3", item)

	item, ok = q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, "", item)
}

// TestHasRemainingItems_Success tests for remaining items.
func TestHasRemainingItems_Success(t *testing.T) {
	t.Parallel()

	q := NewGenericQueue[int]()

	assert.False(t, q.HasRemainingItems())

	q.Enqueue(1, 2, 3)

	assert.True(t, q.HasRemainingItems())

	q.Dequeue()
	q.Dequeue()
	q.Dequeue()

	assert.False(t, q.HasRemainingItems())
}

// TestSetSuccessSkipped_Success tests the success and skipped bookkeeping.
func TestSetSuccessSkipped_Success(t *testing.T) {
	t.Parallel()

	q := NewGenericQueue[int]()

	q.Enqueue(1, 2, 3)

	q.SetProcessing(1, 2)
	assert.Len(t, q.inProgress, 2)

	q.SetSuccess(1)
	q.SetSkipped(2)

	assert.Empty(t, q.inProgress)
	assert.Equal(t, []int{1}, q.GetSuccessful())
	assert.Equal(t, []int{2}, q.GetSkipped())

	// Verify we get a copy, not a reference.
	success := q.GetSuccessful()
	success[0] = 999
	assert.Equal(t, []int{1}, q.GetSuccessful())
}

// TestProgress_Success tests the progress statistics of a queue.
func TestProgress_Success(t *testing.T) {
	t.Parallel()

	q := NewGenericQueue[int]()

	progress := q.Progress()
	assert.False(t, progress.HasStarted)
	assert.Equal(t, 0, progress.TotalItems)

	q.Enqueue(1, 2)

	item, ok := q.Dequeue()
	require.True(t, ok)
	q.SetProcessing(item)
	q.SetSuccess(item)

	progress = q.Progress()
	assert.True(t, progress.HasStarted)
	assert.False(t, progress.HasFinished)
	assert.Equal(t, 2, progress.TotalItems)
	assert.Equal(t, 1, progress.ProcessedItems)
	assert.Equal(t, 1, progress.SuccessItems)
	assert.InDelta(t, 50.0, progress.ProgressPct, 0.01)

	item, ok = q.Dequeue()
	require.True(t, ok)
	q.SetProcessing(item)
	q.SetSkipped(item)

	progress = q.Progress()
	assert.True(t, progress.HasFinished)
	assert.Equal(t, 2, progress.ProcessedItems)
	assert.Equal(t, 1, progress.SkippedItems)
	assert.InDelta(t, 100.0, progress.ProgressPct, 0.01)
}

// TestDequeueAndProcess_Success tests sequential queue processing.
func TestDequeueAndProcess_Success(t *testing.T) {
	t.Parallel()

	q := NewGenericQueue[int]()
	q.Enqueue(1, 2, 3, 4)

	var order []int

	err := q.DequeueAndProcess(context.Background(), func(item int) int {
		order = append(order, item)

		if item%2 == 0 {
			return DecisionSkipped
		}

		return DecisionSuccess
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4}, order, "processing should be strictly sequential")
	assert.Equal(t, []int{1, 3}, q.GetSuccessful())
	assert.Equal(t, []int{2, 4}, q.GetSkipped())
}

// TestDequeueAndProcess_Fail_Canceled tests cancellation during processing.
func TestDequeueAndProcess_Fail_Canceled(t *testing.T) {
	t.Parallel()

	q := NewGenericQueue[int]()
	q.Enqueue(1, 2, 3)

	ctx, cancel := context.WithCancel(context.Background())

	processed := 0

	err := q.DequeueAndProcess(ctx, func(_ int) int {
		processed++
		cancel()

		return DecisionSuccess
	})
	require.Error(t, err)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, processed, "no further items should process after cancellation")
}
