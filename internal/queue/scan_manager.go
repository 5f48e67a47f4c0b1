package queue

import (
	"context"

	"github.com/desertwitch/bomscan/internal/schema"
)

// ScanManager is the queue manager for probing operations. It wraps a single
// [GenericQueue] of [schema.Candidate]; a candidate counts as successful when
// its probe matched and as skipped otherwise (no match or probe failure).
//
// ScanManager is thread-safe and may be polled for [Progress] while another
// goroutine processes the queue.
type ScanManager struct {
	queue *GenericQueue[*schema.Candidate]
}

// NewScanManager returns a pointer to a new [ScanManager].
func NewScanManager() *ScanManager {
	return &ScanManager{
		queue: NewGenericQueue[*schema.Candidate](),
	}
}

// Enqueue adds [schema.Candidate](s) to the managed queue.
func (m *ScanManager) Enqueue(items ...*schema.Candidate) {
	m.queue.Enqueue(items...)
}

// Process sequentially probes all enqueued candidates using the given
// processFunc. An error is only returned on context cancellation.
func (m *ScanManager) Process(ctx context.Context, processFunc func(*schema.Candidate) int) error {
	return m.queue.DequeueAndProcess(ctx, processFunc)
}

// GetMatched returns all candidates whose probe matched.
func (m *ScanManager) GetMatched() []*schema.Candidate {
	return m.queue.GetSuccessful()
}

// Progress returns the [Progress] of the [ScanManager].
func (m *ScanManager) Progress() Progress {
	return m.queue.Progress()
}
