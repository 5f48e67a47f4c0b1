// Package queue provides progress-tracked work queues for the scanning
// pipeline. Probing is strictly sequential; the queue exists for cancellation,
// bookkeeping and progress statistics, not for parallelism.
package queue

import "time"

// Progress holds point-in-time statistics of a queue's processing state.
type Progress struct {
	HasStarted  bool
	HasFinished bool

	StartTime  time.Time
	FinishTime time.Time

	ProgressPct float64

	TotalItems      int
	ProcessedItems  int
	InProgressItems int
	SuccessItems    int
	SkippedItems    int

	ETA      time.Time
	TimeLeft time.Duration

	Speed     float64
	SpeedUnit string
}
