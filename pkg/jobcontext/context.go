package jobcontext

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type KeyContext string

var (
	keyJobID        KeyContext = "job_id"
	keyWorkerID     KeyContext = "worker_id"
	keyJobStartTime KeyContext = "job_start_time"
)

// jobTimeout bounds a single analysis job execution
const jobTimeout = 2 * time.Minute

// Begin derives a job-scoped context carrying job metadata and a timeout
// so a hung job cannot stall its worker forever
func Begin(parentCtx context.Context, jobID uuid.UUID, workerID int) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parentCtx, jobTimeout)

	ctx = context.WithValue(ctx, keyJobID, jobID)
	ctx = context.WithValue(ctx, keyWorkerID, workerID)
	ctx = context.WithValue(ctx, keyJobStartTime, time.Now())

	return ctx, cancel
}

// Run executes the job function with panic recovery. Retry bookkeeping
// lives in the jobs table, not here.
func Run(ctx context.Context, jobFunc func(context.Context) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic recovered: %v", p)
		}
	}()

	if ctx.Err() != nil {
		return fmt.Errorf("context cancelled before job execution: %w", ctx.Err())
	}

	return jobFunc(ctx)
}

// JobID extracts the job ID from context
func JobID(ctx context.Context) (uuid.UUID, bool) {
	jobID, ok := ctx.Value(keyJobID).(uuid.UUID)
	return jobID, ok
}

// WorkerID extracts the worker ID from context
func WorkerID(ctx context.Context) int {
	workerID, ok := ctx.Value(keyWorkerID).(int)
	if !ok {
		return -1
	}
	return workerID
}

// StartTime extracts the job start time from context
func StartTime(ctx context.Context) (time.Time, bool) {
	start, ok := ctx.Value(keyJobStartTime).(time.Time)
	return start, ok
}

// Elapsed returns how long the job has been running
func Elapsed(ctx context.Context) time.Duration {
	start, ok := StartTime(ctx)
	if !ok {
		return 0
	}
	return time.Since(start)
}
