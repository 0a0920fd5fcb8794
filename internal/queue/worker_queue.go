package queue

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/sethvargo/go-retry"

	"github.com/mediscan-kh/mediscan/internal/llm"
	"github.com/mediscan-kh/mediscan/internal/repository"
)

// WorkerQueue runs the analysis worker pool. Pool size bounds concurrent
// calls to the analysis capability; redelivery after a failed attempt is
// per-job scheduled, so a waiting retry never stalls other jobs.
type WorkerQueue struct {
	analyzer    llm.Analyzer
	images      repository.ImageRepository
	jobs        repository.AnalysisJobRepository
	logger      *slog.Logger
	workers     int
	timeout     time.Duration
	baseDelay   time.Duration
	maxAttempts int

	ch      chan Job
	done    chan struct{}
	wg      sync.WaitGroup
	senders sync.WaitGroup
	once    sync.Once

	mu     sync.Mutex
	closed bool
}

// stateWriteTimeout bounds the job-state and record writes that must land
// even after the attempt's own deadline has expired.
const stateWriteTimeout = 10 * time.Second

type Option func(*WorkerQueue)

func WithWorkers(n int) Option {
	return func(q *WorkerQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *WorkerQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *WorkerQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}
func WithBaseDelay(d time.Duration) Option {
	return func(q *WorkerQueue) {
		if d > 0 {
			q.baseDelay = d
		}
	}
}
func WithMaxAttempts(n int) Option {
	return func(q *WorkerQueue) {
		if n > 0 {
			q.maxAttempts = n
		}
	}
}

func NewWorkerQueue(
	analyzer llm.Analyzer,
	images repository.ImageRepository,
	jobs repository.AnalysisJobRepository,
	logger *slog.Logger,
	opts ...Option,
) *WorkerQueue {
	q := &WorkerQueue{
		analyzer:    analyzer,
		images:      images,
		jobs:        jobs,
		logger:      logger,
		workers:     4,
		timeout:     3 * time.Minute,
		baseDelay:   2 * time.Second,
		maxAttempts: 3,
		ch:          make(chan Job, 256),
		done:        make(chan struct{}),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *WorkerQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					q.process(workerID, job)
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// process runs exactly one delivery attempt. Failure either schedules a
// redelivery or finalizes the job as exhausted.
func (q *WorkerQueue) process(workerID int, job Job) {
	attempt := job.Attempt + 1
	runCtx, cancelRun := context.WithTimeout(context.Background(), q.timeout)
	defer cancelRun()

	if err := q.jobs.MarkRunning(runCtx, job.JobID, attempt); err != nil {
		q.logger.Warn("job state update failed", "worker_id", workerID, "job_id", job.JobID, "error", err)
	}

	text, err := q.analyzer.AnalyzeImage(runCtx, job.Payload)

	// finalization writes get their own deadline: the attempt context may
	// already be expired (that is the most common failure) and an expired
	// context must not take the terminal state down with it
	ctx, cancel := context.WithTimeout(context.WithoutCancel(runCtx), stateWriteTimeout)
	defer cancel()

	if err == nil {
		var won bool
		won, err = q.images.CompleteAnalysis(ctx, job.ImageID, text)
		if err == nil && !won {
			// the opportunistic path beat us to it; the job still succeeded
			q.logger.Info("record already finalized, analysis discarded",
				"worker_id", workerID, "job_id", job.JobID, "image_id", job.ImageID)
		}
	}

	if err == nil {
		if mErr := q.jobs.MarkSucceeded(ctx, job.JobID, attempt); mErr != nil {
			q.logger.Warn("job state update failed", "worker_id", workerID, "job_id", job.JobID, "error", mErr)
		}
		q.logger.Info("analyzed image successfully",
			"worker_id", workerID, "job_id", job.JobID, "image_id", job.ImageID, "attempt", attempt)
		return
	}

	if attempt >= q.maxAttempts {
		if mErr := q.jobs.MarkExhausted(ctx, job.JobID, attempt, err.Error()); mErr != nil {
			q.logger.Warn("job state update failed", "worker_id", workerID, "job_id", job.JobID, "error", mErr)
		}
		if _, mfErr := q.images.MarkFailed(ctx, job.ImageID, err.Error()); mfErr != nil {
			q.logger.Error("failed to mark record failed", "job_id", job.JobID, "image_id", job.ImageID, "error", mfErr)
		}
		q.logger.Error("job exhausted all attempts",
			"worker_id", workerID, "job_id", job.JobID, "image_id", job.ImageID,
			"attempts", attempt, "error", err)
		return
	}

	delay := q.redeliveryDelay(attempt)
	if mErr := q.jobs.MarkRetrying(ctx, job.JobID, attempt, err.Error()); mErr != nil {
		q.logger.Warn("job state update failed", "worker_id", workerID, "job_id", job.JobID, "error", mErr)
	}
	q.logger.Warn("attempt failed, redelivery scheduled",
		"worker_id", workerID, "job_id", job.JobID, "image_id", job.ImageID,
		"attempt", attempt, "delay", delay, "error", err)

	job.Attempt = attempt
	time.AfterFunc(delay, func() {
		// after shutdown the durable QUEUED row is recovered on next boot
		if err := q.Enqueue(context.Background(), job); err != nil {
			q.logger.Error("redelivery enqueue failed", "job_id", job.JobID, "error", err)
		}
	})
}

// redeliveryDelay returns the wait before redelivering a job whose attempt-th
// delivery just failed: baseDelay doubling per attempt (D, 2D, 4D, ...).
func (q *WorkerQueue) redeliveryDelay(attempt int) time.Duration {
	b := retry.NewExponential(q.baseDelay)
	var d time.Duration
	for i := 0; i < attempt; i++ {
		d, _ = b.Next()
	}
	return d
}

func (q *WorkerQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", job.JobID)
		return nil
	}
	q.senders.Add(1)
	q.mu.Unlock()
	defer q.senders.Done()

	select {
	case q.ch <- job:
		q.logger.Info("queued image for analysis", "job_id", job.JobID, "image_id", job.ImageID, "attempt", job.Attempt)
		return nil
	default:
	}

	// full queue: block outside the lock so shutdown and other enqueues
	// keep making progress; a closing queue releases us via done
	q.logger.Warn("queue full, applying backpressure", "job_id", job.JobID)
	select {
	case q.ch <- job:
		q.logger.Info("queued image for analysis", "job_id", job.JobID, "image_id", job.ImageID, "attempt", job.Attempt)
	case <-q.done:
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", job.JobID)
	}
	return nil
}

// Recover re-enqueues jobs left QUEUED or RUNNING by a previous process.
func (q *WorkerQueue) Recover(ctx context.Context) error {
	pending, err := q.jobs.ListUnfinished(ctx)
	if err != nil {
		return err
	}
	for _, j := range pending {
		job := Job{
			JobID:       j.ID,
			ImageID:     j.ImageID,
			Payload:     j.Payload,
			Attempt:     j.Attempts,
			SubmittedAt: j.EnqueuedAt,
		}
		if err := q.Enqueue(ctx, job); err != nil {
			return err
		}
	}
	if len(pending) > 0 {
		q.logger.Info("recovered unfinished jobs", "count", len(pending))
	}
	return nil
}

func (q *WorkerQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.done)
	q.mu.Unlock()

	// closed is set and done is closed, so no sender is still blocked on ch;
	// wait them out before closing the channel under their feet
	q.senders.Wait()
	close(q.ch)

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
