package queue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mediscan-kh/mediscan/internal/entity"
	"github.com/mediscan-kh/mediscan/internal/repository"
)

type recordingImages struct {
	mu        sync.Mutex
	completed []string
	failed    []string
	won       bool
	honorCtx  bool // refuse writes on a done context, like a real database driver
}

func (r *recordingImages) Create(context.Context, uuid.UUID, string, string) (*entity.Image, error) {
	return nil, errors.New("not implemented")
}
func (r *recordingImages) GetByID(context.Context, uuid.UUID) (*entity.Image, error) {
	return nil, errors.New("not implemented")
}
func (r *recordingImages) ListByOwner(context.Context, uuid.UUID) ([]*entity.Image, error) {
	return nil, nil
}
func (r *recordingImages) List(context.Context, repository.ListImagesRequest) ([]*entity.ImageWithOwner, int, error) {
	return nil, 0, nil
}

func (r *recordingImages) CompleteAnalysis(ctx context.Context, _ uuid.UUID, text string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.honorCtx && ctx.Err() != nil {
		return false, ctx.Err()
	}
	r.completed = append(r.completed, text)
	return r.won, nil
}

func (r *recordingImages) MarkFailed(ctx context.Context, _ uuid.UUID, reason string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.honorCtx && ctx.Err() != nil {
		return false, ctx.Err()
	}
	r.failed = append(r.failed, reason)
	return true, nil
}

func (r *recordingImages) failedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.failed)
}

type recordingJobs struct {
	mu        sync.Mutex
	running   []int
	retrying  []int
	succeeded []int
	exhausted []int
	pending   []*entity.AnalysisJob
	honorCtx  bool
}

func (r *recordingJobs) reject(ctx context.Context) error {
	if r.honorCtx && ctx.Err() != nil {
		return ctx.Err()
	}
	return nil
}

func (r *recordingJobs) Create(context.Context, uuid.UUID, []byte) (*entity.AnalysisJob, error) {
	return nil, errors.New("not implemented")
}

func (r *recordingJobs) MarkRunning(ctx context.Context, _ uuid.UUID, attempt int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.reject(ctx); err != nil {
		return err
	}
	r.running = append(r.running, attempt)
	return nil
}

func (r *recordingJobs) MarkRetrying(ctx context.Context, _ uuid.UUID, attempts int, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.reject(ctx); err != nil {
		return err
	}
	r.retrying = append(r.retrying, attempts)
	return nil
}

func (r *recordingJobs) MarkSucceeded(ctx context.Context, _ uuid.UUID, attempts int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.reject(ctx); err != nil {
		return err
	}
	r.succeeded = append(r.succeeded, attempts)
	return nil
}

func (r *recordingJobs) MarkExhausted(ctx context.Context, _ uuid.UUID, attempts int, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.reject(ctx); err != nil {
		return err
	}
	r.exhausted = append(r.exhausted, attempts)
	return nil
}

func (r *recordingJobs) ListUnfinished(context.Context) ([]*entity.AnalysisJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending, nil
}

func (r *recordingJobs) exhaustedAttempts() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.exhausted...)
}

func (r *recordingJobs) succeededAttempts() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.succeeded...)
}

type countingAnalyzer struct {
	mu      sync.Mutex
	calls   int
	results []error // error per call, nil means success
	text    string
}

func (a *countingAnalyzer) AnalyzeImage(context.Context, []byte) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	idx := a.calls
	a.calls++
	if idx < len(a.results) && a.results[idx] != nil {
		return "", a.results[idx]
	}
	return a.text, nil
}

func (a *countingAnalyzer) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJob() Job {
	return Job{
		JobID:       uuid.New(),
		ImageID:     uuid.New(),
		Payload:     []byte("jpeg"),
		SubmittedAt: time.Now().UTC(),
	}
}

func TestWorkerQueue_ExhaustsAfterMaxAttempts(t *testing.T) {
	boom := errors.New("model unavailable")
	analyzer := &countingAnalyzer{results: []error{boom, boom, boom, boom, boom}}
	images := &recordingImages{won: true}
	jobs := &recordingJobs{}

	q := NewWorkerQueue(analyzer, images, jobs, testLogger(),
		WithWorkers(1),
		WithBaseDelay(time.Millisecond),
		WithMaxAttempts(3),
	)
	defer q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), testJob()))

	require.Eventually(t, func() bool {
		return len(jobs.exhaustedAttempts()) == 1
	}, 5*time.Second, 10*time.Millisecond)

	require.Equal(t, []int{3}, jobs.exhaustedAttempts())
	require.Equal(t, 3, analyzer.callCount())
	require.Equal(t, 1, images.failedCount())
	require.Empty(t, jobs.succeededAttempts())
}

func TestWorkerQueue_SucceedsAfterRetry(t *testing.T) {
	analyzer := &countingAnalyzer{
		results: []error{errors.New("timeout"), nil},
		text:    "analysis text",
	}
	images := &recordingImages{won: true}
	jobs := &recordingJobs{}

	q := NewWorkerQueue(analyzer, images, jobs, testLogger(),
		WithWorkers(1),
		WithBaseDelay(time.Millisecond),
		WithMaxAttempts(3),
	)
	defer q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), testJob()))

	require.Eventually(t, func() bool {
		return len(jobs.succeededAttempts()) == 1
	}, 5*time.Second, 10*time.Millisecond)

	require.Equal(t, []int{2}, jobs.succeededAttempts())
	require.Equal(t, 2, analyzer.callCount())
	require.Zero(t, images.failedCount())
	require.Empty(t, jobs.exhaustedAttempts())
}

func TestWorkerQueue_LostRaceStillSucceeds(t *testing.T) {
	// record already finalized by the opportunistic path; the job still
	// counts as delivered
	analyzer := &countingAnalyzer{text: "late analysis"}
	images := &recordingImages{won: false}
	jobs := &recordingJobs{}

	q := NewWorkerQueue(analyzer, images, jobs, testLogger(), WithWorkers(1))
	defer q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), testJob()))

	require.Eventually(t, func() bool {
		return len(jobs.succeededAttempts()) == 1
	}, 5*time.Second, 10*time.Millisecond)
	require.Zero(t, images.failedCount())
}

func TestWorkerQueue_RecoverReplaysUnfinishedJobs(t *testing.T) {
	analyzer := &countingAnalyzer{text: "recovered analysis"}
	images := &recordingImages{won: true}
	jobs := &recordingJobs{
		pending: []*entity.AnalysisJob{
			{ID: uuid.New(), ImageID: uuid.New(), Payload: []byte("a")},
			{ID: uuid.New(), ImageID: uuid.New(), Payload: []byte("b")},
		},
	}

	q := NewWorkerQueue(analyzer, images, jobs, testLogger(), WithWorkers(2))
	defer q.Shutdown(context.Background())

	require.NoError(t, q.Recover(context.Background()))

	require.Eventually(t, func() bool {
		return len(jobs.succeededAttempts()) == 2
	}, 5*time.Second, 10*time.Millisecond)
	require.Equal(t, 2, analyzer.callCount())
}

func TestWorkerQueue_EnqueueAfterShutdownIsDropped(t *testing.T) {
	analyzer := &countingAnalyzer{text: "x"}
	images := &recordingImages{won: true}
	jobs := &recordingJobs{}

	q := NewWorkerQueue(analyzer, images, jobs, testLogger(), WithWorkers(1))
	q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), testJob()))
	require.Zero(t, analyzer.callCount())
}

// stallingAnalyzer parks every call until release is closed, honoring the
// attempt context like a real HTTP client.
type stallingAnalyzer struct {
	started chan struct{}
	release chan struct{}
}

func (a *stallingAnalyzer) AnalyzeImage(ctx context.Context, _ []byte) (string, error) {
	select {
	case a.started <- struct{}{}:
	default:
	}
	select {
	case <-a.release:
		return "late result", nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func TestWorkerQueue_FinalizesPastExpiredAttemptDeadline(t *testing.T) {
	// the attempt dies by deadline, and the fakes refuse writes on a done
	// context the way ent/pgx do; the terminal state must still land
	analyzer := &stallingAnalyzer{started: make(chan struct{}, 1), release: make(chan struct{})}
	images := &recordingImages{won: true, honorCtx: true}
	jobs := &recordingJobs{honorCtx: true}

	q := NewWorkerQueue(analyzer, images, jobs, testLogger(),
		WithWorkers(1),
		WithProcessTimeout(50*time.Millisecond),
		WithBaseDelay(time.Millisecond),
		WithMaxAttempts(1),
	)
	defer q.Shutdown(context.Background())
	defer close(analyzer.release)

	require.NoError(t, q.Enqueue(context.Background(), testJob()))

	require.Eventually(t, func() bool {
		return len(jobs.exhaustedAttempts()) == 1
	}, 5*time.Second, 10*time.Millisecond)
	require.Equal(t, []int{1}, jobs.exhaustedAttempts())
	require.Equal(t, 1, images.failedCount())
}

func TestWorkerQueue_RetryStateSurvivesExpiredAttemptDeadline(t *testing.T) {
	analyzer := &stallingAnalyzer{started: make(chan struct{}, 2), release: make(chan struct{})}
	images := &recordingImages{won: true, honorCtx: true}
	jobs := &recordingJobs{honorCtx: true}

	q := NewWorkerQueue(analyzer, images, jobs, testLogger(),
		WithWorkers(1),
		WithProcessTimeout(50*time.Millisecond),
		WithBaseDelay(time.Millisecond),
		WithMaxAttempts(3),
	)
	defer q.Shutdown(context.Background())
	defer close(analyzer.release)

	require.NoError(t, q.Enqueue(context.Background(), testJob()))

	// the first timed-out attempt must be parked durably, not dropped
	require.Eventually(t, func() bool {
		jobs.mu.Lock()
		defer jobs.mu.Unlock()
		return len(jobs.retrying) >= 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWorkerQueue_ShutdownReleasesBackpressuredEnqueue(t *testing.T) {
	analyzer := &stallingAnalyzer{started: make(chan struct{}, 4), release: make(chan struct{})}
	images := &recordingImages{won: true}
	jobs := &recordingJobs{}

	q := NewWorkerQueue(analyzer, images, jobs, testLogger(),
		WithWorkers(1),
		WithQueueSize(1),
	)

	// first job occupies the worker, second fills the buffer
	require.NoError(t, q.Enqueue(context.Background(), testJob()))
	<-analyzer.started
	require.NoError(t, q.Enqueue(context.Background(), testJob()))

	blocked := make(chan struct{})
	go func() {
		defer close(blocked)
		_ = q.Enqueue(context.Background(), testJob()) // no free slot
	}()

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		q.Shutdown(context.Background())
	}()

	select {
	case <-blocked:
	case <-time.After(5 * time.Second):
		t.Fatal("backpressured enqueue still blocked after shutdown started")
	}

	close(analyzer.release)
	select {
	case <-shutdownDone:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not complete")
	}
}

func TestRedeliveryDelay_DoublesPerAttempt(t *testing.T) {
	q := NewWorkerQueue(&countingAnalyzer{}, &recordingImages{}, &recordingJobs{}, testLogger(),
		WithBaseDelay(2*time.Second))
	defer q.Shutdown(context.Background())

	require.Equal(t, 2*time.Second, q.redeliveryDelay(1))
	require.Equal(t, 4*time.Second, q.redeliveryDelay(2))
	require.Equal(t, 8*time.Second, q.redeliveryDelay(3))
}
