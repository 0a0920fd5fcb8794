package uploads

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mediscan-kh/mediscan/constants"
	"github.com/mediscan-kh/mediscan/internal/common"
	"github.com/mediscan-kh/mediscan/internal/entity"
	"github.com/mediscan-kh/mediscan/internal/queue"
	"github.com/mediscan-kh/mediscan/internal/quota"
	"github.com/mediscan-kh/mediscan/internal/repository"
)

// ---- fakes ----

type fakeUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUsers(users ...*entity.User) *fakeUsers {
	r := &fakeUsers{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, common.UserNotFoundError(nil)
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUsers) IncrementUploadCountIfBelow(_ context.Context, id uuid.UUID, limit int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.UploadCount >= limit {
		return false, nil
	}
	u.UploadCount++
	return true, nil
}

func (r *fakeUsers) uploadCount(id uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id].UploadCount
}

type fakeImages struct {
	mu      sync.Mutex
	records map[uuid.UUID]*entity.Image
}

func newFakeImages() *fakeImages {
	return &fakeImages{records: make(map[uuid.UUID]*entity.Image)}
}

func (r *fakeImages) Create(_ context.Context, userID uuid.UUID, url, description string) (*entity.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	img := &entity.Image{
		ID:          uuid.New(),
		UserID:      userID,
		URL:         url,
		Description: description,
		Status:      constants.RecordStatusProcessing,
		CreatedAt:   time.Now().UTC(),
	}
	r.records[img.ID] = img
	return img, nil
}

func (r *fakeImages) GetByID(_ context.Context, id uuid.UUID) (*entity.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	img, ok := r.records[id]
	if !ok {
		return nil, common.NewAppError("RECORD_NOT_FOUND", "analysis record not found", common.ErrNotFound)
	}
	copied := *img
	return &copied, nil
}

func (r *fakeImages) CompleteAnalysis(_ context.Context, id uuid.UUID, text string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	img, ok := r.records[id]
	if !ok || img.Status != constants.RecordStatusProcessing {
		return false, nil
	}
	img.Status = constants.RecordStatusCompleted
	img.Analysis = text
	return true, nil
}

func (r *fakeImages) MarkFailed(_ context.Context, id uuid.UUID, reason string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	img, ok := r.records[id]
	if !ok || img.Status != constants.RecordStatusProcessing {
		return false, nil
	}
	img.Status = constants.RecordStatusFailed
	img.FailureReason = reason
	return true, nil
}

func (r *fakeImages) ListByOwner(_ context.Context, userID uuid.UUID) ([]*entity.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Image
	for _, img := range r.records {
		if img.UserID == userID {
			copied := *img
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeImages) List(_ context.Context, _ repository.ListImagesRequest) ([]*entity.ImageWithOwner, int, error) {
	return nil, 0, nil
}

func (r *fakeImages) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

type fakeJobs struct {
	mu      sync.Mutex
	created []*entity.AnalysisJob
}

func (r *fakeJobs) Create(_ context.Context, imageID uuid.UUID, payload []byte) (*entity.AnalysisJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job := &entity.AnalysisJob{
		ID:         uuid.New(),
		ImageID:    imageID,
		Payload:    payload,
		Status:     constants.JobStatusQueued,
		EnqueuedAt: time.Now().UTC(),
	}
	r.created = append(r.created, job)
	return job, nil
}

func (r *fakeJobs) MarkRunning(context.Context, uuid.UUID, int) error          { return nil }
func (r *fakeJobs) MarkRetrying(context.Context, uuid.UUID, int, string) error { return nil }
func (r *fakeJobs) MarkSucceeded(context.Context, uuid.UUID, int) error        { return nil }
func (r *fakeJobs) MarkExhausted(context.Context, uuid.UUID, int, string) error {
	return nil
}
func (r *fakeJobs) ListUnfinished(context.Context) ([]*entity.AnalysisJob, error) { return nil, nil }

func (r *fakeJobs) createdCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.created)
}

type fakeStore struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (s *fakeStore) Upload(_ context.Context, key string, _ []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.keys = append(s.keys, key)
	return "https://blobs.test/" + key, nil
}

func (s *fakeStore) uploaded() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

type fakeQueue struct {
	mu   sync.Mutex
	jobs []queue.Job
}

func (q *fakeQueue) Enqueue(_ context.Context, job queue.Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeQueue) Shutdown(context.Context) {}

func (q *fakeQueue) enqueued() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}

type fakeAnalyzer struct {
	fn func(ctx context.Context, jpeg []byte) (string, error)
}

func (a *fakeAnalyzer) AnalyzeImage(ctx context.Context, jpeg []byte) (string, error) {
	if a.fn == nil {
		return "", errors.New("no analyzer configured")
	}
	return a.fn(ctx, jpeg)
}

// ---- helpers ----

func validPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 16, 16))))
	return buf.Bytes()
}

type harness struct {
	svc    *Service
	users  *fakeUsers
	images *fakeImages
	jobs   *fakeJobs
	store  *fakeStore
	queue  *fakeQueue
}

func newHarness(t *testing.T, user *entity.User, analyzer *fakeAnalyzer, inline bool) *harness {
	t.Helper()
	h := &harness{
		users:  newFakeUsers(user),
		images: newFakeImages(),
		jobs:   &fakeJobs{},
		store:  &fakeStore{},
		queue:  &fakeQueue{},
	}
	if analyzer == nil {
		analyzer = &fakeAnalyzer{}
	}
	ledger := quota.NewLedger(h.users, 2, nil)
	h.svc = NewService(h.users, h.images, h.jobs, h.store, h.queue, ledger, analyzer, inline, nil)
	return h
}

func (h *harness) requireNoSideEffects(t *testing.T) {
	t.Helper()
	require.Zero(t, h.store.uploaded())
	require.Zero(t, h.images.count())
	require.Zero(t, h.jobs.createdCount())
	require.Zero(t, h.queue.enqueued())
}

// ---- tests ----

func TestUpload_UnknownUser(t *testing.T) {
	h := newHarness(t, &entity.User{ID: uuid.New()}, nil, false)

	_, err := h.svc.Upload(context.Background(), UploadRequest{
		Bytes:    validPNG(t),
		MimeType: "image/png",
		Filename: "scan.png",
		UserID:   uuid.New(), // not the seeded user
	})
	require.ErrorIs(t, err, common.ErrNotFound)
	h.requireNoSideEffects(t)
}

func TestUpload_QuotaDeniedLeavesNoTrace(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: constants.RoleUser, UploadCount: 2}
	h := newHarness(t, user, nil, false)

	_, err := h.svc.Upload(context.Background(), UploadRequest{
		Bytes:    validPNG(t),
		MimeType: "image/png",
		Filename: "scan.png",
		UserID:   user.ID,
	})
	require.ErrorIs(t, err, common.ErrQuotaExceeded)
	h.requireNoSideEffects(t)
}

func TestUpload_MissingFile(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: constants.RoleUser}
	h := newHarness(t, user, nil, false)

	_, err := h.svc.Upload(context.Background(), UploadRequest{
		MimeType: "image/png",
		UserID:   user.ID,
	})
	require.ErrorIs(t, err, common.ErrNoFile)
	h.requireNoSideEffects(t)
}

func TestUpload_RejectedContentLeavesNoTrace(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: constants.RoleUser}
	h := newHarness(t, user, nil, false)

	_, err := h.svc.Upload(context.Background(), UploadRequest{
		Bytes:    []byte("not an image"),
		MimeType: "text/plain",
		Filename: "notes.txt",
		UserID:   user.ID,
	})
	require.ErrorIs(t, err, common.ErrValidation)
	h.requireNoSideEffects(t)
	require.Zero(t, h.users.uploadCount(user.ID))
}

func TestUpload_StorageFailureDoesNotCharge(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: constants.RoleUser}
	h := newHarness(t, user, nil, false)
	h.store.err = errors.New("bucket unavailable")

	_, err := h.svc.Upload(context.Background(), UploadRequest{
		Bytes:    validPNG(t),
		MimeType: "image/png",
		Filename: "scan.png",
		UserID:   user.ID,
	})
	require.ErrorIs(t, err, common.ErrStorage)
	require.Zero(t, h.users.uploadCount(user.ID))
	require.Zero(t, h.images.count())
	require.Zero(t, h.jobs.createdCount())
}

func TestUpload_AcceptedAndQueued(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: constants.RoleUser}
	h := newHarness(t, user, nil, false)

	img, err := h.svc.Upload(context.Background(), UploadRequest{
		Bytes:       validPNG(t),
		MimeType:    "image/png",
		Filename:    "scan.png",
		Description: "left wrist",
		UserID:      user.ID,
	})
	require.NoError(t, err)
	require.Equal(t, constants.RecordStatusProcessing, img.Status)
	require.Equal(t, "left wrist", img.Description)
	require.NotEmpty(t, img.URL)

	require.Equal(t, 1, h.store.uploaded())
	require.Equal(t, 1, h.jobs.createdCount())
	require.Equal(t, 1, h.queue.enqueued())
	require.Equal(t, 1, h.users.uploadCount(user.ID))
}

func TestUpload_InlineAnalysisWins(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: constants.RoleUser}
	analyzer := &fakeAnalyzer{fn: func(context.Context, []byte) (string, error) {
		return "fracture of the distal radius", nil
	}}
	h := newHarness(t, user, analyzer, true)

	img, err := h.svc.Upload(context.Background(), UploadRequest{
		Bytes:    validPNG(t),
		MimeType: "image/png",
		Filename: "scan.png",
		UserID:   user.ID,
	})
	require.NoError(t, err)
	require.Equal(t, constants.RecordStatusCompleted, img.Status)
	require.Equal(t, "fracture of the distal radius", img.Analysis)

	// the durable job is still there as the guaranteed fallback
	require.Equal(t, 1, h.jobs.createdCount())
	require.Equal(t, 1, h.queue.enqueued())
}

func TestUpload_InlineFailureIsSwallowed(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: constants.RoleUser}
	analyzer := &fakeAnalyzer{fn: func(context.Context, []byte) (string, error) {
		return "", errors.New("model overloaded")
	}}
	h := newHarness(t, user, analyzer, true)

	img, err := h.svc.Upload(context.Background(), UploadRequest{
		Bytes:    validPNG(t),
		MimeType: "image/png",
		Filename: "scan.png",
		UserID:   user.ID,
	})
	require.NoError(t, err)
	require.Equal(t, constants.RecordStatusProcessing, img.Status)
	require.Equal(t, 1, h.queue.enqueued())
}

func TestUpload_ExemptUserNeverCharged(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), Role: constants.RoleAdmin}
	h := newHarness(t, admin, nil, false)

	for i := 0; i < 5; i++ {
		_, err := h.svc.Upload(context.Background(), UploadRequest{
			Bytes:    validPNG(t),
			MimeType: "image/png",
			Filename: "scan.png",
			UserID:   admin.ID,
		})
		require.NoError(t, err)
	}
	require.Zero(t, h.users.uploadCount(admin.ID))
	require.Equal(t, 5, h.images.count())
}

func TestRemainingUploads(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: constants.RoleUser, UploadCount: 1}
	h := newHarness(t, user, nil, false)

	rem, err := h.svc.RemainingUploads(context.Background(), user.ID)
	require.NoError(t, err)
	require.False(t, rem.Unlimited)
	require.Equal(t, 1, rem.Remaining)
	require.Equal(t, 2, rem.Total)
}

func TestStatus_UnknownRecord(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: constants.RoleUser}
	h := newHarness(t, user, nil, false)

	_, err := h.svc.Status(context.Background(), uuid.New())
	require.ErrorIs(t, err, common.ErrNotFound)
}
