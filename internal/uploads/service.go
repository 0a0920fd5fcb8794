// Package uploads is the ingestion orchestrator: quota gate, normalization,
// blob hand-off, record creation, job submission, and the opportunistic
// synchronous analysis attempt.
package uploads

import (
	"context"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/mediscan-kh/mediscan/internal/common"
	"github.com/mediscan-kh/mediscan/internal/entity"
	"github.com/mediscan-kh/mediscan/internal/imaging"
	"github.com/mediscan-kh/mediscan/internal/llm"
	"github.com/mediscan-kh/mediscan/internal/quota"
	"github.com/mediscan-kh/mediscan/internal/queue"
	"github.com/mediscan-kh/mediscan/internal/repository"
	"github.com/mediscan-kh/mediscan/internal/storage"
)

// UploadRequest carries one upload through the orchestrator.
type UploadRequest struct {
	Bytes       []byte
	MimeType    string
	Filename    string
	Description string
	UserID      uuid.UUID
}

// Service handles upload ingestion business logic.
type Service struct {
	users         repository.UserRepository
	images        repository.ImageRepository
	jobs          repository.AnalysisJobRepository
	store         storage.ObjectStore
	queue         queue.Queue
	ledger        *quota.Ledger
	analyzer      llm.Analyzer
	analyzeInline bool
	logger        *slog.Logger
}

func NewService(
	users repository.UserRepository,
	images repository.ImageRepository,
	jobs repository.AnalysisJobRepository,
	store storage.ObjectStore,
	q queue.Queue,
	ledger *quota.Ledger,
	analyzer llm.Analyzer,
	analyzeInline bool,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		users:         users,
		images:        images,
		jobs:          jobs,
		store:         store,
		queue:         q,
		ledger:        ledger,
		analyzer:      analyzer,
		analyzeInline: analyzeInline,
		logger:        logger,
	}
}

// Upload runs the full ingestion sequence. Any failure before the quota
// reservation leaves no side effects at all; the returned record is either
// PROCESSING or already COMPLETED when the inline attempt wins.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (*entity.Image, error) {
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		s.logger.Error("upload.user_lookup_failed", "user_id", req.UserID, "error", err)
		return nil, err
	}

	if err := s.ledger.Check(user); err != nil {
		s.logger.Warn("upload.quota_denied", "user_id", user.ID, "upload_count", user.UploadCount)
		return nil, err
	}

	if len(req.Bytes) == 0 {
		return nil, common.NoFileError()
	}

	if err := imaging.ValidateUpload(req.Bytes, req.MimeType); err != nil {
		s.logger.Warn("upload.validation_failed", "user_id", user.ID, "mime", req.MimeType, "size", len(req.Bytes), "error", err)
		return nil, err
	}
	canonical, err := imaging.Normalize(req.Bytes)
	if err != nil {
		s.logger.Error("upload.normalization_failed", "user_id", user.ID, "error", err)
		return nil, err
	}

	key := storage.ObjectKey(req.Filename)
	url, err := s.store.Upload(ctx, key, canonical, imaging.CanonicalMIME)
	if err != nil {
		s.logger.Error("upload.storage_failed", "user_id", user.ID, "key", key, "error", err)
		return nil, common.StorageError(err)
	}

	// reservation happens after the blob exists and before the record, so a
	// lost race rejects the upload without leaving a dangling record
	if err := s.ledger.Reserve(ctx, user); err != nil {
		return nil, err
	}

	img, err := s.images.Create(ctx, user.ID, url, req.Description)
	if err != nil {
		s.logger.Error("upload.record_create_failed", "user_id", user.ID, "url", url, "error", err)
		return nil, common.WrapError(err, "create analysis record")
	}

	jobRow, err := s.jobs.Create(ctx, img.ID, canonical)
	if err != nil {
		s.logger.Error("upload.job_create_failed", "image_id", img.ID, "error", err)
		return nil, common.WrapError(err, "create analysis job")
	}
	if err := s.queue.Enqueue(ctx, queue.Job{
		JobID:       jobRow.ID,
		ImageID:     img.ID,
		Payload:     canonical,
		SubmittedAt: time.Now().UTC(),
	}); err != nil {
		s.logger.Error("upload.enqueue_failed", "image_id", img.ID, "job_id", jobRow.ID, "error", err)
		return nil, common.WrapError(err, "enqueue analysis job")
	}

	s.logger.Info("upload accepted",
		"user_id", user.ID, "image_id", img.ID, "job_id", jobRow.ID,
		"bytes_in", len(req.Bytes), "bytes_canonical", len(canonical),
	)

	if s.analyzeInline {
		if updated := s.analyzeNow(ctx, img.ID, canonical); updated != nil {
			return updated, nil
		}
	}
	return img, nil
}

// analyzeNow is the opportunistic synchronous path. Failures are logged and
// swallowed: the queued job is the guaranteed fallback. On success the result
// lands through the same compare-and-set write the worker uses.
func (s *Service) analyzeNow(ctx context.Context, imageID uuid.UUID, canonical []byte) *entity.Image {
	text, err := s.analyzer.AnalyzeImage(ctx, canonical)
	if err != nil {
		s.logger.Warn("upload.inline_analysis_failed", "image_id", imageID, "error", err)
		return nil
	}
	won, err := s.images.CompleteAnalysis(ctx, imageID, text)
	if err != nil {
		s.logger.Warn("upload.inline_write_failed", "image_id", imageID, "error", err)
		return nil
	}
	if !won {
		s.logger.Info("upload.inline_analysis_lost_race", "image_id", imageID)
	}
	img, err := s.images.GetByID(ctx, imageID)
	if err != nil {
		s.logger.Warn("upload.refresh_failed", "image_id", imageID, "error", err)
		return nil
	}
	return img
}

// Status returns a record for the polling endpoint; a pure read.
func (s *Service) Status(ctx context.Context, id uuid.UUID) (*entity.Image, error) {
	return s.images.GetByID(ctx, id)
}

// ListByOwner returns the caller's own records, newest first.
func (s *Service) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Image, error) {
	return s.images.ListByOwner(ctx, userID)
}

// RemainingUploads reports the caller's quota state.
func (s *Service) RemainingUploads(ctx context.Context, userID uuid.UUID) (quota.Remaining, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return quota.Remaining{}, err
	}
	return s.ledger.Remaining(user), nil
}
