package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mediscan-kh/mediscan/constants"
	"github.com/mediscan-kh/mediscan/gen/ent"
	entjob "github.com/mediscan-kh/mediscan/gen/ent/analysisjob"
	"github.com/mediscan-kh/mediscan/internal/entity"
	"github.com/mediscan-kh/mediscan/internal/utils"
)

type AnalysisJobRepository interface {
	Create(ctx context.Context, imageID uuid.UUID, payload []byte) (*entity.AnalysisJob, error)
	MarkRunning(ctx context.Context, id uuid.UUID, attempt int) error
	// MarkRetrying parks a failed attempt back in QUEUED with its error,
	// so a restart between redeliveries still recovers the job.
	MarkRetrying(ctx context.Context, id uuid.UUID, attempts int, lastError string) error
	MarkSucceeded(ctx context.Context, id uuid.UUID, attempts int) error
	MarkExhausted(ctx context.Context, id uuid.UUID, attempts int, lastError string) error
	// ListUnfinished returns jobs left QUEUED or RUNNING, oldest first.
	// Used on startup to recover work that predates a restart.
	ListUnfinished(ctx context.Context) ([]*entity.AnalysisJob, error)
}

type analysisJobRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewAnalysisJobRepository(entc *ent.Client, logger *slog.Logger) AnalysisJobRepository {
	return &analysisJobRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *analysisJobRepo) Create(ctx context.Context, imageID uuid.UUID, payload []byte) (*entity.AnalysisJob, error) {
	row, err := r.ent.AnalysisJob.Create().
		SetImageID(imageID).
		SetPayload(payload).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create analysis job", "image_id", imageID, "error", err)
		return nil, err
	}
	return utils.ToAnalysisJob(row), nil
}

func (r *analysisJobRepo) MarkRunning(ctx context.Context, id uuid.UUID, attempt int) error {
	err := r.ent.AnalysisJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusRunning)).
		SetAttempts(attempt).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark job running", "job_id", id, "error", err)
	}
	return err
}

func (r *analysisJobRepo) MarkRetrying(ctx context.Context, id uuid.UUID, attempts int, lastError string) error {
	err := r.ent.AnalysisJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusQueued)).
		SetAttempts(attempts).
		SetLastError(lastError).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark job retrying", "job_id", id, "error", err)
	}
	return err
}

func (r *analysisJobRepo) MarkSucceeded(ctx context.Context, id uuid.UUID, attempts int) error {
	err := r.ent.AnalysisJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusSucceeded)).
		SetAttempts(attempts).
		SetFinishedAt(time.Now().UTC()).
		ClearLastError().
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark job succeeded", "job_id", id, "error", err)
	}
	return err
}

func (r *analysisJobRepo) MarkExhausted(ctx context.Context, id uuid.UUID, attempts int, lastError string) error {
	err := r.ent.AnalysisJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusExhausted)).
		SetAttempts(attempts).
		SetLastError(lastError).
		SetFinishedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark job exhausted", "job_id", id, "error", err)
	}
	return err
}

func (r *analysisJobRepo) ListUnfinished(ctx context.Context) ([]*entity.AnalysisJob, error) {
	rows, err := r.ent.AnalysisJob.Query().
		Where(entjob.StatusIn(
			string(constants.JobStatusQueued),
			string(constants.JobStatusRunning),
		)).
		Order(ent.Asc(entjob.FieldEnqueuedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list unfinished jobs", "error", err)
		return nil, err
	}
	out := make([]*entity.AnalysisJob, len(rows))
	for i, row := range rows {
		out[i] = utils.ToAnalysisJob(row)
	}
	return out, nil
}
