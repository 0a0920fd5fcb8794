package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mediscan-kh/mediscan/constants"
	"github.com/mediscan-kh/mediscan/internal/common"
	"github.com/mediscan-kh/mediscan/gen/ent"
	entimage "github.com/mediscan-kh/mediscan/gen/ent/image"
	"github.com/mediscan-kh/mediscan/internal/entity"
	"github.com/mediscan-kh/mediscan/internal/utils"
)

// ListImagesRequest carries admin-listing filters and pagination.
type ListImagesRequest struct {
	UserID    *uuid.UUID
	Status    *constants.RecordStatus
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
	SortBy    string // "created_at" (default) or "status"
	SortOrder string // "asc" or "desc" (default)
}

type ImageRepository interface {
	Create(ctx context.Context, userID uuid.UUID, url, description string) (*entity.Image, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Image, error)
	// CompleteAnalysis writes the analysis text and flips the record to
	// COMPLETED, but only while it is still PROCESSING. Returns whether
	// this writer won; a lost race is not an error.
	CompleteAnalysis(ctx context.Context, id uuid.UUID, text string) (bool, error)
	// MarkFailed flips a still-PROCESSING record to FAILED. It loses to any
	// completed analysis, so a late success is never clobbered.
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) (bool, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Image, error)
	List(ctx context.Context, req ListImagesRequest) ([]*entity.ImageWithOwner, int, error)
}

type imageRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewImageRepository(entc *ent.Client, logger *slog.Logger) ImageRepository {
	return &imageRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *imageRepo) Create(ctx context.Context, userID uuid.UUID, url, description string) (*entity.Image, error) {
	create := r.ent.Image.Create().
		SetUserID(userID).
		SetURL(url).
		SetStatus(string(constants.RecordStatusProcessing))
	if description != "" {
		create = create.SetDescription(description)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create image record", "user_id", userID, "error", err)
		return nil, err
	}
	return utils.ToImage(row), nil
}

func (r *imageRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Image, error) {
	row, err := r.ent.Image.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("RECORD_NOT_FOUND", "analysis record not found", errors.Join(common.ErrNotFound, err))
		}
		return nil, err
	}
	return utils.ToImage(row), nil
}

func (r *imageRepo) CompleteAnalysis(ctx context.Context, id uuid.UUID, text string) (bool, error) {
	n, err := r.ent.Image.Update().
		Where(
			entimage.ID(id),
			entimage.Status(string(constants.RecordStatusProcessing)),
		).
		SetStatus(string(constants.RecordStatusCompleted)).
		SetAnalysis(text).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to complete analysis", "image_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

func (r *imageRepo) MarkFailed(ctx context.Context, id uuid.UUID, reason string) (bool, error) {
	n, err := r.ent.Image.Update().
		Where(
			entimage.ID(id),
			entimage.Status(string(constants.RecordStatusProcessing)),
		).
		SetStatus(string(constants.RecordStatusFailed)).
		SetFailureReason(reason).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark image failed", "image_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

func (r *imageRepo) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Image, error) {
	rows, err := r.ent.Image.Query().
		Where(entimage.UserID(userID)).
		Order(ent.Desc(entimage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list images by owner", "user_id", userID, "error", err)
		return nil, err
	}
	out := make([]*entity.Image, len(rows))
	for i, row := range rows {
		out[i] = utils.ToImage(row)
	}
	return out, nil
}

func (r *imageRepo) List(ctx context.Context, req ListImagesRequest) ([]*entity.ImageWithOwner, int, error) {
	q := r.ent.Image.Query()
	if req.UserID != nil {
		q = q.Where(entimage.UserID(*req.UserID))
	}
	if req.Status != nil {
		q = q.Where(entimage.Status(string(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entimage.CreatedAtGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entimage.CreatedAtLTE(*req.To))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		r.logger.Error("failed to count images", "error", err)
		return nil, 0, err
	}

	sortField := entimage.FieldCreatedAt
	if req.SortBy == "status" {
		sortField = entimage.FieldStatus
	}
	if req.SortOrder == "asc" {
		q = q.Order(ent.Asc(sortField))
	} else {
		q = q.Order(ent.Desc(sortField))
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 10
	}
	rows, err := q.
		WithOwner().
		Offset((page - 1) * limit).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list images", "error", err)
		return nil, 0, err
	}

	out := make([]*entity.ImageWithOwner, len(rows))
	for i, row := range rows {
		out[i] = utils.ToImageWithOwner(row)
	}
	return out, total, nil
}
