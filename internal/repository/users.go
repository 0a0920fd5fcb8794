package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mediscan-kh/mediscan/gen/ent"
	entuser "github.com/mediscan-kh/mediscan/gen/ent/user"
	"github.com/mediscan-kh/mediscan/internal/common"
	"github.com/mediscan-kh/mediscan/internal/entity"
	"github.com/mediscan-kh/mediscan/internal/utils"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// IncrementUploadCountIfBelow atomically bumps upload_count by one,
	// but only while it is still below limit. Returns whether a row was
	// updated, i.e. whether the reservation won.
	IncrementUploadCountIfBelow(ctx context.Context, id uuid.UUID, limit int) (bool, error)
}

type userRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewUserRepository(entc *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	row, err := r.ent.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.UserNotFoundError(err)
		}
		return nil, err
	}
	return utils.ToUser(row), nil
}

func (r *userRepo) IncrementUploadCountIfBelow(ctx context.Context, id uuid.UUID, limit int) (bool, error) {
	// single conditional UPDATE; concurrent reservations by the same user
	// serialize at the database and can never overshoot the limit
	n, err := r.ent.User.Update().
		Where(
			entuser.ID(id),
			entuser.UploadCountLT(limit),
		).
		AddUploadCount(1).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to reserve upload quota", "user_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}
