// Package quota enforces the free-tier upload allowance. Admin and premium
// accounts are exempt and always report unbounded remaining quota.
package quota

import (
	"context"
	"log/slog"

	"github.com/mediscan-kh/mediscan/internal/common"
	"github.com/mediscan-kh/mediscan/internal/entity"
	"github.com/mediscan-kh/mediscan/internal/repository"
)

// DefaultFreeUploadLimit is the reference free-tier allowance.
const DefaultFreeUploadLimit = 2

type Ledger struct {
	users     repository.UserRepository
	freeLimit int
	logger    *slog.Logger
}

func NewLedger(users repository.UserRepository, freeLimit int, logger *slog.Logger) *Ledger {
	if freeLimit <= 0 {
		freeLimit = DefaultFreeUploadLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		users:     users,
		freeLimit: freeLimit,
		logger:    logger,
	}
}

// Check is the side-effect-free gate at the top of ingestion. The
// authoritative reservation happens in Reserve; this only fails fast.
func (l *Ledger) Check(user *entity.User) error {
	if user.QuotaExempt() {
		return nil
	}
	if user.UploadCount >= l.freeLimit {
		return common.QuotaExceededError()
	}
	return nil
}

// Reserve charges one upload against the user's allowance. For non-exempt
// users this is a single conditional increment at the database, so parallel
// uploads can never lose or double an update; exempt users are never charged.
func (l *Ledger) Reserve(ctx context.Context, user *entity.User) error {
	if user.QuotaExempt() {
		return nil
	}
	ok, err := l.users.IncrementUploadCountIfBelow(ctx, user.ID, l.freeLimit)
	if err != nil {
		return common.WrapError(err, "reserve quota")
	}
	if !ok {
		l.logger.Warn("quota reservation lost", "user_id", user.ID, "limit", l.freeLimit)
		return common.QuotaExceededError()
	}
	return nil
}

// Remaining reports the caller-visible quota state.
type Remaining struct {
	Remaining int
	Total     int
	Unlimited bool
	IsPremium bool
}

// Remaining is a pure read derived from the user's current counter; it
// applies the same exemption rule as Check and Reserve.
func (l *Ledger) Remaining(user *entity.User) Remaining {
	if user.QuotaExempt() {
		return Remaining{Unlimited: true, IsPremium: true}
	}
	left := l.freeLimit - user.UploadCount
	if left < 0 {
		left = 0
	}
	return Remaining{
		Remaining: left,
		Total:     l.freeLimit,
	}
}
