package quota

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mediscan-kh/mediscan/constants"
	"github.com/mediscan-kh/mediscan/internal/common"
	"github.com/mediscan-kh/mediscan/internal/entity"
)

// fakeUserRepo implements repository.UserRepository with an in-memory counter
// guarded the same way the database guards it.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, common.UserNotFoundError(nil)
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) IncrementUploadCountIfBelow(_ context.Context, id uuid.UUID, limit int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.UploadCount >= limit {
		return false, nil
	}
	u.UploadCount++
	return true, nil
}

func freeUser(count int) *entity.User {
	return &entity.User{ID: uuid.New(), Role: constants.RoleUser, UploadCount: count}
}

func TestLedger_Check(t *testing.T) {
	l := NewLedger(newFakeUserRepo(), 2, nil)

	require.NoError(t, l.Check(freeUser(0)))
	require.NoError(t, l.Check(freeUser(1)))
	require.ErrorIs(t, l.Check(freeUser(2)), common.ErrQuotaExceeded)
	require.ErrorIs(t, l.Check(freeUser(99)), common.ErrQuotaExceeded)
}

func TestLedger_Check_ExemptUsers(t *testing.T) {
	l := NewLedger(newFakeUserRepo(), 2, nil)

	admin := &entity.User{ID: uuid.New(), Role: constants.RoleAdmin, UploadCount: 1000}
	premium := &entity.User{ID: uuid.New(), Role: constants.RoleUser, IsPremium: true, UploadCount: 1000}
	require.NoError(t, l.Check(admin))
	require.NoError(t, l.Check(premium))
}

func TestLedger_Reserve_ChargesFreeUsers(t *testing.T) {
	u := freeUser(0)
	repo := newFakeUserRepo(u)
	l := NewLedger(repo, 2, nil)
	ctx := context.Background()

	require.NoError(t, l.Reserve(ctx, u))
	require.NoError(t, l.Reserve(ctx, u))
	require.ErrorIs(t, l.Reserve(ctx, u), common.ErrQuotaExceeded)

	stored, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stored.UploadCount)
}

func TestLedger_Reserve_NeverChargesExempt(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), Role: constants.RoleAdmin}
	repo := newFakeUserRepo(admin)
	l := NewLedger(repo, 2, nil)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, l.Reserve(ctx, admin))
	}
	stored, err := repo.GetByID(ctx, admin.ID)
	require.NoError(t, err)
	require.Equal(t, 0, stored.UploadCount)
}

func TestLedger_Reserve_ParallelUploadsCannotOvershoot(t *testing.T) {
	u := freeUser(0)
	repo := newFakeUserRepo(u)
	l := NewLedger(repo, 2, nil)

	const attempts = 20
	var wg sync.WaitGroup
	denied := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			denied <- l.Reserve(context.Background(), u)
		}()
	}
	wg.Wait()
	close(denied)

	granted := 0
	for err := range denied {
		if err == nil {
			granted++
		} else {
			require.ErrorIs(t, err, common.ErrQuotaExceeded)
		}
	}
	require.Equal(t, 2, granted)

	stored, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stored.UploadCount)
}

func TestLedger_Remaining(t *testing.T) {
	l := NewLedger(newFakeUserRepo(), 2, nil)

	rem := l.Remaining(freeUser(0))
	require.Equal(t, Remaining{Remaining: 2, Total: 2}, rem)

	rem = l.Remaining(freeUser(1))
	require.Equal(t, Remaining{Remaining: 1, Total: 2}, rem)

	// the counter can sit above the limit after a config change; never negative
	rem = l.Remaining(freeUser(5))
	require.Equal(t, Remaining{Remaining: 0, Total: 2}, rem)

	rem = l.Remaining(&entity.User{ID: uuid.New(), IsPremium: true})
	require.True(t, rem.Unlimited)
	require.True(t, rem.IsPremium)
}

func TestNewLedger_DefaultsLimit(t *testing.T) {
	l := NewLedger(newFakeUserRepo(), 0, nil)
	require.ErrorIs(t, l.Check(freeUser(DefaultFreeUploadLimit)), common.ErrQuotaExceeded)
	require.NoError(t, l.Check(freeUser(DefaultFreeUploadLimit-1)))
}
