package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/mediscan-kh/mediscan/constants"
)

// User is the account view this service reads; account CRUD lives elsewhere.
type User struct {
	ID          uuid.UUID
	Username    string
	Email       string
	Role        constants.Role
	IsPremium   bool
	UploadCount int
	CreatedAt   time.Time
}

// QuotaExempt reports whether the account bypasses the free-tier ceiling.
func (u *User) QuotaExempt() bool {
	return u.Role == constants.RoleAdmin || u.IsPremium
}
