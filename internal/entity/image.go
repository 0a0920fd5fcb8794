package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/mediscan-kh/mediscan/constants"
)

// Image is an analysis record: one uploaded artifact plus its analysis state.
type Image struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	URL           string
	Description   string
	Analysis      string
	Status        constants.RecordStatus
	FailureReason string
	CreatedAt     time.Time
}

// OwnerInfo is the minimal user projection joined into admin listings.
type OwnerInfo struct {
	ID       uuid.UUID
	Username string
	Email    string
}

// ImageWithOwner pairs a record with its owner projection.
type ImageWithOwner struct {
	Image
	Owner OwnerInfo
}
