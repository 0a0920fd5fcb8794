package utils

import (
	"github.com/mediscan-kh/mediscan/constants"
	"github.com/mediscan-kh/mediscan/gen/ent"
	"github.com/mediscan-kh/mediscan/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToUser(u *ent.User) *entity.User {
	return &entity.User{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        constants.Role(u.Role),
		IsPremium:   u.IsPremium,
		UploadCount: u.UploadCount,
		CreatedAt:   u.CreatedAt,
	}
}

func ToImage(img *ent.Image) *entity.Image {
	return &entity.Image{
		ID:            img.ID,
		UserID:        img.UserID,
		URL:           img.URL,
		Description:   strOrEmpty(img.Description),
		Analysis:      img.Analysis,
		Status:        constants.RecordStatus(img.Status),
		FailureReason: strOrEmpty(img.FailureReason),
		CreatedAt:     img.CreatedAt,
	}
}

// ToImageWithOwner maps a record with its owner edge loaded. A missing edge
// leaves the owner projection zero-valued rather than failing the listing.
func ToImageWithOwner(img *ent.Image) *entity.ImageWithOwner {
	out := &entity.ImageWithOwner{Image: *ToImage(img)}
	if owner := img.Edges.Owner; owner != nil {
		out.Owner = entity.OwnerInfo{
			ID:       owner.ID,
			Username: owner.Username,
			Email:    owner.Email,
		}
	}
	return out
}

func ToAnalysisJob(j *ent.AnalysisJob) *entity.AnalysisJob {
	return &entity.AnalysisJob{
		ID:         j.ID,
		ImageID:    j.ImageID,
		Payload:    j.Payload,
		Attempts:   j.Attempts,
		Status:     constants.JobStatus(j.Status),
		LastError:  strOrEmpty(j.LastError),
		EnqueuedAt: j.EnqueuedAt,
		FinishedAt: j.FinishedAt,
	}
}
