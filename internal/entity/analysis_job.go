package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/mediscan-kh/mediscan/constants"
)

// AnalysisJob is one durable unit of queued analysis work.
type AnalysisJob struct {
	ID         uuid.UUID
	ImageID    uuid.UUID
	Payload    []byte
	Attempts   int
	Status     constants.JobStatus
	LastError  string
	EnqueuedAt time.Time
	FinishedAt *time.Time
}
