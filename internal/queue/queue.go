// Package queue delivers analysis jobs to a bounded worker pool with
// durable state and exponential redelivery.
package queue

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is the unit of queued analysis work. Payload holds the normalized
// JPEG bytes so the worker never depends on the blob store being readable.
type Job struct {
	JobID       uuid.UUID
	ImageID     uuid.UUID
	Payload     []byte
	Attempt     int // completed delivery attempts so far
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
