package constants

// RecordStatus is the canonical status for rows in images.
type RecordStatus string

// Stable values (store these exact strings in DB).
const (
	RecordStatusProcessing RecordStatus = "PROCESSING" // analysis pending
	RecordStatusCompleted  RecordStatus = "COMPLETED"  // analysis text written
	RecordStatusFailed     RecordStatus = "FAILED"     // all delivery attempts exhausted
)

// RecordStatuses lists every valid RecordStatus value.
func RecordStatuses() []string {
	return []string{
		string(RecordStatusProcessing),
		string(RecordStatusCompleted),
		string(RecordStatusFailed),
	}
}

// JobStatus is the canonical status for rows in analysis_jobs.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "QUEUED"    // accepted, not yet dispatched
	JobStatusRunning   JobStatus = "RUNNING"   // a worker holds the job
	JobStatusSucceeded JobStatus = "SUCCEEDED" // terminal: analysis delivered
	JobStatusExhausted JobStatus = "EXHAUSTED" // terminal: attempt budget spent
)

// JobStatuses lists every valid JobStatus value.
func JobStatuses() []string {
	return []string{
		string(JobStatusQueued),
		string(JobStatusRunning),
		string(JobStatusSucceeded),
		string(JobStatusExhausted),
	}
}
