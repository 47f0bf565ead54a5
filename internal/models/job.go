package models

import (
	"time"
)

// JobStatus represents the status of an import job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// ImportJob represents a queued workbook import. The job row is the durable
// record of the run; the report is attached once processing finishes.
type ImportJob struct {
	ID          string        `json:"job_id" db:"id"`
	Status      JobStatus     `json:"status" db:"status"`
	FilePath    string        `json:"-" db:"file_path"`
	Sheets      []string      `json:"sheets" db:"sheets"`
	Report      *ImportReport `json:"report,omitempty" db:"report"`
	Error       string        `json:"error,omitempty" db:"error"`
	DurationMs  int64         `json:"duration_ms,omitempty" db:"duration_ms"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	StartedAt   *time.Time    `json:"started_at,omitempty" db:"started_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty" db:"completed_at"`
}

// ImportReport is the aggregate outcome of one import invocation. It is
// accumulated across all processed sheets and immutable once returned.
type ImportReport struct {
	SuccessCount int          `json:"success_count"`
	ErrorCount   int          `json:"error_count"`
	Errors       []string     `json:"errors,omitempty"`
	Warnings     []string     `json:"warnings,omitempty"`
	NewUsers     []Credential `json:"new_users,omitempty"`
}

// ImportRequest represents an import job request
type ImportRequest struct {
	Sheets []string `json:"sheets" form:"sheets"`
}
