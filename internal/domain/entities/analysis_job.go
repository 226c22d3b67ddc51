package entities

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisJobStatus represents the status of a background analysis job
type AnalysisJobStatus string

const (
	AnalysisJobStatusPending    AnalysisJobStatus = "pending"    // Waiting to be picked up by a worker
	AnalysisJobStatusProcessing AnalysisJobStatus = "processing" // Claimed by a worker
	AnalysisJobStatusCompleted  AnalysisJobStatus = "completed"  // Analysis stored
	AnalysisJobStatusFailed     AnalysisJobStatus = "failed"     // Processing failed
	AnalysisJobStatusRetrying   AnalysisJobStatus = "retrying"   // Retrying after failure
)

// AnalysisJob represents a queued transcript analysis for a meeting
type AnalysisJob struct {
	ID        uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID uuid.UUID         `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Status    AnalysisJobStatus `json:"status" gorm:"type:varchar(50);not null;index;default:'pending'"`

	// Processing details
	StartedAt   *time.Time `json:"started_at,omitempty" gorm:"type:timestamp"`
	CompletedAt *time.Time `json:"completed_at,omitempty" gorm:"type:timestamp"`
	RetryCount  int        `json:"retry_count" gorm:"type:integer;default:0"`
	MaxRetries  int        `json:"max_retries" gorm:"type:integer;default:3"`
	LastError   *string    `json:"last_error,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// NewAnalysisJob creates a pending job for a meeting
func NewAnalysisJob(meetingID uuid.UUID) *AnalysisJob {
	return &AnalysisJob{
		ID:         uuid.New(),
		MeetingID:  meetingID,
		Status:     AnalysisJobStatusPending,
		RetryCount: 0,
		MaxRetries: 3,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

// IsRetryable checks if job can be retried
func (j *AnalysisJob) IsRetryable() bool {
	return j.RetryCount < j.MaxRetries && j.Status == AnalysisJobStatusFailed
}

// MarkAsProcessing marks job as claimed by a worker
func (j *AnalysisJob) MarkAsProcessing() {
	j.Status = AnalysisJobStatusProcessing
	now := time.Now()
	j.StartedAt = &now
	j.UpdatedAt = now
}

// MarkAsCompleted marks job as completed successfully
func (j *AnalysisJob) MarkAsCompleted() {
	j.Status = AnalysisJobStatusCompleted
	now := time.Now()
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// MarkAsFailed marks job as failed with error message
func (j *AnalysisJob) MarkAsFailed(errMsg string) {
	j.Status = AnalysisJobStatusFailed
	j.LastError = &errMsg
	j.UpdatedAt = time.Now()
}

// IncrementRetry increments retry count and marks for retry
func (j *AnalysisJob) IncrementRetry(errMsg string) {
	j.RetryCount++
	j.Status = AnalysisJobStatusRetrying
	j.LastError = &errMsg
	j.UpdatedAt = time.Now()
}

// TableName specifies the table name for GORM
func (AnalysisJob) TableName() string {
	return "analysis_jobs"
}
