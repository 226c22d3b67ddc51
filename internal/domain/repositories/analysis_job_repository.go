package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"
)

// AnalysisJobRepository defines persistence operations for background jobs
type AnalysisJobRepository interface {
	// Create creates a new job
	Create(ctx context.Context, job *entities.AnalysisJob) error

	// FindByID finds a job by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.AnalysisJob, error)

	// FindByMeetingID finds the latest job for a meeting
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.AnalysisJob, error)

	// FindPending retrieves jobs ready to be picked up, oldest first
	FindPending(ctx context.Context, limit int) ([]*entities.AnalysisJob, error)

	// ClaimJob atomically transitions a job from one status to another.
	// Returns false when another worker claimed the job first.
	ClaimJob(ctx context.Context, jobID uuid.UUID, from, to entities.AnalysisJobStatus) (bool, error)

	// Update updates a job
	Update(ctx context.Context, job *entities.AnalysisJob) error

	// FindStuckJobs retrieves processing jobs that started before the cutoff
	FindStuckJobs(ctx context.Context, cutoff time.Time) ([]*entities.AnalysisJob, error)

	// DeleteByMeetingID removes all jobs for a meeting
	DeleteByMeetingID(ctx context.Context, meetingID uuid.UUID) error
}
