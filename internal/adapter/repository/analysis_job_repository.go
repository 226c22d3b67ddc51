package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"
)

// AnalysisJobRepository handles analysis job data operations
type AnalysisJobRepository struct {
	db *gorm.DB
}

// NewAnalysisJobRepository creates a new analysis job repository
func NewAnalysisJobRepository(db *gorm.DB) *AnalysisJobRepository {
	return &AnalysisJobRepository{db: db}
}

// Create creates a new job
func (r *AnalysisJobRepository) Create(ctx context.Context, job *entities.AnalysisJob) error {
	if job == nil {
		return errors.New("job cannot be nil")
	}
	return r.db.WithContext(ctx).Create(job).Error
}

// FindByID finds a job by ID
func (r *AnalysisJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.AnalysisJob, error) {
	var job entities.AnalysisJob
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// FindByMeetingID finds the latest job for a meeting
func (r *AnalysisJobRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.AnalysisJob, error) {
	var job entities.AnalysisJob
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// FindPending retrieves jobs ready to be picked up, oldest first
func (r *AnalysisJobRepository) FindPending(ctx context.Context, limit int) ([]*entities.AnalysisJob, error) {
	var jobs []*entities.AnalysisJob
	if err := r.db.WithContext(ctx).
		Where("status IN ?", []entities.AnalysisJobStatus{
			entities.AnalysisJobStatusPending,
			entities.AnalysisJobStatusRetrying,
		}).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}
	return jobs, nil
}

// ClaimJob atomically transitions a job between statuses using a
// conditional update. Only one worker wins when several race on the same
// row; losers see zero rows affected.
func (r *AnalysisJobRepository) ClaimJob(ctx context.Context, jobID uuid.UUID, from, to entities.AnalysisJobStatus) (bool, error) {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	if to == entities.AnalysisJobStatusProcessing {
		updates["started_at"] = time.Now()
	}

	result := r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ? AND status = ?", jobID, from).
		Updates(updates)
	if result.Error != nil {
		return false, fmt.Errorf("failed to claim job: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Update updates a job
func (r *AnalysisJobRepository) Update(ctx context.Context, job *entities.AnalysisJob) error {
	if err := r.db.WithContext(ctx).Save(job).Error; err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}

// FindStuckJobs retrieves processing jobs that were last touched before the cutoff
func (r *AnalysisJobRepository) FindStuckJobs(ctx context.Context, cutoff time.Time) ([]*entities.AnalysisJob, error) {
	var jobs []*entities.AnalysisJob
	if err := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", entities.AnalysisJobStatusProcessing, cutoff).
		Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to find stuck jobs: %w", err)
	}
	return jobs, nil
}

// DeleteByMeetingID removes all jobs for a meeting
func (r *AnalysisJobRepository) DeleteByMeetingID(ctx context.Context, meetingID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Delete(&entities.AnalysisJob{}).Error; err != nil {
		return fmt.Errorf("failed to delete jobs: %w", err)
	}
	return nil
}
