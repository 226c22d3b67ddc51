package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"
)

// AnalysisRepository implements the analysis repository interface using GORM
type AnalysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Save inserts or replaces the analysis for a meeting
func (r *AnalysisRepository) Save(ctx context.Context, record *entities.AnalysisRecord) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "meeting_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"result":     record.Result,
				"updated_at": time.Now(),
			}),
		}).
		Create(record).Error; err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// FindByMeetingID retrieves the analysis stored for a meeting
func (r *AnalysisRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.AnalysisRecord, error) {
	var record entities.AnalysisRecord
	if err := r.db.WithContext(ctx).Where("meeting_id = ?", meetingID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}
	return &record, nil
}

// DeleteByMeetingID removes the analysis stored for a meeting
func (r *AnalysisRepository) DeleteByMeetingID(ctx context.Context, meetingID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Delete(&entities.AnalysisRecord{}).Error; err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	return nil
}
