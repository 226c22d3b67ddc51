package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"
)

// AnalysisRepository defines persistence operations for analysis results
type AnalysisRepository interface {
	// Save inserts or replaces the analysis for a meeting
	Save(ctx context.Context, record *entities.AnalysisRecord) error

	// FindByMeetingID retrieves the analysis stored for a meeting
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.AnalysisRecord, error)

	// DeleteByMeetingID removes the analysis stored for a meeting
	DeleteByMeetingID(ctx context.Context, meetingID uuid.UUID) error
}
