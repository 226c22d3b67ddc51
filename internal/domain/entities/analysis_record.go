package entities

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnalysisRecord is the persisted form of a MeetingAnalysis, stored as
// JSONB alongside the meeting it belongs to.
type AnalysisRecord struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	MeetingID uuid.UUID      `json:"meeting_id" gorm:"type:uuid;not null;uniqueIndex"`
	Result    datatypes.JSON `json:"result" gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func NewAnalysisRecord(meetingID uuid.UUID, analysis *MeetingAnalysis) (*AnalysisRecord, error) {
	raw, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}
	return &AnalysisRecord{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Result:    datatypes.JSON(raw),
	}, nil
}

// Analysis decodes the stored JSONB payload back into a MeetingAnalysis.
func (r *AnalysisRecord) Analysis() (*MeetingAnalysis, error) {
	var analysis MeetingAnalysis
	if err := json.Unmarshal(r.Result, &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
	}
	return &analysis, nil
}

func (AnalysisRecord) TableName() string {
	return "analysis_records"
}
