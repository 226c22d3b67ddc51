package meeting

import (
	"time"

	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"
)

// MeetingResponse represents a stored meeting in responses
type MeetingResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Transcript   string    `json:"transcript,omitempty"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// JobResponse represents a queued analysis job
type JobResponse struct {
	JobID     string `json:"job_id"`
	MeetingID string `json:"meeting_id"`
	Status    string `json:"status"`
}

// ReportResponse represents a generated meeting report
type ReportResponse struct {
	ObjectName  string `json:"object_name"`
	DownloadURL string `json:"download_url"`
	ContentType string `json:"content_type"`
}

// FromEntity maps a meeting entity to its response shape. The transcript is
// included only when full is set; list views stay lean.
func FromEntity(m *entities.Meeting, full bool) *MeetingResponse {
	resp := &MeetingResponse{
		ID:           m.ID.String(),
		Title:        m.Title,
		Participants: m.Participants,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if full {
		resp.Transcript = m.Transcript
	}
	if resp.Participants == nil {
		resp.Participants = []string{}
	}
	return resp
}
