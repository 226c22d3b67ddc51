package entities

import (
	"time"

	"github.com/google/uuid"
)

// Meeting is a stored transcript awaiting or holding an analysis.
type Meeting struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Title        string    `json:"title" gorm:"type:varchar(255);not null"`
	Transcript   string    `json:"transcript" gorm:"type:text;not null"`
	Participants []string  `json:"participants" gorm:"serializer:json"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func NewMeeting(userID uuid.UUID, title, transcript string, participants []string) *Meeting {
	return &Meeting{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        title,
		Transcript:   transcript,
		Participants: participants,
	}
}

func (Meeting) TableName() string {
	return "meetings"
}
