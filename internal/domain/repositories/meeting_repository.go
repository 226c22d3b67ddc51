package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// FindByUserID retrieves meetings owned by a user, newest first
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Meeting, error)

	// CountByUserID counts meetings owned by a user
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// Update updates an existing meeting
	Update(ctx context.Context, meeting *entities.Meeting) error

	// Delete deletes a meeting and its dependent records
	Delete(ctx context.Context, id uuid.UUID) error
}
