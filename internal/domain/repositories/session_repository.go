package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"
)

// SessionRepository defines the interface for session data access
type SessionRepository interface {
	// Create creates a new session
	Create(ctx context.Context, session *entities.Session) error

	// FindByRefreshToken finds a session by its refresh token
	FindByRefreshToken(ctx context.Context, refreshToken string) (*entities.Session, error)

	// UpdateLastUsed updates the last used timestamp
	UpdateLastUsed(ctx context.Context, sessionID uuid.UUID) error

	// Revoke revokes a session
	Revoke(ctx context.Context, sessionID uuid.UUID) error

	// RevokeAllByUserID revokes all sessions for a user
	RevokeAllByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired deletes expired sessions
	DeleteExpired(ctx context.Context, before time.Time) error
}
