package meeting

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/deepikamahendran/AI-Meeting-Summarizer/errors"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/repositories"
)

// Service manages stored meetings and their lifecycle
type Service interface {
	GetMeeting(ctx context.Context, userID, meetingID uuid.UUID) (*entities.Meeting, error)
	ListMeetings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Meeting, int64, error)
	DeleteMeeting(ctx context.Context, userID, meetingID uuid.UUID) error
}

type meetingService struct {
	meetingRepo  repositories.MeetingRepository
	analysisRepo repositories.AnalysisRepository
	jobRepo      repositories.AnalysisJobRepository
	logger       *zap.Logger
}

// NewService constructs a new meeting service
func NewService(
	meetingRepo repositories.MeetingRepository,
	analysisRepo repositories.AnalysisRepository,
	jobRepo repositories.AnalysisJobRepository,
	logger *zap.Logger,
) Service {
	return &meetingService{
		meetingRepo:  meetingRepo,
		analysisRepo: analysisRepo,
		jobRepo:      jobRepo,
		logger:       logger,
	}
}

// GetMeeting returns a meeting owned by the user
func (s *meetingService) GetMeeting(ctx context.Context, userID, meetingID uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	if meeting == nil {
		return nil, apperrors.ErrMeetingNotFound(meetingID.String())
	}
	if meeting.UserID != userID {
		return nil, apperrors.ErrForbidden("meeting belongs to another user")
	}
	return meeting, nil
}

// ListMeetings returns the user's meetings, newest first
func (s *meetingService) ListMeetings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Meeting, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	meetings, err := s.meetingRepo.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list meetings: %w", err)
	}
	total, err := s.meetingRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count meetings: %w", err)
	}
	return meetings, total, nil
}

// DeleteMeeting removes a meeting together with its analysis and jobs
func (s *meetingService) DeleteMeeting(ctx context.Context, userID, meetingID uuid.UUID) error {
	if _, err := s.GetMeeting(ctx, userID, meetingID); err != nil {
		return err
	}

	if err := s.analysisRepo.DeleteByMeetingID(ctx, meetingID); err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if err := s.jobRepo.DeleteByMeetingID(ctx, meetingID); err != nil {
		return fmt.Errorf("failed to delete analysis jobs: %w", err)
	}
	if err := s.meetingRepo.Delete(ctx, meetingID); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("🗑️ Meeting deleted",
			zap.String("meeting_id", meetingID.String()),
			zap.String("user_id", userID.String()),
		)
	}
	return nil
}
