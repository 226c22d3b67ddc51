package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/deepikamahendran/AI-Meeting-Summarizer/errors"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/repositories"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// ObjectStore is the storage backend reports are uploaded to
type ObjectStore interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// Report points to a generated report document
type Report struct {
	ObjectName  string `json:"object_name"`
	DownloadURL string `json:"download_url"`
	ContentType string `json:"content_type"`
}

// Service builds downloadable meeting reports
type Service interface {
	GenerateReport(ctx context.Context, userID, meetingID uuid.UUID) (*Report, error)
}

type exportService struct {
	meetingRepo  repositories.MeetingRepository
	analysisRepo repositories.AnalysisRepository
	store        ObjectStore
	urlExpiry    time.Duration
	logger       *zap.Logger
}

// NewService constructs a new export service
func NewService(
	meetingRepo repositories.MeetingRepository,
	analysisRepo repositories.AnalysisRepository,
	store ObjectStore,
	logger *zap.Logger,
) Service {
	return &exportService{
		meetingRepo:  meetingRepo,
		analysisRepo: analysisRepo,
		store:        store,
		urlExpiry:    24 * time.Hour,
		logger:       logger,
	}
}

// GenerateReport renders the meeting analysis as a docx document, uploads
// it and returns a presigned download URL
func (s *exportService) GenerateReport(ctx context.Context, userID, meetingID uuid.UUID) (*Report, error) {
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

	record, err := s.analysisRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	if record == nil {
		return nil, apperrors.ErrAnalysisNotFound(meetingID.String())
	}
	analysis, err := record.Analysis()
	if err != nil {
		return nil, apperrors.ErrReportGenerationFailed(err)
	}

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("report-%s-%d.docx", meetingID, time.Now().UnixNano()))
	defer os.Remove(tmpPath)

	if err := writeReportDocx(meeting, analysis, tmpPath); err != nil {
		return nil, apperrors.ErrReportGenerationFailed(err)
	}

	objectName := fmt.Sprintf("reports/%s/%s.docx", meeting.UserID, meetingID)
	if err := s.uploadWithRetry(ctx, objectName, tmpPath); err != nil {
		return nil, apperrors.ErrReportExportFailed("docx", err)
	}

	url, err := s.store.GetFileURL(ctx, objectName, s.urlExpiry)
	if err != nil {
		return nil, apperrors.ErrStorageFailed("presign", err)
	}

	if s.logger != nil {
		s.logger.Info("✅ Report exported",
			zap.String("meeting_id", meetingID.String()),
			zap.String("object_name", objectName),
		)
	}

	return &Report{
		ObjectName:  objectName,
		DownloadURL: url,
		ContentType: docxContentType,
	}, nil
}

// uploadWithRetry pushes the rendered file to storage with exponential backoff
func (s *exportService) uploadWithRetry(ctx context.Context, objectName, path string) error {
	uploadFn := func() error {
		file, err := os.Open(path)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to open report file: %w", err))
		}
		defer file.Close()

		info, err := file.Stat()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to stat report file: %w", err))
		}

		return s.store.UploadFile(ctx, objectName, file, info.Size(), docxContentType)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxElapsedTime = 30 * time.Second
	bo.MaxInterval = 10 * time.Second

	if err := backoff.Retry(uploadFn, backoff.WithContext(bo, ctx)); err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Failed to upload report after retries",
				zap.String("object_name", objectName),
				zap.Error(err),
			)
		}
		return err
	}
	return nil
}
