package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/deepikamahendran/AI-Meeting-Summarizer/errors"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"
	pkgvalidator "github.com/deepikamahendran/AI-Meeting-Summarizer/pkg/validator"
)

type fakeAnalysisService struct {
	result *entities.MeetingAnalysis
	err    error

	gotTranscript   string
	gotParticipants []string
}

func (f *fakeAnalysisService) AnalyzeTranscript(ctx context.Context, transcript string, participants []string) (*entities.MeetingAnalysis, error) {
	f.gotTranscript = transcript
	f.gotParticipants = participants
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeAnalysisService) EnqueueMeeting(ctx context.Context, meeting *entities.Meeting) (*entities.AnalysisJob, error) {
	return entities.NewAnalysisJob(meeting.ID), nil
}

func (f *fakeAnalysisService) GetMeetingAnalysis(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingAnalysis, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeAnalysisService) StartWorkerPool(ctx context.Context, workerCount int) error {
	return nil
}

func (f *fakeAnalysisService) StopWorkerPool() error {
	return nil
}

func newAnalysisEcho() *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e
}

func TestAnalyzeEndpointReturnsResult(t *testing.T) {
	svc := &fakeAnalysisService{
		result: &entities.MeetingAnalysis{
			Summary:   "We need to review the budget urgently.",
			KeyTopics: []string{"budget & finance"},
		},
	}
	ctrl := NewAnalysisController(svc, nil)

	e := newAnalysisEcho()
	body := `{"transcript":"We need to review the budget urgently.","participants":["Alice","Bob"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/analysis", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := ctrl.Analyze(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotTranscript != "We need to review the budget urgently." {
		t.Fatalf("service got transcript %q", svc.gotTranscript)
	}
	if len(svc.gotParticipants) != 2 {
		t.Fatalf("service got participants %v", svc.gotParticipants)
	}

	var resp struct {
		Data struct {
			Summary   string   `json:"summary"`
			KeyTopics []string `json:"keyTopics"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Data.Summary != "We need to review the budget urgently." {
		t.Fatalf("unexpected summary %q", resp.Data.Summary)
	}
	if len(resp.Data.KeyTopics) != 1 || resp.Data.KeyTopics[0] != "budget & finance" {
		t.Fatalf("unexpected topics %v", resp.Data.KeyTopics)
	}
}

func TestAnalyzeEndpointRequiresTranscript(t *testing.T) {
	ctrl := NewAnalysisController(&fakeAnalysisService{}, nil)

	e := newAnalysisEcho()
	req := httptest.NewRequest(http.MethodPost, "/v1/analysis", strings.NewReader(`{"participants":["Alice"]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := ctrl.Analyze(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAnalyzeEndpointMapsDomainErrors(t *testing.T) {
	svc := &fakeAnalysisService{err: apperrors.ErrTranscriptTooShort(10, 50)}
	ctrl := NewAnalysisController(svc, nil)

	e := newAnalysisEcho()
	body := `{"transcript":"short one"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/analysis", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := ctrl.Analyze(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Code != int(apperrors.ErrorCode_MEETING_TRANSCRIPT_TOO_SHORT) {
		t.Fatalf("unexpected error code %d", resp.Code)
	}
}
