package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/deepikamahendran/AI-Meeting-Summarizer/errors"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/adapter/dto/common"
	meetingdto "github.com/deepikamahendran/AI-Meeting-Summarizer/internal/adapter/dto/meeting"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"
	analysisuse "github.com/deepikamahendran/AI-Meeting-Summarizer/internal/usecase/analysis"
	exportuse "github.com/deepikamahendran/AI-Meeting-Summarizer/internal/usecase/export"
	meetinguse "github.com/deepikamahendran/AI-Meeting-Summarizer/internal/usecase/meeting"
)

// MeetingController handles meeting CRUD, analysis retrieval and report export
type MeetingController struct {
	meetingSvc  meetinguse.Service
	analysisSvc analysisuse.Service
	exportSvc   exportuse.Service
	logger      *zap.Logger
}

// NewMeetingController creates a new meeting controller
func NewMeetingController(meetingSvc meetinguse.Service, analysisSvc analysisuse.Service, exportSvc exportuse.Service, logger *zap.Logger) *MeetingController {
	return &MeetingController{
		meetingSvc:  meetingSvc,
		analysisSvc: analysisSvc,
		exportSvc:   exportSvc,
		logger:      logger,
	}
}

// Create stores a meeting and queues a background analysis job
// @Summary      Create meeting
// @Description  Stores a meeting transcript and queues its analysis
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      meetingdto.CreateMeetingRequest  true  "Meeting data"
// @Success      202      {object}  meetingdto.JobResponse  "Analysis queued"
// @Failure      400      {object}  map[string]interface{}  "Invalid payload or transcript out of bounds"
// @Router       /meetings [post]
func (mc *MeetingController) Create(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return HandleError(mc.logger, c, errors.ErrUnauthenticated())
	}

	var req meetingdto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	meeting := entities.NewMeeting(userID, req.Title, req.Transcript, req.Participants)
	job, err := mc.analysisSvc.EnqueueMeeting(c.Request().Context(), meeting)
	if err != nil {
		return HandleError(mc.logger, c, err)
	}

	return HandleAccepted(mc.logger, c, &meetingdto.JobResponse{
		JobID:     job.ID.String(),
		MeetingID: meeting.ID.String(),
		Status:    string(job.Status),
	})
}

// List returns the authenticated user's meetings, newest first
// @Summary      List meetings
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Page size (default 20, max 100)"
// @Param        offset  query     int  false  "Items to skip"
// @Success      200     {object}  common.ListResponse
// @Router       /meetings [get]
func (mc *MeetingController) List(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return HandleError(mc.logger, c, errors.ErrUnauthenticated())
	}

	var req meetingdto.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	meetings, total, err := mc.meetingSvc.ListMeetings(c.Request().Context(), userID, req.Limit, req.Offset)
	if err != nil {
		return HandleError(mc.logger, c, err)
	}

	items := make([]*meetingdto.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		items = append(items, meetingdto.FromEntity(m, false))
	}

	return HandleSuccess(mc.logger, c, &common.ListResponse{
		Data: items,
		Pagination: &common.PaginationResponse{
			TotalItems: total,
		},
	})
}

// Get returns a single meeting including its transcript
// @Summary      Get meeting
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meetingdto.MeetingResponse
// @Failure      403  {object}  map[string]interface{}  "Meeting belongs to another user"
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [get]
func (mc *MeetingController) Get(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return HandleError(mc.logger, c, errors.ErrUnauthenticated())
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidArgument("invalid meeting ID"))
	}

	meeting, err := mc.meetingSvc.GetMeeting(c.Request().Context(), userID, meetingID)
	if err != nil {
		return HandleError(mc.logger, c, err)
	}

	return HandleSuccess(mc.logger, c, meetingdto.FromEntity(meeting, true))
}

// Delete removes a meeting along with its analysis and jobs
// @Summary      Delete meeting
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [delete]
func (mc *MeetingController) Delete(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return HandleError(mc.logger, c, errors.ErrUnauthenticated())
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidArgument("invalid meeting ID"))
	}

	if err := mc.meetingSvc.DeleteMeeting(c.Request().Context(), userID, meetingID); err != nil {
		return HandleError(mc.logger, c, err)
	}

	return HandleSuccess(mc.logger, c, map[string]interface{}{"status": "deleted"})
}

// GetAnalysis returns the stored analysis for a meeting
// @Summary      Get meeting analysis
// @Description  Returns the analysis result, or the job state while it is still running
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  entities.MeetingAnalysis
// @Failure      404  {object}  map[string]interface{}  "Analysis not found"
// @Failure      409  {object}  map[string]interface{}  "Analysis still pending"
// @Router       /meetings/{id}/analysis [get]
func (mc *MeetingController) GetAnalysis(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return HandleError(mc.logger, c, errors.ErrUnauthenticated())
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidArgument("invalid meeting ID"))
	}

	// Ownership check happens here; the analysis service is user-agnostic
	if _, err := mc.meetingSvc.GetMeeting(c.Request().Context(), userID, meetingID); err != nil {
		return HandleError(mc.logger, c, err)
	}

	result, err := mc.analysisSvc.GetMeetingAnalysis(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(mc.logger, c, err)
	}

	return HandleSuccess(mc.logger, c, result)
}

// GetReport generates a docx report and returns a download link
// @Summary      Export meeting report
// @Description  Renders the analysis into a docx report, uploads it and returns a presigned download URL
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meetingdto.ReportResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting or analysis not found"
// @Router       /meetings/{id}/report [get]
func (mc *MeetingController) GetReport(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return HandleError(mc.logger, c, errors.ErrUnauthenticated())
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidArgument("invalid meeting ID"))
	}

	report, err := mc.exportSvc.GenerateReport(c.Request().Context(), userID, meetingID)
	if err != nil {
		return HandleError(mc.logger, c, err)
	}

	return HandleSuccess(mc.logger, c, &meetingdto.ReportResponse{
		ObjectName:  report.ObjectName,
		DownloadURL: report.DownloadURL,
		ContentType: report.ContentType,
	})
}
