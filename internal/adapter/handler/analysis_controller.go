package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/deepikamahendran/AI-Meeting-Summarizer/errors"
	analysisdto "github.com/deepikamahendran/AI-Meeting-Summarizer/internal/adapter/dto/analysis"
	analysisuse "github.com/deepikamahendran/AI-Meeting-Summarizer/internal/usecase/analysis"
)

// AnalysisController handles one-shot transcript analysis endpoints
type AnalysisController struct {
	svc    analysisuse.Service
	logger *zap.Logger
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(svc analysisuse.Service, logger *zap.Logger) *AnalysisController {
	return &AnalysisController{svc: svc, logger: logger}
}

// Analyze runs keyword analysis over a transcript and returns the result
// @Summary      Analyze transcript
// @Description  Extracts summary, key topics, action items, tasks and next steps from a meeting transcript
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      analysisdto.AnalyzeRequest  true  "Transcript and participants"
// @Success      200      {object}  entities.MeetingAnalysis
// @Failure      400      {object}  map[string]interface{}  "Transcript missing or out of bounds"
// @Router       /analysis [post]
func (ac *AnalysisController) Analyze(c echo.Context) error {
	var req analysisdto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result, err := ac.svc.AnalyzeTranscript(c.Request().Context(), req.Transcript, req.Participants)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}

	return HandleSuccess(ac.logger, c, result)
}
