package analysis

// AnalyzeRequest represents a one-shot transcript analysis request
type AnalyzeRequest struct {
	Transcript   string   `json:"transcript" validate:"required"`
	Participants []string `json:"participants" validate:"omitempty,dive,min=1,max=255"`
}
