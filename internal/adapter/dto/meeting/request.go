package meeting

// CreateMeetingRequest represents the request to store a meeting and queue
// its analysis
type CreateMeetingRequest struct {
	Title        string   `json:"title" validate:"required,min=1,max=255"`
	Transcript   string   `json:"transcript" validate:"required"`
	Participants []string `json:"participants" validate:"omitempty,dive,min=1,max=255"`
}

// ListMeetingsRequest represents list query parameters
type ListMeetingsRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}
