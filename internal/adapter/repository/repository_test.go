package repository

import (
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/repositories"
)

// Keeps the GORM implementations honest against the domain interfaces.
var (
	_ repositories.UserRepository        = (*UserRepository)(nil)
	_ repositories.SessionRepository     = (*SessionRepository)(nil)
	_ repositories.MeetingRepository     = (*MeetingRepository)(nil)
	_ repositories.AnalysisRepository    = (*AnalysisRepository)(nil)
	_ repositories.AnalysisJobRepository = (*AnalysisJobRepository)(nil)
)
