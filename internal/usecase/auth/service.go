package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/deepikamahendran/AI-Meeting-Summarizer/errors"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/repositories"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/pkg/jwt"
)

// Service handles authentication. Credentials are not verified against
// anything: any well-formed email and password yields a session, with the
// user record created on first login.
type Service interface {
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entities.User, error)
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	User         *entities.PublicUser `json:"user"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	ExpiresIn    int64                `json:"expires_in"`
}

type authService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	jwtManager  *jwt.Manager
	logger      *zap.Logger
}

// NewService creates a new auth service
func NewService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	jwtManager *jwt.Manager,
	logger *zap.Logger,
) Service {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtManager:  jwtManager,
		logger:      logger,
	}
}

// Login finds or creates the user for the email and opens a session
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials()
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		user = entities.NewUser(email, displayNameFromEmail(email))
		if err := user.Validate(); err != nil {
			return nil, apperrors.ErrInvalidCredentials()
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		if s.logger != nil {
			s.logger.Info("👤 New user created on first login",
				zap.String("user_id", user.ID.String()),
				zap.String("email", user.Email),
			)
		}
	}

	user.UpdateLastLogin()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.openSession(ctx, user)
}

// Refresh exchanges a valid refresh token for a fresh token pair. The old
// session is revoked and replaced.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken()
	}

	session, err := s.sessionRepo.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	if !session.IsValid() {
		return nil, apperrors.ErrInvalidRefreshToken()
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound()
	}

	if err := s.sessionRepo.Revoke(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke session: %w", err)
	}

	return s.openSession(ctx, user)
}

// Logout revokes the session bound to the refresh token
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.sessionRepo.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		return fmt.Errorf("failed to find session: %w", err)
	}
	if session == nil {
		return apperrors.ErrInvalidRefreshToken()
	}
	if err := s.sessionRepo.Revoke(ctx, session.ID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// GetCurrentUser returns the user for the authenticated ID
func (s *authService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound()
	}
	return user, nil
}

// openSession issues a token pair and persists the session
func (s *authService) openSession(ctx context.Context, user *entities.User) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	session := entities.NewSession(
		user.ID,
		refreshToken,
		time.Now().Add(s.jwtManager.GetRefreshExpiry()),
	)
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &AuthResponse{
		User:         user.ToPublic(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}

// displayNameFromEmail derives a readable name from the local part of the
// address, e.g. "jane.doe" becomes "Jane Doe"
func displayNameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}
	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	if len(parts) == 0 {
		return local
	}
	return strings.Join(parts, " ")
}
