package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/deepikamahendran/AI-Meeting-Summarizer/errors"
	authdto "github.com/deepikamahendran/AI-Meeting-Summarizer/internal/adapter/dto/auth"
	authuse "github.com/deepikamahendran/AI-Meeting-Summarizer/internal/usecase/auth"
)

// Auth handles authentication endpoints
type Auth struct {
	svc    authuse.Service
	logger *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(svc authuse.Service, logger *zap.Logger) *Auth {
	return &Auth{svc: svc, logger: logger}
}

// Login authenticates a user and returns token pair
// @Summary      Sign in
// @Description  Signs a user in with email and password, creating the account on first login
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      authdto.LoginRequest  true  "Credentials"
// @Success      200      {object}  authdto.AuthResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid payload"
// @Failure      401      {object}  map[string]interface{}  "Invalid credentials"
// @Router       /auth/login [post]
func (h *Auth) Login(c echo.Context) error {
	var req authdto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, toAuthResponse(result))
}

// RefreshToken exchanges a refresh token for a new token pair
// @Summary      Refresh tokens
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      authdto.RefreshTokenRequest  true  "Refresh token"
// @Success      200      {object}  authdto.AuthResponse
// @Failure      401      {object}  map[string]interface{}  "Invalid or expired refresh token"
// @Router       /auth/refresh [post]
func (h *Auth) RefreshToken(c echo.Context) error {
	var req authdto.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result, err := h.svc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, toAuthResponse(result))
}

// Logout revokes the session behind a refresh token
// @Summary      Sign out
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      authdto.LogoutRequest  true  "Refresh token"
// @Success      200      {object}  map[string]interface{}
// @Router       /auth/logout [post]
func (h *Auth) Logout(c echo.Context) error {
	var req authdto.LogoutRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	if err := h.svc.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{"status": "logged_out"})
}

// Me returns the authenticated user's profile
// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  authdto.UserResponse
// @Failure      401  {object}  map[string]interface{}  "User not authenticated"
// @Router       /auth/me [get]
func (h *Auth) Me(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	user, err := h.svc.GetCurrentUser(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	pub := user.ToPublic()
	return HandleSuccess(h.logger, c, &authdto.UserResponse{
		ID:        pub.ID.String(),
		Email:     pub.Email,
		Name:      pub.Name,
		CreatedAt: pub.CreatedAt,
	})
}

func toAuthResponse(result *authuse.AuthResponse) *authdto.AuthResponse {
	resp := &authdto.AuthResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    int(result.ExpiresIn),
		TokenType:    "Bearer",
	}
	if result.User != nil {
		resp.User = &authdto.UserResponse{
			ID:        result.User.ID.String(),
			Email:     result.User.Email,
			Name:      result.User.Name,
			CreatedAt: result.User.CreatedAt,
		}
	}
	return resp
}
