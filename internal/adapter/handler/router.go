package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/infrastructure/http/middleware"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/pkg/config"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/pkg/jwt"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	jwtManager      *jwt.Manager
	authHandler     *Auth
	analysisHandler *AnalysisController
	meetingHandler  *MeetingController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, jwtManager *jwt.Manager, authHandler *Auth, analysisHandler *AnalysisController, meetingHandler *MeetingController) *Router {
	return &Router{
		cfg:             cfg,
		jwtManager:      jwtManager,
		authHandler:     authHandler,
		analysisHandler: analysisHandler,
		meetingHandler:  meetingHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupAnalysisRoutes(v1)
	rt.setupMeetingRoutes(v1)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.POST("/refresh", rt.authHandler.RefreshToken)
	authGroup.POST("/logout", rt.authHandler.Logout)
	authGroup.GET("/me", rt.authHandler.Me, middleware.EchoAuth(rt.jwtManager))
}

// setupAnalysisRoutes configures the one-shot analysis route
func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	g.POST("/analysis", rt.analysisHandler.Analyze, middleware.EchoAuth(rt.jwtManager))
}

// setupMeetingRoutes configures meeting management routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings", middleware.EchoAuth(rt.jwtManager))

	meetingGroup.POST("", rt.meetingHandler.Create)
	meetingGroup.GET("", rt.meetingHandler.List)
	meetingGroup.GET("/:id", rt.meetingHandler.Get)
	meetingGroup.DELETE("/:id", rt.meetingHandler.Delete)
	meetingGroup.GET("/:id/analysis", rt.meetingHandler.GetAnalysis)
	meetingGroup.GET("/:id/report", rt.meetingHandler.GetReport)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
