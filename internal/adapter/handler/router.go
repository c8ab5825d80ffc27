package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/stationprep/consult-assistant/internal/adapter/dto/consult"
	"github.com/stationprep/consult-assistant/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	assessmentHandler *Assessment
	coachHandler      *Coach
	casesHandler      *Cases
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, assessmentHandler *Assessment, coachHandler *Coach, casesHandler *Cases) *Router {
	return &Router{
		cfg:               cfg,
		assessmentHandler: assessmentHandler,
		coachHandler:      coachHandler,
		casesHandler:      casesHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	v1.POST("/assessment", rt.assessmentHandler.Assess)
	v1.POST("/chat", rt.coachHandler.Chat)
	v1.GET("/cases", rt.casesHandler.List)
	v1.GET("/cases/:id", rt.casesHandler.Get)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, consult.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
	})
}
