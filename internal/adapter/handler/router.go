package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meetscribe/internal/infrastructure/sse"
	"github.com/johnquangdev/meetscribe/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	meetingController *MeetingController
	aiController      *AIController
	broker            *sse.Broker
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingController *MeetingController, aiController *AIController, broker *sse.Broker) *Router {
	return &Router{
		cfg:               cfg,
		meetingController: meetingController,
		aiController:      aiController,
		broker:            broker,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
	rt.setupAIRoutes(v1)
	rt.setupEventRoutes(v1)
}

// setupMeetingRoutes configures participant and meeting routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	g.GET("/participants", rt.meetingController.ListParticipants)

	meetingGroup := g.Group("/meetings")
	meetingGroup.GET("", rt.meetingController.ListMeetings)
	meetingGroup.POST("", rt.meetingController.CreateMeeting)
	meetingGroup.GET("/:id", rt.meetingController.GetMeeting)
	meetingGroup.PUT("/:id/notes", rt.meetingController.UpdateNotes)
	meetingGroup.POST("/:id/action-items", rt.meetingController.AddActionItem)
	meetingGroup.PATCH("/:id/action-items/:itemID/toggle", rt.meetingController.ToggleActionItem)
}

// setupAIRoutes configures the AI gateway routes
func (rt *Router) setupAIRoutes(g *echo.Group) {
	aiGroup := g.Group("/ai/meetings")
	aiGroup.POST("/:id/transcription", rt.aiController.Transcribe)
	aiGroup.POST("/:id/summary", rt.aiController.Summarize)
	aiGroup.POST("/:id/suggestions", rt.aiController.SuggestActionItems)
}

// setupEventRoutes configures the SSE stream clients subscribe to for
// revalidation signals
func (rt *Router) setupEventRoutes(g *echo.Group) {
	g.GET("/events", echo.WrapHandler(rt.broker))
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"time":        time.Now().Format(time.RFC3339),
		"environment": rt.cfg.Server.Environment,
	})
}
