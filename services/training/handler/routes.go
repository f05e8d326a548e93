package handler

import (
	httpHandler "github.com/agriconnect/agriconnect/services/training/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the HTTP handlers for the training service
type Handler struct {
	trainingHandler *httpHandler.TrainingHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(trainingHandler *httpHandler.TrainingHandler) *Handler {
	return &Handler{trainingHandler: trainingHandler}
}

// RegisterRoutes registers the training and story routes behind the
// auth middleware
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	modules := e.Group("/api/training-modules", authMiddleware)
	modules.POST("", h.trainingHandler.CreateModule)
	modules.GET("", h.trainingHandler.ListModules)
	modules.GET("/:id", h.trainingHandler.GetModule)
	modules.PUT("/:id", h.trainingHandler.UpdateModule)

	stories := e.Group("/api/success-stories", authMiddleware)
	stories.POST("", h.trainingHandler.CreateStory)
	stories.GET("", h.trainingHandler.ListStories)
	stories.GET("/:id", h.trainingHandler.GetStory)
}
