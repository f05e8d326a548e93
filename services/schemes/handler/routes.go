package handler

import (
	httpHandler "github.com/agriconnect/agriconnect/services/schemes/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the HTTP handlers for the schemes service
type Handler struct {
	schemeHandler *httpHandler.SchemeHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(schemeHandler *httpHandler.SchemeHandler) *Handler {
	return &Handler{schemeHandler: schemeHandler}
}

// RegisterRoutes registers the scheme routes behind the auth middleware
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	group := e.Group("/api/schemes", authMiddleware)
	group.POST("", h.schemeHandler.CreateScheme)
	group.GET("", h.schemeHandler.ListSchemes)
	group.GET("/:id", h.schemeHandler.GetScheme)
	group.PUT("/:id", h.schemeHandler.UpdateScheme)
}
