package handler

import (
	httpHandler "github.com/agriconnect/agriconnect/services/issues/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the HTTP handlers for the issues service
type Handler struct {
	issueHandler *httpHandler.IssueHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(issueHandler *httpHandler.IssueHandler) *Handler {
	return &Handler{issueHandler: issueHandler}
}

// RegisterRoutes registers the issue routes. All routes require an
// authenticated user, supplied by the auth middleware.
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	group := e.Group("/api/issues", authMiddleware)
	group.POST("", h.issueHandler.CreateIssue)
	group.GET("", h.issueHandler.ListIssues)
	group.GET("/:id", h.issueHandler.GetIssue)
	group.PATCH("/:id", h.issueHandler.PatchIssue)
	group.POST("/:id/updates", h.issueHandler.AddIssueUpdate)
	group.GET("/:id/updates", h.issueHandler.ListIssueUpdates)
}
