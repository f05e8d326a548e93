package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/agriconnect/agriconnect/internal/utils"
	"github.com/agriconnect/agriconnect/services/issues"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// IssueHandler handles HTTP requests for issue reporting
type IssueHandler struct {
	issueUC issues.IssueUC
}

// NewIssueHandler creates a new issue handler
func NewIssueHandler(issueUC issues.IssueUC) *IssueHandler {
	return &IssueHandler{issueUC: issueUC}
}

func contextUser(c echo.Context) (*models.User, bool) {
	user, ok := c.Get("user").(*models.User)
	return user, ok
}

func issueID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// CreateIssue handles issue creation; the reporter is the current user
func (h *IssueHandler) CreateIssue(c echo.Context) error {
	user, ok := contextUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.IssueCreateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	issue, err := h.issueUC.CreateIssue(c.Request().Context(), user, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Issue reported successfully", issue)
}

// GetIssue handles single-issue retrieval
func (h *IssueHandler) GetIssue(c echo.Context) error {
	id, err := issueID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid issue ID")
	}

	issue, err := h.issueUC.GetIssue(c.Request().Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Issue retrieved successfully", issue)
}

// ListIssues handles filtered issue listings. `mine=true` narrows the
// listing to the caller's own reports.
func (h *IssueHandler) ListIssues(c echo.Context) error {
	user, ok := contextUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	filter := &models.IssueFilter{Status: c.QueryParam("status")}
	if c.QueryParam("mine") == "true" {
		filter.ReportedBy = &user.ID
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		filter.Offset = offset
	}

	list, err := h.issueUC.ListIssues(c.Request().Context(), filter)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Issues retrieved successfully", list)
}

// PatchIssue handles partial issue updates
func (h *IssueHandler) PatchIssue(c echo.Context) error {
	user, ok := contextUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := issueID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid issue ID")
	}

	var req models.IssuePatchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	issue, err := h.issueUC.PatchIssue(c.Request().Context(), user, id, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Issue updated successfully", issue)
}

// AddIssueUpdate handles appending a status update to an issue
func (h *IssueHandler) AddIssueUpdate(c echo.Context) error {
	user, ok := contextUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := issueID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid issue ID")
	}

	var req models.IssueUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	update, err := h.issueUC.AddIssueUpdate(c.Request().Context(), user, id, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Issue update recorded", update)
}

// ListIssueUpdates handles retrieving an issue's status history
func (h *IssueHandler) ListIssueUpdates(c echo.Context) error {
	id, err := issueID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid issue ID")
	}

	updates, err := h.issueUC.ListIssueUpdates(c.Request().Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Issue updates retrieved successfully", updates)
}
