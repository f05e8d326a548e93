package http

import (
	nethttp "net/http"

	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/agriconnect/agriconnect/internal/utils"
	"github.com/agriconnect/agriconnect/services/users"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests for user profile operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// GetUser handles user retrieval requests
func (h *UserHandler) GetUser(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userUC.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "User retrieved successfully", user)
}

// UpdateMe updates the mutable fields of the authenticated user
func (h *UserHandler) UpdateMe(c echo.Context) error {
	current, ok := c.Get("user").(*models.User)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), current.ID, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "User updated successfully", user)
}

// UpsertFarmerProfile creates or replaces the authenticated user's
// farmer profile
func (h *UserHandler) UpsertFarmerProfile(c echo.Context) error {
	current, ok := c.Get("user").(*models.User)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var profile models.FarmerProfile
	if err := c.Bind(&profile); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.UpsertFarmerProfile(c.Request().Context(), current.ID, &profile); err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Farmer profile saved", profile)
}
