package http

import (
	"errors"
	nethttp "net/http"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	"github.com/agriconnect/agriconnect/internal/pkg/logger"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/agriconnect/agriconnect/internal/utils"
	"github.com/agriconnect/agriconnect/services/schemes"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SchemeHandler handles HTTP requests for government scheme listings
type SchemeHandler struct {
	schemeUC schemes.SchemeUC
}

// NewSchemeHandler creates a new scheme handler
func NewSchemeHandler(schemeUC schemes.SchemeUC) *SchemeHandler {
	return &SchemeHandler{schemeUC: schemeUC}
}

func serviceErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrSchemeNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		logger.Error("Unhandled service error",
			logger.String("path", c.Path()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}

// CreateScheme handles scheme creation (ngo_admin only)
func (h *SchemeHandler) CreateScheme(c echo.Context) error {
	user, ok := c.Get("user").(*models.User)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var scheme models.GovernmentScheme
	if err := c.Bind(&scheme); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.schemeUC.CreateScheme(c.Request().Context(), user, &scheme)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Scheme published successfully", created)
}

// GetScheme handles single-scheme retrieval
func (h *SchemeHandler) GetScheme(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid scheme ID")
	}

	scheme, err := h.schemeUC.GetScheme(c.Request().Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Scheme retrieved successfully", scheme)
}

// ListSchemes handles scheme listings. Inactive listings are only shown
// to ngo_admin callers who ask for them.
func (h *SchemeHandler) ListSchemes(c echo.Context) error {
	user, ok := c.Get("user").(*models.User)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	includeInactive := c.QueryParam("include_inactive") == "true" && user.Role == models.RoleNGOAdmin

	list, err := h.schemeUC.ListSchemes(c.Request().Context(), includeInactive)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Schemes retrieved successfully", list)
}

// UpdateScheme handles scheme content replacement (ngo_admin only)
func (h *SchemeHandler) UpdateScheme(c echo.Context) error {
	user, ok := c.Get("user").(*models.User)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid scheme ID")
	}

	var scheme models.GovernmentScheme
	if err := c.Bind(&scheme); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	updated, err := h.schemeUC.UpdateScheme(c.Request().Context(), user, id, &scheme)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Scheme updated successfully", updated)
}
