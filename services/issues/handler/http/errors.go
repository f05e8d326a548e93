package http

import (
	"errors"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	"github.com/agriconnect/agriconnect/internal/pkg/logger"
	"github.com/agriconnect/agriconnect/internal/utils"
	"github.com/labstack/echo/v4"
)

// serviceErrorResponse translates usecase sentinel errors into the
// uniform HTTP error envelope
func serviceErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrIssueNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		logger.Error("Unhandled service error",
			logger.String("path", c.Path()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
